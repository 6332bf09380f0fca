package presets

import "strings"

const (
	invalidFilenameChars   = "<>:\"/\\|?*\n\r\t"
	invalidFilenamePrefix  = " "
	invalidFilenamePostfix = " ."
	maxFilenamePartLength  = 128
)

// SanitizeFilename turns arbitrary text into a filesystem-safe name: spaces
// become underscores, each forbidden character maps to an underscore, leading
// spaces are stripped, the result is truncated to 128 code points, and
// trailing spaces and periods are removed. Names the store generated itself
// round-trip unchanged, so sanitizing twice is safe.
func SanitizeFilename(text string) string {
	text = strings.ReplaceAll(text, " ", "_")
	text = strings.Map(func(r rune) rune {
		if strings.ContainsRune(invalidFilenameChars, r) {
			return '_'
		}
		return r
	}, text)
	text = strings.TrimLeft(text, invalidFilenamePrefix)
	if runes := []rune(text); len(runes) > maxFilenamePartLength {
		text = string(runes[:maxFilenamePartLength])
	}
	return strings.TrimRight(text, invalidFilenamePostfix)
}
