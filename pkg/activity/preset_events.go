package activity

import (
	"strconv"
	"strings"
	"time"
)

// EventInput describes the common fields for preset lifecycle events.
type EventInput struct {
	ActorID    string
	UserID     string
	TenantID   string
	ObjectID   string
	Channel    string
	Recipients []string
	Metadata   map[string]any
	Preset     string
	File       string
	Path       string
	SnapshotID string
	Widgets    int
	OccurredAt time.Time
}

// BuildPresetSavedEvent constructs a normalized event for a preset save.
func BuildPresetSavedEvent(input EventInput) Event {
	return buildPresetEvent("preset.saved", "preset", input)
}

// BuildPresetAppliedEvent constructs a normalized event for a preset apply.
func BuildPresetAppliedEvent(input EventInput) Event {
	return buildPresetEvent("preset.applied", "preset", input)
}

// BuildWidgetRegisteredEvent constructs a normalized event for a widget
// registration.
func BuildWidgetRegisteredEvent(input EventInput) Event {
	return buildPresetEvent("widget.registered", "widget", input)
}

func buildPresetEvent(verb, objectType string, input EventInput) Event {
	metadata := cloneMap(input.Metadata)
	if input.Path != "" {
		metadata = ensureMetadata(metadata)
		metadata["path"] = input.Path
	}
	if input.File != "" {
		metadata = ensureMetadata(metadata)
		metadata["file"] = input.File
	}
	if input.SnapshotID != "" {
		metadata = ensureMetadata(metadata)
		metadata["snapshot_id"] = input.SnapshotID
	}
	if input.Widgets > 0 {
		metadata = ensureMetadata(metadata)
		metadata["widgets"] = strconv.Itoa(input.Widgets)
	}

	recipients := input.Recipients
	if len(recipients) > 0 {
		recipients = append([]string{}, input.Recipients...)
	}

	objectID := strings.TrimSpace(input.ObjectID)
	if objectID == "" {
		objectID = strings.TrimSpace(input.Preset)
	}
	if objectID == "" {
		objectID = strings.TrimSpace(input.Path)
	}
	if objectID == "" {
		objectID = objectType
	}

	return Event{
		Verb:       verb,
		ActorID:    strings.TrimSpace(input.ActorID),
		UserID:     strings.TrimSpace(input.UserID),
		TenantID:   strings.TrimSpace(input.TenantID),
		ObjectType: objectType,
		ObjectID:   objectID,
		Preset:     strings.TrimSpace(input.Preset),
		File:       strings.TrimSpace(input.File),
		SnapshotID: strings.TrimSpace(input.SnapshotID),
		Channel:    strings.TrimSpace(input.Channel),
		Recipients: recipients,
		Metadata:   metadata,
		OccurredAt: input.OccurredAt,
	}
}

func ensureMetadata(meta map[string]any) map[string]any {
	if meta == nil {
		return map[string]any{}
	}
	return meta
}
