package presets

// fillArgs returns args with any missing keys filled from the default bag.
// Keys the caller supplied always win; defaults only fill gaps.
func fillArgs(args Args, defaults Config) Args {
	merged := args.Clone()
	if merged == nil {
		merged = Args{}
	}
	for attr, value := range defaults {
		if _, ok := merged[attr]; ok {
			continue
		}
		merged[attr] = value
	}
	return merged
}

// LayerPresets composes mappings ordered from strongest to weakest, keeping
// explicit attributes from stronger mappings while filling missing ones from
// weaker layers. Bags are merged per attribute, not replaced wholesale.
func LayerPresets(maps ...PresetMap) PresetMap {
	merged := PresetMap{}
	for i := len(maps) - 1; i >= 0; i-- {
		for path, bag := range maps[i] {
			current, ok := merged[path]
			if !ok {
				merged[path] = bag.Clone()
				continue
			}
			for attr, value := range bag {
				current[attr] = value
			}
		}
	}
	return merged
}
