package config

import "sort"

// Presets are named array sizes, each paired with a speed that suits it.
var Presets = map[string]*Config{
	"tiny": {
		Size: 8, Algorithm: DefaultAlgorithm, FPS: 4, Repeat: 1, MaxRepeat: DefaultMaxRepeat, Theme: DefaultTheme,
	},
	"small": {
		Size: 24, Algorithm: DefaultAlgorithm, FPS: 10, Repeat: 1, MaxRepeat: DefaultMaxRepeat, Theme: DefaultTheme,
	},
	"classic": {
		Size: DefaultSize, Algorithm: DefaultAlgorithm, FPS: DefaultFPS, Repeat: 1, MaxRepeat: DefaultMaxRepeat, Theme: DefaultTheme,
	},
	"wide": {
		Size: 120, Algorithm: DefaultAlgorithm, FPS: 30, Repeat: 8, MaxRepeat: 256, Theme: DefaultTheme,
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := *p
	cfg.DataDir = DefaultDataDir
	return &cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
