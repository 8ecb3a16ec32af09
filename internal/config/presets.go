package config

var Presets = map[string]*Config{
	"midspan": {
		Length: 10, Samples: DefaultSamples,
		Point: PointConfig{Magnitude: 100, Position: 5},
	},
	"quarter-point": {
		Length: 12, Samples: DefaultSamples,
		Point: PointConfig{Magnitude: 150, Position: 3},
	},
	"full-udl": {
		Length: 10, Samples: DefaultSamples,
		UDL: UDLConfig{Intensity: 10, Start: 0, End: 10},
	},
	"partial-udl": {
		Length: 12, Samples: DefaultSamples,
		UDL: UDLConfig{Intensity: 20, Start: 3, End: 9},
	},
	"mixed": {
		Length: 15, Samples: DefaultSamples,
		Point: PointConfig{Magnitude: 80, Position: 5},
		UDL:   UDLConfig{Intensity: 12, Start: 6, End: 14},
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
