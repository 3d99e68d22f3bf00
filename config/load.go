package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// fileSettings mirrors the YAML/JSON shape Load reads, kept separate from
// Config so viper's decode target has plain exported fields with tags
// instead of reaching into Config's map-keyed Shapes directly.
type fileSettings struct {
	Accuracy            uint32            `mapstructure:"accuracy"`
	ModSize             uint32            `mapstructure:"mod_size"`
	ModDistance         uint32            `mapstructure:"mod_distance"`
	ShortPathSaturation uint32            `mapstructure:"short_path_saturation"`
	RecalcInterval      uint32            `mapstructure:"recalc_interval"`
	MovingAverageLength uint32            `mapstructure:"moving_average_length"`
	DistributionShape   map[string]string `mapstructure:"distribution_shape"`
}

// Load reads engine tunables from a YAML or JSON file at path via viper,
// applying the same defaults New() does for any field the file omits.
// Loading happens once per simulator session, at startup.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("config: reading %s: %w", path, err)
	}

	var fs fileSettings
	if err := v.Unmarshal(&fs); err != nil {
		return nil, fmt.Errorf("config: decoding %s: %w", path, err)
	}

	cfg := defaults()
	if fs.Accuracy != 0 {
		cfg.Accuracy = fs.Accuracy
	}
	if fs.ModSize != 0 {
		cfg.ModSize = fs.ModSize
	}
	if fs.ModDistance != 0 {
		cfg.ModDistance = fs.ModDistance
	}
	if fs.ShortPathSaturation != 0 {
		cfg.ShortPathSaturation = fs.ShortPathSaturation
	}
	if fs.RecalcInterval != 0 {
		cfg.RecalcInterval = fs.RecalcInterval
	}
	if fs.MovingAverageLength != 0 {
		cfg.MovingAverageLength = fs.MovingAverageLength
	}
	for cargoKey, shapeName := range fs.DistributionShape {
		var id int32
		if _, err := fmt.Sscanf(cargoKey, "%d", &id); err != nil {
			return nil, fmt.Errorf("config: distribution_shape key %q is not a cargo id: %w", cargoKey, err)
		}
		shape, err := ParseShape(shapeName)
		if err != nil {
			return nil, fmt.Errorf("config: distribution_shape[%s]: %w", cargoKey, err)
		}
		cfg.Shapes[CargoID(id)] = shape
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}
