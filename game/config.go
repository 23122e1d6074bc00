package game

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
	"io/ioutil"
)

type GameConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// 1 in MineProbability chance for each square to hold a mine
	MineProbability int `yaml:"mine_probability"`

	Seed   int64  `yaml:"seed"`
	Metric Metric `yaml:"metric"`
	// Set by ParseConfig when the input names a seed, zero included
	HasSeed bool `yaml:"-"`

	// Fixed mine positions, see ParseLayout. Overrides Width, Height and
	// MineProbability when set.
	Layout string `yaml:"layout,omitempty"`

	Director Director `yaml:"-"`
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Width:           DefaultWidth,
		Height:          DefaultHeight,
		MineProbability: DefaultMineProbability,
		Metric:          AdjacentMetric,
		Director:        nil,
	}
}

func (config GameConfig) Validate() error {
	if config.Width <= 0 || config.Height <= 0 || config.MineProbability < 1 {
		return &InvalidBoardParamsError{
			Width:           config.Width,
			Height:          config.Height,
			MineProbability: config.MineProbability,
		}
	}
	return nil
}

func (config GameConfig) Serialize() string {
	out, err := yaml.Marshal(config)
	if err != nil {
		panic(err)
	}

	return string(out)
}

// ParseConfig reads a YAML config on top of the defaults of NewGameConfig
func ParseConfig(in []byte) (GameConfig, error) {
	config := NewGameConfig()
	if err := yaml.UnmarshalStrict(in, &config); err != nil {
		return config, errors.Wrap(err, "parsing game config")
	}

	var seed struct {
		Seed *int64 `yaml:"seed"`
	}
	if err := yaml.Unmarshal(in, &seed); err != nil {
		return config, errors.Wrap(err, "parsing game config")
	}
	config.HasSeed = seed.Seed != nil

	return config, nil
}

func LoadConfig(path string) (GameConfig, error) {
	in, err := ioutil.ReadFile(path)
	if err != nil {
		return NewGameConfig(), errors.Wrapf(err, "reading game config %s", path)
	}
	return ParseConfig(in)
}
