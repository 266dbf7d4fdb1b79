package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/sortviz/internal/algo"
)

const (
	DefaultSize      = 80
	DefaultAlgorithm = "selection"
	DefaultFPS       = 13
	DefaultRepeat    = 1
	DefaultMaxRepeat = 64
	DefaultTheme     = "classic"
	DefaultDataDir   = ".sortviz"

	MaxSize = 512
)

type Config struct {
	Size      int    `yaml:"size"`
	Algorithm string `yaml:"algorithm"`
	FPS       int    `yaml:"fps"`
	Repeat    int    `yaml:"repeat"`
	MaxRepeat int    `yaml:"max_repeat"`
	Seed      int64  `yaml:"seed"`
	Theme     string `yaml:"theme"`
	Autoplay  bool   `yaml:"autoplay"`
	DataDir   string `yaml:"data_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		Size:      DefaultSize,
		Algorithm: DefaultAlgorithm,
		FPS:       DefaultFPS,
		Repeat:    DefaultRepeat,
		MaxRepeat: DefaultMaxRepeat,
		Theme:     DefaultTheme,
		DataDir:   DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encode config")
	}
	return errors.Wrap(os.WriteFile(path, data, 0644), "write config")
}

func (c *Config) Validate() error {
	if c.Size < 0 || c.Size > MaxSize {
		return errors.Errorf("size must be in [0, %d], got %d", MaxSize, c.Size)
	}
	if c.FPS <= 0 {
		return errors.Errorf("fps must be positive, got %d", c.FPS)
	}
	if c.MaxRepeat < 1 {
		return errors.Errorf("max_repeat must be at least 1, got %d", c.MaxRepeat)
	}
	if c.Repeat < 1 || c.Repeat > c.MaxRepeat {
		return errors.Errorf("repeat must be in [1, %d], got %d", c.MaxRepeat, c.Repeat)
	}
	if _, err := algo.ParseKind(c.Algorithm); err != nil {
		return err
	}
	return nil
}

// Kind returns the configured starting algorithm.
func (c *Config) Kind() (algo.Kind, error) {
	return algo.ParseKind(c.Algorithm)
}

// FrameDuration is the interval between rendered frames.
func (c *Config) FrameDuration() time.Duration {
	if c.FPS <= 0 {
		return time.Second / DefaultFPS
	}
	return time.Second / time.Duration(c.FPS)
}
