package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultFPS     = 15
	DefaultDensity = 0.25
	DefaultAlive   = "o"
	DefaultDead    = " "
	DefaultDataDir = ".lifelab"
)

type Config struct {
	Pattern    string  `yaml:"pattern"`
	FPS        int     `yaml:"fps"`
	Width      int     `yaml:"width"`
	Height     int     `yaml:"height"`
	Density    float64 `yaml:"density"`
	Seed       int64   `yaml:"seed"`
	AliveGlyph string  `yaml:"alive_glyph"`
	DeadGlyph  string  `yaml:"dead_glyph"`
	DataDir    string  `yaml:"data_dir"`
}

func DefaultConfig() *Config {
	return &Config{
		FPS:        DefaultFPS,
		Density:    DefaultDensity,
		AliveGlyph: DefaultAlive,
		DeadGlyph:  DefaultDead,
		DataDir:    DefaultDataDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, cfg.Validate()
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.FPS < 0 {
		return fmt.Errorf("fps must not be negative, got %d", c.FPS)
	}
	if c.Density < 0 || c.Density > 1 {
		return fmt.Errorf("density must be in [0,1], got %f", c.Density)
	}
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("dimensions must not be negative, got %dx%d", c.Width, c.Height)
	}
	if len(c.AliveGlyph) != 1 || len(c.DeadGlyph) != 1 {
		return fmt.Errorf("glyphs must be single characters")
	}
	return nil
}

// Glyphs returns the configured alive/dead glyph bytes.
func (c *Config) Glyphs() (alive, dead byte) {
	return c.AliveGlyph[0], c.DeadGlyph[0]
}
