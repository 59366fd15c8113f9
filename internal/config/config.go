// Package config holds the settings for one run.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"genealogy/internal/genealogy"
	"genealogy/internal/preview"
	"genealogy/internal/render"
)

// Config is loaded once before a run and does not change during it.
type Config struct {
	ShowEggs       bool   `yaml:"show_eggs"`
	ShowLivingOnly bool   `yaml:"show_living_only"`
	Duplicates     string `yaml:"duplicates"`

	Format string `yaml:"format"`
	// Output is the base path for rendered files, without extension.
	// Empty derives it from the input file name.
	Output string `yaml:"output"`

	Preview      string `yaml:"preview"`
	PreviewWidth int    `yaml:"preview_width"`

	LogFile string `yaml:"log_file"`
	Debug   bool   `yaml:"debug"`
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		ShowEggs:     true,
		Duplicates:   genealogy.DuplicateReplace.String(),
		Format:       string(render.FormatSVG),
		PreviewWidth: 1200,
	}
}

// Load reads a YAML file over the defaults. A missing file is not an error
// when optional is set.
func Load(path string, optional bool) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if optional && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks every enumerated setting.
func (c Config) Validate() error {
	if _, err := genealogy.ParseDuplicatePolicy(c.Duplicates); err != nil {
		return err
	}
	if _, err := render.ParseFormat(c.Format); err != nil {
		return err
	}
	if _, err := preview.ParseProtocol(c.Preview); err != nil {
		return err
	}
	if c.PreviewWidth < 0 {
		return fmt.Errorf("preview_width must not be negative, got %d", c.PreviewWidth)
	}
	if c.Preview != "" && c.Preview != "none" && c.Format != string(render.FormatPNG) {
		return fmt.Errorf("preview requires format png, got %s", c.Format)
	}
	return nil
}

// Options converts the settings into pipeline options.
func (c Config) Options() (genealogy.Options, error) {
	policy, err := genealogy.ParseDuplicatePolicy(c.Duplicates)
	if err != nil {
		return genealogy.Options{}, err
	}
	return genealogy.Options{
		ShowEggs:       c.ShowEggs,
		ShowLivingOnly: c.ShowLivingOnly,
		Duplicates:     policy,
	}, nil
}

// PreviewOptions converts the preview settings.
func (c Config) PreviewOptions() (preview.Options, error) {
	p, err := preview.ParseProtocol(c.Preview)
	if err != nil {
		return preview.Options{}, err
	}
	return preview.Options{Protocol: p, MaxWidth: c.PreviewWidth}, nil
}
