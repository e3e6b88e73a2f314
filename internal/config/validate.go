package config

import (
	"fmt"
	"slices"
	"strings"
)

var (
	logLevels  = []string{"debug", "info", "warn", "error"}
	logFormats = []string{"json", "text"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}
	if err := c.Chef.validate(); err != nil {
		return fmt.Errorf("chef: %w", err)
	}
	return nil
}

func (l *LogConfig) validate() error {
	if !slices.Contains(logLevels, strings.ToLower(l.Level)) {
		return fmt.Errorf("level must be one of %s (got %q)", strings.Join(logLevels, ", "), l.Level)
	}
	if !slices.Contains(logFormats, strings.ToLower(l.Format)) {
		return fmt.Errorf("format must be one of %s (got %q)", strings.Join(logFormats, ", "), l.Format)
	}
	return nil
}

func (c *ChefConfig) validate() error {
	if strings.TrimSpace(c.SourceDir) == "" {
		return fmt.Errorf("source_dir is required")
	}
	if strings.TrimSpace(c.TreesDir) == "" {
		return fmt.Errorf("trees_dir is required")
	}
	if !slices.Contains(VideoSources, c.VideoSource) {
		return fmt.Errorf("video_source must be one of %s (got %q)", strings.Join(VideoSources, ", "), c.VideoSource)
	}
	if c.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be > 0 (got %d)", c.Concurrency)
	}
	return nil
}
