package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the config.yaml file. Holds the
// keyword hygiene settings that are easier to manage in YAML than env vars.
type YAMLConfig struct {
	KeywordHygiene KeywordHygieneConfig `yaml:"keyword_hygiene"`
}

// KeywordHygieneConfig tunes the background keyword cleanup job.
type KeywordHygieneConfig struct {
	Enabled   bool     `yaml:"enabled"`
	Interval  string   `yaml:"interval"`   // Go duration, e.g. "1h"
	Stoplist  []string `yaml:"stoplist"`   // extra terms stripped from article keywords
	BatchSize int      `yaml:"batch_size"` // articles cleaned per run, default 200
}

// defaultStoplist covers markup and calendar noise that HTML-derived keyword
// extraction tends to produce.
var defaultStoplist = []string{
	"pln", "pay", "margin-bottom", "display", "height",
	"monday", "tuesday", "wednesday", "thursday", "friday", "saturday", "sunday",
	"href", "rel", "months", "vspace", "image", "alt", "years",
	"head", "class", "time", "jpeg", "left", "width", "type",
	"year", "month", "day", "hspace", "src", "img", "align",
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// LoadYAMLConfig loads the YAML configuration file. Path is determined by
// CONFIG_FILE env var, defaulting to "config.yaml". Returns defaults without
// error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	cfg := &YAMLConfig{
		KeywordHygiene: KeywordHygieneConfig{
			Enabled:   true,
			Interval:  "1h",
			BatchSize: 200,
		},
	}

	path := getEnv("CONFIG_FILE", "config.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return cfg, nil
		}
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.KeywordHygiene.Interval == "" {
		cfg.KeywordHygiene.Interval = "1h"
	}
	if cfg.KeywordHygiene.BatchSize <= 0 {
		cfg.KeywordHygiene.BatchSize = 200
	}

	return cfg, nil
}

// HygieneInterval parses the cleanup interval, falling back to hourly on a
// malformed value.
func (c *YAMLConfig) HygieneInterval() time.Duration {
	d, err := time.ParseDuration(c.KeywordHygiene.Interval)
	if err != nil || d <= 0 {
		return time.Hour
	}
	return d
}

// Stoplist returns the built-in stoplist merged with any configured extras.
func (c *YAMLConfig) Stoplist() map[string]bool {
	stop := make(map[string]bool, len(defaultStoplist)+len(c.KeywordHygiene.Stoplist))
	for _, w := range defaultStoplist {
		stop[w] = true
	}
	for _, w := range c.KeywordHygiene.Stoplist {
		stop[w] = true
	}
	return stop
}
