package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Default limits. MaxCommentsPerPost matches the cap the comment source
// enforces upstream.
const (
	DefaultMaxPosts           = 4
	DefaultWorkerCount        = 4
	DefaultMaxCommentsPerPost = 50
)

// DefaultMoodLabels is the closed label set used for caption mood
// classification.
var DefaultMoodLabels = []string{"motivation", "comedy", "brainrot", "informative"}

// Config holds runtime configuration. Values come from the optional YAML
// config file, with CLI flags taking precedence.
type Config struct {
	MoodLabels         []string `yaml:"mood_labels"`
	WorkerCount        int      `yaml:"workers"`
	MaxCommentsPerPost int      `yaml:"max_comments_per_post"`

	// Inference endpoints. Empty values fall back to the public
	// HuggingFace inference API.
	MoodModelURL      string `yaml:"mood_model_url"`
	SentimentModelURL string `yaml:"sentiment_model_url"`
}

// DefaultConfig returns a Config with all defaults applied.
func DefaultConfig() *Config {
	return &Config{
		MoodLabels:         append([]string(nil), DefaultMoodLabels...),
		WorkerCount:        DefaultWorkerCount,
		MaxCommentsPerPost: DefaultMaxCommentsPerPost,
	}
}

// LoadConfig reads a YAML config file and applies defaults for anything
// left unset. A missing file is not an error; defaults are returned.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if len(cfg.MoodLabels) == 0 {
		cfg.MoodLabels = append([]string(nil), DefaultMoodLabels...)
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = DefaultWorkerCount
	}
	if cfg.MaxCommentsPerPost <= 0 {
		cfg.MaxCommentsPerPost = DefaultMaxCommentsPerPost
	}

	return cfg, nil
}
