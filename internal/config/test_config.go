package config

import "time"

// TestConfig returns a config suitable for testing
func TestConfig() *Config {
	return &Config{
		YouTube: YouTubeConfig{
			APIKey:      "test-key",
			Endpoint:    "http://127.0.0.1/youtube/v3/",
			MaxResults:  10,
			HTTPTimeout: 5 * time.Second,
			UserAgent:   "tubegram-test/1.0",
		},
		UI:    defaultConfig().UI,
		Media: defaultConfig().Media,
		Keys:  defaultConfig().Keys,
		Log: LogConfig{
			Level: "off",
		},
	}
}
