package testsupport

import (
	"path/filepath"
	"testing"

	"copydesk/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per test.
// It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DataDir = filepath.Join(base, "data")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Generator.APIKey = "test"
	cfg.CMS.Sites = []config.Site{
		{
			ID:          "demo",
			BaseURL:     "https://demo.example.com",
			Username:    "ops",
			AppPassword: "secret",
		},
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}
	return &cfg
}

// WithNtfyTopic sets the notification topic on the test config.
func WithNtfyTopic(topic string) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Notifications.NtfyTopic = topic
	}
}

// WithSites replaces the configured publish targets.
func WithSites(sites ...config.Site) ConfigOption {
	return func(cfg *config.Config) {
		cfg.CMS.Sites = sites
	}
}
