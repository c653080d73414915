package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildFrom merges prefabricated configs through the builder without going
// through env/flag/json parsing.
func buildFrom(t *testing.T, configs ...*StructuredConfig) (*StructuredConfig, error) {
	t.Helper()
	b := newConfigBuilder()
	b.configs = append(b.configs, configs...)
	return b.build()
}

func validConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			EncryptionKey: "a2V5",
			AdminSecret:   "sekret",
		},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/assess360"}},
	}
}

func TestBuild_EarlierSourceWins(t *testing.T) {
	high := &StructuredConfig{
		App:     App{EncryptionKey: "from-env"},
		Storage: Storage{DB: DB{DSN: "postgres://env"}},
	}
	low := &StructuredConfig{
		App:     App{EncryptionKey: "from-json", AdminSecret: "json-secret"},
		Storage: Storage{DB: DB{DSN: "postgres://json"}},
	}

	cfg, err := buildFrom(t, high, low)
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.App.EncryptionKey)
	assert.Equal(t, "postgres://env", cfg.Storage.DB.DSN)
	// Fields unset in the higher-priority source fall through.
	assert.Equal(t, "json-secret", cfg.App.AdminSecret)
}

func TestBuild_AppliesDefaults(t *testing.T) {
	cfg, err := buildFrom(t, validConfig())
	require.NoError(t, err)

	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, []string{defaultOpenPrefix}, cfg.Questions.OpenEndedPrefixes)
}

func TestBuild_ValidationFailures(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*StructuredConfig)
		wantErr error
	}{
		{"missing encryption key", func(c *StructuredConfig) { c.App.EncryptionKey = "" }, ErrNoEncryptionKey},
		{"missing admin secret", func(c *StructuredConfig) { c.App.AdminSecret = "" }, ErrNoAdminSecret},
		{"missing DSN", func(c *StructuredConfig) { c.Storage.DB.DSN = "" }, ErrNoDatabaseDSN},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(cfg)

			_, err := buildFrom(t, cfg)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}
