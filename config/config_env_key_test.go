package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"geocoding": map[string]any{
			"userAgent": "",
			"noDefault": false,
		},
		"wizard": map[string]any{
			"askElevator": true,
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"http": map[string]any{
			"maxRequestBodySize": "",
			"timeouts": map[string]any{
				"readHeaderTimeout": "5s",
			},
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "GEOCODING_USERAGENT", want: "geocoding.userAgent"},
		{envKey: "GEOCODING_NODEFAULT", want: "geocoding.noDefault"},
		{envKey: "WIZARD_ASKELEVATOR", want: "wizard.askElevator"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "HTTP_TIMEOUTS_READHEADERTIMEOUT", want: "http.timeouts.readHeaderTimeout"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	require.NotNil(t, cfg.Geocoding)
	assert.True(t, cfg.Geocoding.Enabled)
	assert.Equal(t, "ManagerDataEntryApp/1.0", cfg.Geocoding.UserAgent)
	assert.Equal(t, 10*time.Second, cfg.Geocoding.Timeout)
	assert.Equal(t, DefaultFallback(), cfg.Geocoding.Fallback)
	require.NotNil(t, cfg.Geocoding.Default)
	assert.Equal(t, DefaultCoordinate(), *cfg.Geocoding.Default)

	require.NotNil(t, cfg.Wizard.AskElevator)
	assert.True(t, *cfg.Wizard.AskElevator)
	assert.Equal(t, 256, cfg.QRCode.Size)
	assert.Equal(t, "100KB", cfg.HTTP.MaxRequestBodySize)
	require.NotNil(t, cfg.Worker)
	assert.Equal(t, 8081, cfg.Worker.Port)
	assert.Equal(t, 500, cfg.Worker.History)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	ask := false
	cfg := &Config{
		Geocoding: &GeocodingConfig{
			Fallback:  []FallbackEntry{},
			NoDefault: true,
		},
		Wizard: &WizardConfig{AskElevator: &ask},
	}
	applyDefaults(cfg)

	assert.False(t, cfg.Geocoding.Enabled)
	assert.Empty(t, cfg.Geocoding.Fallback)
	assert.Nil(t, cfg.Geocoding.Default)
	assert.False(t, *cfg.Wizard.AskElevator)
}

func TestLoadWithEnv_ReadsYAMLAndEnv(t *testing.T) {
	t.Setenv("GEOCODING_USERAGENT", "test-agent/2.0")
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	require.NotNil(t, cfg.Geocoding)
	assert.Equal(t, "test-agent/2.0", cfg.Geocoding.UserAgent)
	assert.Equal(t, 10*time.Second, cfg.Geocoding.Timeout)
	require.Len(t, cfg.Geocoding.Fallback, 5)
	assert.Equal(t, "Karl Johans gate", cfg.Geocoding.Fallback[0].Match)
	assert.Len(t, cfg.Wizard.Scenarios, 4)
	require.NotNil(t, cfg.Worker)
	assert.Equal(t, 8081, cfg.Worker.Port)
}
