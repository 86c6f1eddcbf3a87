package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func minimalConfig() *Config {
	cfg := &Config{}
	cfg.Contact.RecipientEmail = "info@valuemedhealthcare.com"
	cfg.Integrations.SMTP.Host = "smtp.example.com"
	return cfg
}

func TestApplyDefaults(t *testing.T) {
	cfg := minimalConfig()
	applyDefaults(cfg)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, "smtp", cfg.Contact.Provider)
	assert.Equal(t, 30000, cfg.Contact.Timeout)
	assert.Equal(t, 587, cfg.Integrations.SMTP.Port)
	assert.Equal(t, 60, cfg.Wizard.SessionTTL)
	assert.Equal(t, "pillars", cfg.Search.Index)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestDefaultEstimates(t *testing.T) {
	d := DefaultEstimates()

	assert.Equal(t, 2, d.BaseMonths)
	assert.Equal(t, 6, d.ProjectTypeMonths["Hospital"])
	assert.Equal(t, 9, d.ProjectTypeMonths["Medical College"])
	assert.Equal(t, 3, d.ScopeMonths["Operations"])
	assert.Equal(t, 4, d.AccreditationScores["JCI"])
	assert.Equal(t, 3, d.MediumThreshold)
	assert.Equal(t, 6, d.HighThreshold)
}

func TestMergeEstimateDefaults(t *testing.T) {
	partial := EstimateConfig{BaseMonths: 5}
	merged := mergeEstimateDefaults(partial)

	assert.Equal(t, 5, merged.BaseMonths, "explicit value wins")
	assert.Equal(t, 6, merged.ProjectTypeMonths["Hospital"], "unset maps fall back")
	assert.Equal(t, 6, merged.HighThreshold)
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(c *Config) {}, ""},
		{"missing recipient", func(c *Config) { c.Contact.RecipientEmail = "" }, "recipient_email"},
		{"bad provider", func(c *Config) { c.Contact.Provider = "carrier-pigeon" }, "provider"},
		{"smtp without host", func(c *Config) { c.Integrations.SMTP.Host = "" }, "smtp.host"},
		{
			"ses without region",
			func(c *Config) { c.Contact.Provider = "ses" },
			"aws.region",
		},
		{
			"search without address",
			func(c *Config) { c.Search.Enabled = true },
			"elasticsearch",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := minimalConfig()
			applyDefaults(cfg)
			tt.mutate(cfg)
			err := validateConfig(cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestDurations(t *testing.T) {
	assert.Equal(t, 1500*time.Millisecond, GetDuration(1500))

	w := WizardConfig{SessionTTL: 90}
	assert.Equal(t, 90*time.Minute, w.SessionTTLDuration())
}
