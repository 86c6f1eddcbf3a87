// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func Load() (*Config, error) {
	loadEnvFile()

	// Base config
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like CONTACT_RECIPIENT_EMAIL
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// Environment-specific overlay
	envConfigFile := fmt.Sprintf("config.%s", env)
	viper.SetConfigName(envConfigFile)
	_ = viper.MergeInConfig() // ignore error if not found

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if cfg.Database.Elasticsearch.URL == "" && len(cfg.Database.Elasticsearch.Addresses) > 0 {
		cfg.Database.Elasticsearch.URL = cfg.Database.Elasticsearch.Addresses[0]
	}

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Load .env from multiple possible locations so the binary and the tests
// resolve the same file regardless of working directory.
func loadEnvFile() {
	possiblePaths := []string{
		".env",
		"../.env",
		"../../.env",
		"../../../.env",
	}

	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// Find project root by looking for go.mod
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

// expandEnvVars resolves ${VAR} placeholders in string values.
func expandEnvVars(v *viper.Viper) {
	for _, key := range v.AllKeys() {
		val := v.Get(key)

		if strVal, ok := val.(string); ok {
			if strings.Contains(strVal, "${") || (strings.HasPrefix(strVal, "$") && len(strVal) > 1) {
				expanded := os.ExpandEnv(strVal)
				if expanded != strVal && expanded != "" {
					v.Set(key, expanded)
				}
			}
		}
	}
}

// Direct override if config values are still empty after expansion
func overrideEmptyConfig(cfg *Config) {
	if cfg.Contact.RecipientEmail == "" {
		if val := os.Getenv("CONTACT_RECIPIENT_EMAIL"); val != "" {
			cfg.Contact.RecipientEmail = val
		}
	}

	if cfg.Integrations.SMTP.Username == "" {
		if val := os.Getenv("SMTP_USERNAME"); val != "" {
			cfg.Integrations.SMTP.Username = val
		}
	}
	if cfg.Integrations.SMTP.Password == "" {
		if val := os.Getenv("SMTP_PASSWORD"); val != "" {
			cfg.Integrations.SMTP.Password = val
		}
	}

	if cfg.Database.Redis.Password == "" {
		if val := os.Getenv("REDIS_PASSWORD"); val != "" {
			cfg.Database.Redis.Password = val
		}
	}
}

// LoadFromFile loads configuration from a specific file path
func LoadFromFile(path string) (*Config, error) {
	loadEnvFile()

	viper.SetConfigFile(path)
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	expandEnvVars(viper.GetViper())

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	overrideEmptyConfig(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for optional configuration fields
func applyDefaults(cfg *Config) {
	// Server defaults
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8080"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10000
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 30000
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15000
	}

	// Contact defaults
	if cfg.Contact.Provider == "" {
		cfg.Contact.Provider = "smtp"
	}
	if cfg.Contact.Timeout == 0 {
		cfg.Contact.Timeout = 30000
	}
	if cfg.Integrations.SMTP.Port == 0 {
		cfg.Integrations.SMTP.Port = 587
	}

	// Wizard defaults
	if cfg.Wizard.SessionTTL == 0 {
		cfg.Wizard.SessionTTL = 60
	}
	cfg.Wizard.Estimates = mergeEstimateDefaults(cfg.Wizard.Estimates)

	// Search defaults
	if cfg.Search.Index == "" {
		cfg.Search.Index = "pillars"
	}

	// Logging defaults
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
}

// mergeEstimateDefaults fills any estimate knob the config leaves unset with
// the standard derivation constants.
func mergeEstimateDefaults(e EstimateConfig) EstimateConfig {
	d := DefaultEstimates()
	if e.BaseMonths == 0 {
		e.BaseMonths = d.BaseMonths
	}
	if len(e.ProjectTypeMonths) == 0 {
		e.ProjectTypeMonths = d.ProjectTypeMonths
	}
	if len(e.ScopeMonths) == 0 {
		e.ScopeMonths = d.ScopeMonths
	}
	if len(e.AccreditationScores) == 0 {
		e.AccreditationScores = d.AccreditationScores
	}
	if e.MediumThreshold == 0 {
		e.MediumThreshold = d.MediumThreshold
	}
	if e.HighThreshold == 0 {
		e.HighThreshold = d.HighThreshold
	}
	return e
}

// DefaultEstimates returns the standard estimate derivation constants.
func DefaultEstimates() EstimateConfig {
	return EstimateConfig{
		BaseMonths: 2,
		ProjectTypeMonths: map[string]int{
			"Hospital":        6,
			"Medical College": 9,
		},
		ScopeMonths: map[string]int{
			"Architecture": 2,
			"Equipment":    2,
			"Operations":   3,
			"Recruitment":  2,
		},
		AccreditationScores: map[string]int{
			"NABH": 2,
			"NABL": 2,
			"JCI":  4,
		},
		MediumThreshold: 3,
		HighThreshold:   6,
	}
}

// validateConfig validates critical configuration fields
func validateConfig(cfg *Config) error {
	if cfg.Server.Address == "" {
		return fmt.Errorf("server.address is required")
	}

	if err := cfg.Contact.Validate(); err != nil {
		return err
	}

	if cfg.Contact.Provider == "smtp" && cfg.Integrations.SMTP.Host == "" {
		return fmt.Errorf("integrations.smtp.host is required when contact.provider is smtp")
	}
	if cfg.Contact.Provider == "ses" && cfg.Integrations.AWS.Region == "" {
		return fmt.Errorf("integrations.aws.region is required when contact.provider is ses")
	}

	if cfg.Search.Enabled && cfg.Database.Elasticsearch.GetURL() == "" {
		return fmt.Errorf("database.elasticsearch.addresses or url is required when search.enabled")
	}

	return nil
}

// GetDuration converts milliseconds from config to time.Duration
func GetDuration(milliseconds int) time.Duration {
	return time.Duration(milliseconds) * time.Millisecond
}

// SessionTTL converts the wizard session TTL from minutes to a duration.
func (w WizardConfig) SessionTTLDuration() time.Duration {
	return time.Duration(w.SessionTTL) * time.Minute
}
