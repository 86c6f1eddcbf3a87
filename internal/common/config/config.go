// internal/common/config/config.go
package config

import "fmt"

// Config is the main application configuration struct.
type Config struct {
	App          AppConfig         `mapstructure:"app"`
	Server       ServerConfig      `mapstructure:"server"`
	Database     DatabaseConfig    `mapstructure:"database"`
	Contact      ContactConfig     `mapstructure:"contact"`
	Wizard       WizardConfig      `mapstructure:"wizard"`
	Search       SearchConfig      `mapstructure:"search"`
	Integrations IntegrationConfig `mapstructure:"integrations"`
	Logging      LoggingConfig     `mapstructure:"logging"`
	Tracing      TracingConfig     `mapstructure:"tracing"`
}

// TracingConfig holds span export settings; empty endpoint disables export.
type TracingConfig struct {
	JaegerEndpoint string `mapstructure:"jaeger_endpoint"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Address         string `mapstructure:"address"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

type DatabaseConfig struct {
	Redis         RedisConfig         `mapstructure:"redis"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type ElasticsearchConfig struct {
	Addresses []string `mapstructure:"addresses"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
	URL       string   `mapstructure:"url"` // Single URL for backwards compatibility
}

// GetURL returns the first address or the URL field
func (e ElasticsearchConfig) GetURL() string {
	if e.URL != "" {
		return e.URL
	}
	if len(e.Addresses) > 0 {
		return e.Addresses[0]
	}
	return ""
}

// --- Specific Configuration Sections ---

// ContactConfig holds settings for the contact submission relay.
type ContactConfig struct {
	Provider       string `mapstructure:"provider"` // "smtp" or "ses"
	RecipientEmail string `mapstructure:"recipient_email"`
	Timeout        int    `mapstructure:"timeout"` // milliseconds
	LeadAlert      struct {
		Enabled     bool   `mapstructure:"enabled"`
		PhoneNumber string `mapstructure:"phone_number"`
	} `mapstructure:"lead_alert"`
}

// WizardConfig holds settings for the project-builder wizard.
type WizardConfig struct {
	SessionTTL int            `mapstructure:"session_ttl"` // minutes
	Estimates  EstimateConfig `mapstructure:"estimates"`
}

// EstimateConfig drives the wizard's duration/complexity derivation.
// Project type keys are matched by substring containment against the
// selected project type; scope and accreditation keys are exact.
type EstimateConfig struct {
	BaseMonths          int            `mapstructure:"base_months"`
	ProjectTypeMonths   map[string]int `mapstructure:"project_type_months"`
	ScopeMonths         map[string]int `mapstructure:"scope_months"`
	AccreditationScores map[string]int `mapstructure:"accreditation_scores"`
	MediumThreshold     int            `mapstructure:"medium_threshold"`
	HighThreshold       int            `mapstructure:"high_threshold"`
}

// SearchConfig holds settings for the optional pillar search index.
type SearchConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Index   string `mapstructure:"index"`
}

// IntegrationConfig holds settings for email and messaging transports.
type IntegrationConfig struct {
	AWS struct {
		Region string `mapstructure:"region"`
		SES    struct {
			Enabled   bool   `mapstructure:"enabled"`
			FromEmail string `mapstructure:"from_email"`
		} `mapstructure:"ses"`
		SNS struct {
			Enabled            bool   `mapstructure:"enabled"`
			DefaultSMSSenderID string `mapstructure:"default_sms_sender_id"`
		} `mapstructure:"sns"`
	} `mapstructure:"aws"`

	SMTP struct {
		Host        string `mapstructure:"host"`
		Port        int    `mapstructure:"port"`
		Username    string `mapstructure:"username"`
		Password    string `mapstructure:"password"`
		UseTLS      bool   `mapstructure:"use_tls"`
		DefaultFrom string `mapstructure:"default_from"`
	} `mapstructure:"smtp"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}

// Validate checks the contact section for a usable transport.
func (c ContactConfig) Validate() error {
	if c.RecipientEmail == "" {
		return fmt.Errorf("contact.recipient_email is required")
	}
	switch c.Provider {
	case "smtp", "ses":
		return nil
	default:
		return fmt.Errorf("contact.provider must be \"smtp\" or \"ses\", got %q", c.Provider)
	}
}
