package contact

import (
	"fmt"
	"time"

	appconfig "valuemed-backend/internal/common/config"
)

type Config struct {
	Provider         string        `mapstructure:"provider"`
	RecipientEmail   string        `mapstructure:"recipient_email"`
	Timeout          time.Duration `mapstructure:"timeout"`
	SMTPHost         string        `mapstructure:"smtp_host"`
	SMTPPort         int           `mapstructure:"smtp_port"`
	SMTPUsername     string        `mapstructure:"smtp_username"`
	SMTPPassword     string        `mapstructure:"smtp_password"`
	UseTLS           bool          `mapstructure:"use_tls"`
	SESFromEmail     string        `mapstructure:"ses_from_email"`
	LeadAlertEnabled bool          `mapstructure:"lead_alert_enabled"`
	LeadAlertPhone   string        `mapstructure:"lead_alert_phone"`
}

func DefaultConfig() *Config {
	return &Config{
		Provider: "smtp",
		Timeout:  30 * time.Second,
		SMTPPort: 587,
		UseTLS:   true,
	}
}

// FromAppConfig flattens the relevant application config sections into
// the relay's own config.
func FromAppConfig(cfg *appconfig.Config) *Config {
	c := DefaultConfig()
	c.Provider = cfg.Contact.Provider
	c.RecipientEmail = cfg.Contact.RecipientEmail
	if cfg.Contact.Timeout > 0 {
		c.Timeout = time.Duration(cfg.Contact.Timeout) * time.Millisecond
	}
	c.SMTPHost = cfg.Integrations.SMTP.Host
	if cfg.Integrations.SMTP.Port > 0 {
		c.SMTPPort = cfg.Integrations.SMTP.Port
	}
	c.SMTPUsername = cfg.Integrations.SMTP.Username
	c.SMTPPassword = cfg.Integrations.SMTP.Password
	c.UseTLS = cfg.Integrations.SMTP.UseTLS
	c.SESFromEmail = cfg.Integrations.AWS.SES.FromEmail
	c.LeadAlertEnabled = cfg.Contact.LeadAlert.Enabled
	c.LeadAlertPhone = cfg.Contact.LeadAlert.PhoneNumber
	return c
}

func (c *Config) Validate() error {
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	if c.RecipientEmail == "" {
		return fmt.Errorf("recipient_email is required")
	}
	switch c.Provider {
	case "smtp":
		if c.SMTPHost == "" {
			return fmt.Errorf("smtp_host is required")
		}
		if c.SMTPPort <= 0 || c.SMTPPort > 65535 {
			return fmt.Errorf("smtp_port must be between 1 and 65535")
		}
	case "ses":
		if c.SESFromEmail == "" {
			return fmt.Errorf("ses_from_email is required")
		}
	default:
		return fmt.Errorf("provider must be \"smtp\" or \"ses\"")
	}
	if c.LeadAlertEnabled && c.LeadAlertPhone == "" {
		return fmt.Errorf("lead_alert_phone is required when lead alerts are enabled")
	}
	return nil
}
