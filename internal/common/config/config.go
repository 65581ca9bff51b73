package config

import "fmt"

// Config is the main portal configuration struct.
type Config struct {
	App         AppConfig         `mapstructure:"app"`
	API         APIConfig         `mapstructure:"api"`
	Redis       RedisConfig       `mapstructure:"redis"`
	Auth        AuthConfig        `mapstructure:"auth"`
	Application ApplicationConfig `mapstructure:"application"`
	Email       EmailConfig       `mapstructure:"email"`
	Export      ExportConfig      `mapstructure:"export"`
	Logging     LoggingConfig     `mapstructure:"logging"`
	Metrics     MetricsConfig     `mapstructure:"metrics"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// APIConfig points the service layer at the grievance backend.
type APIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	RequestTimeout int    `mapstructure:"request_timeout"`  // milliseconds
	MaxRetries     int    `mapstructure:"max_retries"`      // idempotent GETs only
	RetryBaseDelay int    `mapstructure:"retry_base_delay"` // milliseconds
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type AuthConfig struct {
	JWTSecret         string `mapstructure:"jwt_secret"`
	SessionTTLMinutes int    `mapstructure:"session_ttl_minutes"`
}

// ApplicationConfig holds the staff-application flow settings. Graduation year
// bounds are configuration, not literals, so they do not drift with the calendar.
type ApplicationConfig struct {
	GraduationYearMin int `mapstructure:"graduation_year_min"`
	GraduationYearMax int `mapstructure:"graduation_year_max"`
	SubmitTimeoutSecs int `mapstructure:"submit_timeout_seconds"`
	PassThresholdPct  int `mapstructure:"pass_threshold_percent"`
}

type EmailConfig struct {
	Provider  string `mapstructure:"provider"` // "ses" or "smtp"
	FromEmail string `mapstructure:"from_email"`

	AWS struct {
		Region string `mapstructure:"region"`
	} `mapstructure:"aws"`

	SMTP struct {
		Host     string `mapstructure:"host"`
		Port     int    `mapstructure:"port"`
		Username string `mapstructure:"username"`
		Password string `mapstructure:"password"`
		UseTLS   bool   `mapstructure:"use_tls"`
	} `mapstructure:"smtp"`
}

type ExportConfig struct {
	OutputDir string `mapstructure:"output_dir"`
	PDFTitle  string `mapstructure:"pdf_title"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Address string `mapstructure:"address"`
}

// Validate checks the settings the portal cannot run without.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if c.Application.GraduationYearMin >= c.Application.GraduationYearMax {
		return fmt.Errorf("application.graduation_year_min must be below graduation_year_max")
	}
	if c.Application.PassThresholdPct < 0 || c.Application.PassThresholdPct > 100 {
		return fmt.Errorf("application.pass_threshold_percent must be within [0,100]")
	}
	return nil
}
