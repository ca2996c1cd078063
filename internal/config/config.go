// Package config provides configuration types and defaults for signup.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/signup/internal/form"
	"github.com/zjrosen/signup/internal/log"
)

// Config holds all configuration options for signup.
type Config struct {
	Service ServiceConfig `mapstructure:"service"`
	Form    FormConfig    `mapstructure:"form"`
	History HistoryConfig `mapstructure:"history"`
	Tracing TracingConfig `mapstructure:"tracing"`
	Theme   ThemeConfig   `mapstructure:"theme"`
	Debug   bool          `mapstructure:"debug"`
}

// ServiceConfig locates the registration service.
type ServiceConfig struct {
	BaseURL      string        `mapstructure:"base_url"`
	RegisterPath string        `mapstructure:"register_path"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

// FormConfig selects form behavior.
type FormConfig struct {
	// GatePolicy is "eager" (all fields filled) or "strict" (all fields valid).
	GatePolicy string `mapstructure:"gate_policy"`

	// PasswordCheck is "current" or "previous". "previous" validates the
	// password one keystroke behind, as the original web form did.
	PasswordCheck string `mapstructure:"password_check"`
}

// HistoryConfig controls the local attempt journal.
type HistoryConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// TracingConfig holds OpenTelemetry settings.
type TracingConfig struct {
	Enabled      bool    `mapstructure:"enabled"`
	Exporter     string  `mapstructure:"exporter"`      // "none", "file", "stdout", "otlp"
	FilePath     string  `mapstructure:"file_path"`     // required for "file"
	OTLPEndpoint string  `mapstructure:"otlp_endpoint"` // required for "otlp"
	SampleRate   float64 `mapstructure:"sample_rate"`   // 0.0 - 1.0
}

// ThemeConfig holds theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base: "default",
	// "paper", "high-contrast".
	Preset string `mapstructure:"preset"`

	// Colors overrides individual tokens. Supports nested YAML and quoted
	// dot notation ("status.error": "#FF0000").
	Colors map[string]any `mapstructure:"colors"`
}

// FlattenedColors returns Colors flattened to dot-notation keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		}
	}
}

// Gate parses Form.GatePolicy.
func (f FormConfig) Gate() (form.GatePolicy, error) {
	return form.ParseGatePolicy(f.GatePolicy)
}

// PasswordCheckMode parses Form.PasswordCheck.
func (f FormConfig) PasswordCheckMode() (form.PasswordCheck, error) {
	return form.ParsePasswordCheck(f.PasswordCheck)
}

// Dir returns ~/.config/signup, or "" if the home directory is unknown.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "signup")
}

// DefaultHistoryPath returns the default journal location.
func DefaultHistoryPath() string {
	if dir := Dir(); dir != "" {
		return filepath.Join(dir, "history.db")
	}
	return ""
}

// DefaultTracesFilePath returns the default path for trace file export.
func DefaultTracesFilePath() string {
	if dir := Dir(); dir != "" {
		return filepath.Join(dir, "traces", "traces.jsonl")
	}
	return ""
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Service: ServiceConfig{
			BaseURL:      "http://localhost:8000",
			RegisterPath: "/users/register",
			Timeout:      10 * time.Second,
		},
		Form: FormConfig{
			GatePolicy:    "eager",
			PasswordCheck: "current",
		},
		History: HistoryConfig{
			Enabled: true,
			Path:    "", // Derived from config dir at runtime
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "", // Derived from config dir at runtime
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// Validate checks the whole configuration.
func Validate(cfg Config) error {
	if err := ValidateService(cfg.Service); err != nil {
		return err
	}
	if err := ValidateForm(cfg.Form); err != nil {
		return err
	}
	return ValidateTracing(cfg.Tracing)
}

// ValidateService checks the service endpoint settings.
func ValidateService(svc ServiceConfig) error {
	u, err := url.Parse(svc.BaseURL)
	if err != nil || u.Host == "" {
		return fmt.Errorf("service.base_url must be an absolute URL, got %q", svc.BaseURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("service.base_url must use http or https, got %q", u.Scheme)
	}
	if svc.Timeout <= 0 {
		return fmt.Errorf("service.timeout must be positive, got %s", svc.Timeout)
	}
	return nil
}

// ValidateForm checks the form behavior settings.
func ValidateForm(f FormConfig) error {
	if _, err := f.Gate(); err != nil {
		return fmt.Errorf("form.gate_policy: %w", err)
	}
	if _, err := f.PasswordCheckMode(); err != nil {
		return fmt.Errorf("form.password_check: %w", err)
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
func ValidateTracing(tracing TracingConfig) error {
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout", "otlp":
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
		}
	}

	if tracing.Enabled {
		if tracing.Exporter == "file" && tracing.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# signup configuration

# Registration service
service:
  base_url: http://localhost:8000
  register_path: /users/register
  timeout: 10s            # Give up and report the service as unavailable

# Form behavior
form:
  gate_policy: eager      # "eager": Sign Up enabled once every field has a value
                          # "strict": Sign Up enabled only when every field is valid
  password_check: current # "previous" validates the password one keystroke behind

# Local journal of registration attempts (passwords are never stored)
history:
  enabled: true
  # path: ~/.config/signup/history.db

# Theme
# theme:
#   preset: paper  # default, paper, high-contrast
#   colors:
#     status.error: "#FF0000"

# Distributed tracing (OpenTelemetry)
# tracing:
#   enabled: true
#   exporter: otlp
#   otlp_endpoint: localhost:4317
#   sample_rate: 1.0
`
}

// WriteDefaultConfig creates a config file at the given path with default
// settings and comments, creating the parent directory if needed.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
