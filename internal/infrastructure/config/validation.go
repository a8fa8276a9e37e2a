package config

import (
	"fmt"
	"strings"

	"github.com/gobwas/glob"

	"github.com/bnema/webpane/internal/domain/entity"
	"github.com/bnema/webpane/internal/ui/input"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateWebPane(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateKeybindings(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateWebPane(config *Config) []string {
	var validationErrors []string
	wait := config.WebPane.AutoReloadWait
	if wait < entity.AutoReloadWaitMin || wait > entity.AutoReloadWaitMax {
		validationErrors = append(validationErrors, fmt.Sprintf(
			"webpane.auto_reload_wait must be between %d and %d (got %d)",
			entity.AutoReloadWaitMin, entity.AutoReloadWaitMax, wait))
	}
	for _, pattern := range config.WebPane.ReloadCompanions {
		if _, err := glob.Compile(pattern); err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf(
				"webpane.reload_companions: invalid pattern %q: %v", pattern, err))
		}
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch strings.ToLower(config.Logging.Level) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "disabled", "off":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	switch strings.ToLower(config.Logging.Format) {
	case "", "console", "json":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be console or json (got %q)", config.Logging.Format))
	}
	if config.Logging.EnableFileLog && config.Logging.MaxSizeMB < 1 {
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.max_size_mb must be at least 1 (got %d)", config.Logging.MaxSizeMB))
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must not be negative")
	}
	if config.Logging.MaxAgeDays < 0 {
		validationErrors = append(validationErrors, "logging.max_age_days must not be negative")
	}
	return validationErrors
}

func validateKeybindings(config *Config) []string {
	var validationErrors []string
	for key := range config.Keybindings {
		if _, err := input.ParseKeyString(key); err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("keybindings: %v", err))
		}
	}
	return validationErrors
}
