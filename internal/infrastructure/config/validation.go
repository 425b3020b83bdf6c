package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateHistory(config)...)
	validationErrors = append(validationErrors, validateMessages(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateHistory(config *Config) []string {
	if config.History.DisplayLimit < 0 {
		return []string{"history.display_limit must be non-negative"}
	}
	return nil
}

func validateMessages(config *Config) []string {
	var validationErrors []string
	if config.Messages.ErrorDuration <= 0 {
		validationErrors = append(validationErrors, "messages.error_duration must be positive")
	}
	if config.Messages.ToastDuration <= 0 {
		validationErrors = append(validationErrors, "messages.toast_duration must be positive")
	}
	return validationErrors
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	if config.Logging.Level != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(config.Logging.Level)); err != nil {
			validationErrors = append(validationErrors, fmt.Sprintf("logging.level %q is not a valid level", config.Logging.Level))
		}
	}

	switch strings.ToLower(config.Logging.Format) {
	case "", "console", "json", "text":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.format must be one of: console, json, text (got %q)", config.Logging.Format))
	}

	return validationErrors
}
