package config

import "time"

const (
	defaultHistoryDisplayLimit = 5
	defaultErrorDuration       = 5 * time.Second
	defaultToastDuration       = 2 * time.Second
)

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Storage: StorageConfig{
			Path: "", // resolved to the XDG data directory on load
		},
		History: HistoryConfig{
			DisplayLimit: defaultHistoryDisplayLimit,
		},
		Messages: MessagesConfig{
			ErrorDuration: defaultErrorDuration,
			ToastDuration: defaultToastDuration,
		},
		Export: ExportConfig{
			Dir: ".",
		},
		Clipboard: ClipboardConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "console",
		},
	}
}
