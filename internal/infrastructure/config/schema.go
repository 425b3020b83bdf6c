package config

import "time"

// Config represents the complete configuration for jsonpeek.
type Config struct {
	Storage   StorageConfig   `mapstructure:"storage" yaml:"storage" toml:"storage" json:"storage"`
	History   HistoryConfig   `mapstructure:"history" yaml:"history" toml:"history" json:"history"`
	Messages  MessagesConfig  `mapstructure:"messages" yaml:"messages" toml:"messages" json:"messages"`
	Export    ExportConfig    `mapstructure:"export" yaml:"export" toml:"export" json:"export"`
	Clipboard ClipboardConfig `mapstructure:"clipboard" yaml:"clipboard" toml:"clipboard" json:"clipboard"`
	Logging   LoggingConfig   `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
}

// StorageConfig locates the key-value database.
type StorageConfig struct {
	// Path is the sqlite database file. Empty means $XDG_DATA_HOME/jsonpeek/jsonpeek.sqlite.
	Path string `mapstructure:"path" yaml:"path" toml:"path" json:"path" jsonschema:"description=SQLite database file; empty uses the XDG data directory"`
}

// HistoryConfig controls the history list shown in the popup.
type HistoryConfig struct {
	// DisplayLimit is how many recent entries the popup lists. Zero lists all stored entries.
	DisplayLimit int `mapstructure:"display_limit" yaml:"display_limit" toml:"display_limit" json:"display_limit" jsonschema:"minimum=0,default=5"`
}

// MessagesConfig controls how long transient messages stay visible.
type MessagesConfig struct {
	ErrorDuration time.Duration `mapstructure:"error_duration" yaml:"error_duration" toml:"error_duration" json:"error_duration" jsonschema:"description=How long errors stay visible as a Go duration such as 5s"`
	ToastDuration time.Duration `mapstructure:"toast_duration" yaml:"toast_duration" toml:"toast_duration" json:"toast_duration" jsonschema:"description=How long confirmations stay visible as a Go duration such as 2s"`
}

// ExportConfig controls where exported files are written.
type ExportConfig struct {
	Dir string `mapstructure:"dir" yaml:"dir" toml:"dir" json:"dir" jsonschema:"default=."`
}

// ClipboardConfig controls clipboard access.
type ClipboardConfig struct {
	// Enabled copies formatted output to the clipboard.
	Enabled bool `mapstructure:"enabled" yaml:"enabled" toml:"enabled" json:"enabled" jsonschema:"default=true"`
}

// LoggingConfig controls the diagnostic logger.
type LoggingConfig struct {
	Level  string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,enum=fatal,enum=panic"`
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,enum=text"`
}
