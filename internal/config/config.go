package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server ServerConfig `mapstructure:"server" validate:"required"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port"      validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`

	// IdentityHeader names the HTTP header carrying the acting user's ID.
	// The value is trusted as-is; no session verification happens here.
	IdentityHeader string `mapstructure:"identity_header" validate:"required"`
}
