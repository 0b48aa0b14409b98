package models

import "time"

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	AuthCode AuthCodeConfig
	SMTP     SMTPConfig
	NewRelic NewRelicConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ShutdownTimeout int // in seconds
}

// DatabaseConfig contains database connection configuration.
// URL wins over the individual parts when set.
type DatabaseConfig struct {
	URL       string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// Auth code store modes
const (
	AuthCodeStoreSession = "session"
	AuthCodeStoreRedis   = "redis"
)

// AuthCodeConfig controls one-time code issuing
type AuthCodeConfig struct {
	Store string
	TTL   time.Duration
}

// ServerSide reports whether issued codes are kept in Redis
func (c AuthCodeConfig) ServerSide() bool {
	return c.Store == AuthCodeStoreRedis
}

// SMTPConfig contains the mail relay settings
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// NewRelicConfig contains New Relic agent settings
type NewRelicConfig struct {
	Enabled     bool
	LicenseKey  string
	AppName     string
	ForwardLogs bool
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level    string
	FilePath string
}
