package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Payments PaymentsConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
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

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// PaymentsConfig contains payment workflow specific configuration
type PaymentsConfig struct {
	// FallbackFilePath is the location of the local JSON document store used
	// when the relational backend is unreachable.
	FallbackFilePath string
	// PendingCacheTTLSeconds controls how long the hydrated pending-payments
	// list is cached in Redis between admin polls.
	PendingCacheTTLSeconds int
	// DefaultCurrency is the primary charge currency.
	DefaultCurrency string
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
