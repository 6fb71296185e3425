package models

// Config represents application configuration
type Config struct {
	App        AppConfig
	Server     ServerConfig
	Database   DatabaseConfig
	Redis      RedisConfig
	NSQ        NSQConfig
	JWT        JWTConfig
	SSLCommerz SSLCommerzConfig
	SMTP       SMTPConfig
	Client     ClientConfig
	CORS       CORSConfig
	Logger     LoggerConfig
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
	// BaseURL is the publicly reachable URL of this server, used to build
	// the gateway callback URLs at payment initiation.
	BaseURL string
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

// NSQConfig contains NSQ daemon connection configuration
type NSQConfig struct {
	Address string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// SSLCommerzConfig contains payment gateway credentials and endpoints
type SSLCommerzConfig struct {
	StoreID       string
	StorePassword string
	SessionURL    string
	ValidationURL string
}

// SMTPConfig contains outgoing mail configuration
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// ClientConfig contains the frontend application configuration.
// Payment callbacks redirect the browser back to these pages.
type ClientConfig struct {
	BaseURL string
}

// CORSConfig is the explicit CORS policy passed into the server bootstrap.
// It is built once from the environment and never mutated after startup.
type CORSConfig struct {
	AllowedOrigins   []string
	AllowCredentials bool
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
