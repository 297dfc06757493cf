package config

import "time"

// Config holds all configuration for the application
type Config struct {
	Environment string         `mapstructure:"environment"`
	Server      ServerConfig   `mapstructure:"server"`
	Database    DatabaseConfig `mapstructure:"database"`
	Logger      LoggerConfig   `mapstructure:"logger"`
	Auth        AuthConfig     `mapstructure:"auth"`
	Email       EmailConfig    `mapstructure:"email"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	ReadTimeout       time.Duration `mapstructure:"readTimeout"`       // seconds
	WriteTimeout      time.Duration `mapstructure:"writeTimeout"`      // seconds
	IdleTimeout       time.Duration `mapstructure:"idleTimeout"`       // seconds
	ReadHeaderTimeout time.Duration `mapstructure:"readHeaderTimeout"` // seconds
	ShutdownTimeout   time.Duration `mapstructure:"shutdownTimeout"`   // seconds
}

// DatabaseConfig contains database connection settings
type DatabaseConfig struct {
	Driver          string        `mapstructure:"driver"`
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	Username        string        `mapstructure:"username"`
	Password        string        `mapstructure:"password"`
	Database        string        `mapstructure:"database"`
	SSLMode         string        `mapstructure:"sslMode"`
	MaxOpenConns    int           `mapstructure:"maxOpenConns"`
	MaxIdleConns    int           `mapstructure:"maxIdleConns"`
	ConnMaxLifetime time.Duration `mapstructure:"connMaxLifetime"` // minutes
	ConnMaxIdleTime time.Duration `mapstructure:"connMaxIdleTime"` // minutes
	QueryTimeout    time.Duration `mapstructure:"queryTimeout"`    // seconds
	RetryAttempts   int           `mapstructure:"retryAttempts"`
	RetryDelay      time.Duration `mapstructure:"retryDelay"` // seconds
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level      string `mapstructure:"level"`
	Format     string `mapstructure:"format"`
	Output     string `mapstructure:"output"`
	CallerInfo bool   `mapstructure:"callerInfo"`
}

// AuthConfig contains token and password settings
type AuthConfig struct {
	JWTSecret       string        `mapstructure:"jwtSecret"`
	SessionTTL      time.Duration `mapstructure:"sessionTTL"`      // hours
	VerificationTTL time.Duration `mapstructure:"verificationTTL"` // hours
	ResetTTL        time.Duration `mapstructure:"resetTTL"`        // minutes
	BcryptCost      int           `mapstructure:"bcryptCost"`
}

// EmailConfig contains SMTP and link-building settings
type EmailConfig struct {
	SMTPHost     string `mapstructure:"smtpHost"`
	SMTPPort     int    `mapstructure:"smtpPort"`
	SMTPUsername string `mapstructure:"smtpUsername"`
	SMTPPassword string `mapstructure:"smtpPassword"`
	From         string `mapstructure:"from"`
	AppURL       string `mapstructure:"appURL"`
}
