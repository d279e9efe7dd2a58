package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// BaseConfig holds base configuration
type BaseConfig struct {
	Debug     bool   `mapstructure:"debug"`
	SentryDSN string `mapstructure:"sentry_dsn"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host              string        `mapstructure:"host"`
	Port              int           `mapstructure:"port"`
	User              string        `mapstructure:"user"`
	Password          string        `mapstructure:"password"`
	DBName            string        `mapstructure:"dbname"`
	SSLMode           string        `mapstructure:"sslmode"`
	MaxOpenConns      int           `mapstructure:"max_open_conns"`     // Maximum number of open connections to the database
	MaxIdleConns      int           `mapstructure:"max_idle_conns"`     // Maximum number of idle connections in the pool
	ConnMaxLifetime   time.Duration `mapstructure:"conn_max_lifetime"`  // Maximum amount of time a connection may be reused (e.g., "5m", "1h")
	ConnMaxIdleTime   time.Duration `mapstructure:"conn_max_idle_time"` // Maximum amount of time a connection may be idle (e.g., "10m", "30m")
	InstallProcedures bool          `mapstructure:"install_procedures"` // Install the update_user_wallet stored procedure on migrate
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// DedupConfig holds duplicate request suppression configuration
type DedupConfig struct {
	Window    time.Duration `mapstructure:"window"`
	Retention time.Duration `mapstructure:"retention"`
	KeyPrefix string        `mapstructure:"key_prefix"`
}

// RateLimitConfig holds per-client rate limit configuration for mutating routes
type RateLimitConfig struct {
	Enabled           bool `mapstructure:"enabled"`
	RequestsPerMinute int  `mapstructure:"requests_per_minute"`
	Burst             int  `mapstructure:"burst"`
}

// NATSConfig holds NATS JetStream configuration
type NATSConfig struct {
	URL            string        `mapstructure:"url"`
	StreamName     string        `mapstructure:"stream_name"`
	MaxReconnects  int           `mapstructure:"max_reconnects"`
	ReconnectWait  time.Duration `mapstructure:"reconnect_wait"`
	ConnectionName string        `mapstructure:"connection_name"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host          string `mapstructure:"host"`
	Port          int    `mapstructure:"port"`
	ReadTimeout   int    `mapstructure:"read_timeout"`  // in seconds
	WriteTimeout  int    `mapstructure:"write_timeout"` // in seconds
	IdleTimeout   int    `mapstructure:"idle_timeout"`  // in seconds
	PublicBaseURL string `mapstructure:"public_base_url"`
	// AllowedOrigins restricts CORS; empty allows every origin
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// IdentityConfig selects the auth identity directory
type IdentityConfig struct {
	// Provider is either "postgres" or "firebase"
	Provider        string `mapstructure:"provider"`
	ProjectID       string `mapstructure:"project_id"`
	CredentialsFile string `mapstructure:"credentials_file"`
}

// PublicRESTConfig holds the anonymous read-only REST tier configuration
type PublicRESTConfig struct {
	URL     string        `mapstructure:"url"`
	AnonKey string        `mapstructure:"anon_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// CrossmintConfig holds the Crossmint API configuration
type CrossmintConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	APIKey  string        `mapstructure:"api_key"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// MintConfig holds mint gateway configuration
type MintConfig struct {
	// Mode is either "live" or "simulated"
	Mode                   string        `mapstructure:"mode"`
	DevCertificateFallback bool          `mapstructure:"dev_certificate_fallback"`
	SimulatedDelay         time.Duration `mapstructure:"simulated_delay"`
}

// PaymentsConfig holds buyer payment configuration
type PaymentsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Asset   string `mapstructure:"asset"`
}

// WorkerConfig holds worker configuration
type WorkerConfig struct {
	WorkerPoolSize  int `mapstructure:"pool_size"`
	WorkerQueueSize int `mapstructure:"queue_size"`
}

// APIConfig holds configuration for API server
type APIConfig struct {
	BaseConfig `mapstructure:",squash"`
	Server     ServerConfig     `mapstructure:"server"`
	Database   DatabaseConfig   `mapstructure:"database"`
	Redis      RedisConfig      `mapstructure:"redis"`
	Dedup      DedupConfig      `mapstructure:"dedup"`
	RateLimit  RateLimitConfig  `mapstructure:"rate_limit"`
	NATS       NATSConfig       `mapstructure:"nats"`
	Identity   IdentityConfig   `mapstructure:"identity"`
	PublicREST PublicRESTConfig `mapstructure:"public_rest"`
	Crossmint  CrossmintConfig  `mapstructure:"crossmint"`
	Mint       MintConfig       `mapstructure:"mint"`
	Payments   PaymentsConfig   `mapstructure:"payments"`
}

// OrphanSweeperConfig holds configuration for the orphan ownership sweeper
type OrphanSweeperConfig struct {
	Interval  time.Duration `mapstructure:"interval"`
	BatchSize int           `mapstructure:"batch_size"`
	Worker    WorkerConfig  `mapstructure:"worker"`

	// ListMaxElapsed bounds retries of the orphan listing query
	ListMaxElapsed time.Duration `mapstructure:"list_max_elapsed"`
}

// SweeperConfig holds configuration for the sweeper program
type SweeperConfig struct {
	BaseConfig    `mapstructure:",squash"`
	Database      DatabaseConfig      `mapstructure:"database"`
	OrphanSweeper OrphanSweeperConfig `mapstructure:"orphan_sweeper"`
}

// LoadAPIConfig loads configuration for API server
func LoadAPIConfig(configFile string, envPath string) (*APIConfig, error) {
	v := configureViper("api", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", 10)
	v.SetDefault("server.write_timeout", 30)
	v.SetDefault("server.idle_timeout", 120)
	v.SetDefault("server.public_base_url", "http://localhost:8080")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("dedup.window", "30s")
	v.SetDefault("dedup.retention", "120s")
	v.SetDefault("dedup.key_prefix", "ff-market:dedup:")
	v.SetDefault("rate_limit.requests_per_minute", 60)
	v.SetDefault("rate_limit.burst", 10)
	v.SetDefault("nats.max_reconnects", 10)
	v.SetDefault("nats.reconnect_wait", "2s")
	v.SetDefault("nats.stream_name", "MARKETPLACE_EVENTS")
	v.SetDefault("identity.provider", "postgres")
	v.SetDefault("public_rest.timeout", "10s")
	v.SetDefault("crossmint.base_url", "https://api.crossmint.com")
	v.SetDefault("crossmint.timeout", "20s")
	v.SetDefault("mint.mode", "live")
	v.SetDefault("mint.simulated_delay", "500ms")
	v.SetDefault("payments.asset", "USDXM")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found, use environment variables
	}

	var cfg APIConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *APIConfig) validate() error {
	switch c.Identity.Provider {
	case "postgres", "firebase":
	default:
		return fmt.Errorf("identity.provider must be postgres or firebase, got %q", c.Identity.Provider)
	}
	switch c.Mint.Mode {
	case "live", "simulated":
	default:
		return fmt.Errorf("mint.mode must be live or simulated, got %q", c.Mint.Mode)
	}
	if c.Dedup.Window > c.Dedup.Retention {
		return errors.New("dedup.window must not exceed dedup.retention")
	}
	return nil
}

// LoadSweeperConfig loads configuration for the sweeper program
func LoadSweeperConfig(configFile string, envPath string) (*SweeperConfig, error) {
	v := configureViper("sweeper", configFile, envPath)

	// Set defaults
	v.SetDefault("debug", false)
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("orphan_sweeper.interval", "10m")
	v.SetDefault("orphan_sweeper.batch_size", 100)
	v.SetDefault("orphan_sweeper.worker.pool_size", 4)
	v.SetDefault("orphan_sweeper.worker.queue_size", 256)
	v.SetDefault("orphan_sweeper.list_max_elapsed", "1m")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg SweeperConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate required fields
	if cfg.Database.Host == "" {
		return nil, errors.New("database.host is required")
	}
	if cfg.Database.DBName == "" {
		return nil, errors.New("database.dbname is required")
	}

	return &cfg, nil
}

// configureViper returns a viper instance with the config file and environment variables set
func configureViper(service string, configFile string, envPath string) *viper.Viper {
	v := viper.New()

	// Load environment variables
	loadEnv(envPath, service)

	// Set config file
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath(fmt.Sprintf("cmd/%s/", service))
		v.AddConfigPath("config/")
	}

	// Set environment variables
	v.SetEnvPrefix("FF_MARKET")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Explicitly bind all environment variables
	bindAllEnvVars(v)
	return v
}

// bindAllEnvVars explicitly binds all possible environment variables
// This is required for viper to map env vars to config struct fields when no config file exists
func bindAllEnvVars(v *viper.Viper) {
	keys := []string{
		"debug",
		"sentry_dsn",
		// Database
		"database.host",
		"database.port",
		"database.user",
		"database.password",
		"database.dbname",
		"database.sslmode",
		"database.max_open_conns",
		"database.max_idle_conns",
		"database.conn_max_lifetime",
		"database.conn_max_idle_time",
		"database.install_procedures",
		// Redis
		"redis.addr",
		"redis.password",
		"redis.db",
		// Dedup
		"dedup.window",
		"dedup.retention",
		"dedup.key_prefix",
		// Rate limit
		"rate_limit.enabled",
		"rate_limit.requests_per_minute",
		"rate_limit.burst",
		// NATS
		"nats.url",
		"nats.stream_name",
		"nats.max_reconnects",
		"nats.reconnect_wait",
		"nats.connection_name",
		// Server
		"server.host",
		"server.port",
		"server.read_timeout",
		"server.write_timeout",
		"server.idle_timeout",
		"server.public_base_url",
		"server.allowed_origins",
		// Identity
		"identity.provider",
		"identity.project_id",
		"identity.credentials_file",
		// Public REST
		"public_rest.url",
		"public_rest.anon_key",
		"public_rest.timeout",
		// Crossmint
		"crossmint.base_url",
		"crossmint.api_key",
		"crossmint.timeout",
		// Mint
		"mint.mode",
		"mint.dev_certificate_fallback",
		"mint.simulated_delay",
		// Payments
		"payments.enabled",
		"payments.asset",
		// Orphan sweeper
		"orphan_sweeper.interval",
		"orphan_sweeper.batch_size",
		"orphan_sweeper.worker.pool_size",
		"orphan_sweeper.worker.queue_size",
		"orphan_sweeper.list_max_elapsed",
	}

	for _, key := range keys {
		_ = v.BindEnv(key)
	}
}

// loadEnv loads environment variables from the config directory
func loadEnv(envPath string, service string) {
	// Always try shared base first, then local, then optional per-service local.
	envFiles := []string{".env", ".env.local"}
	if service != "" {
		envFiles = append(envFiles, ".env."+service+".local")
	}

	// Default to config directory
	if envPath == "" {
		envPath = "config/"
	}

	for _, envFile := range envFiles {
		candidate := filepath.Join(envPath, envFile)
		_ = godotenv.Overload(candidate) // Overload lets later files override earlier ones
	}
}

// ChdirRepoRoot changes the current working directory to the repository root
func ChdirRepoRoot() {
	cwd, _ := os.Getwd()
	for range 5 {
		if _, err := os.Stat(filepath.Join(cwd, "config")); err == nil {
			_ = os.Chdir(cwd)
			return
		}
		cwd = filepath.Dir(cwd)
	}
}

// DSN returns the database connection string
func (c *DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}
