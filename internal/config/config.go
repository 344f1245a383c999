package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

const (
	EnvironmentDevelopment = "development"
	EnvironmentProduction  = "production"

	BackendSupabase = "supabase"
	BackendPostgres = "postgres"
)

type Config struct {
	Port        string `toml:"port"`
	Environment string `toml:"environment"`
	LogLevel    string `toml:"log_level"`
	FrontendURL string `toml:"frontend_url"`

	StoreBackend       string `toml:"store_backend"`
	SupabaseURL        string `toml:"supabase_url"`
	SupabaseAnonKey    string `toml:"supabase_anon_key"`
	SupabaseServiceKey string `toml:"supabase_service_role_key"`

	PostgresAddress  string `toml:"postgres_address"`
	PostgresPort     string `toml:"postgres_port"`
	PostgresDB       string `toml:"postgres_db"`
	PostgresUsername string `toml:"postgres_username"`
	PostgresPassword string `toml:"postgres_password"`

	AMQPURL      string `toml:"amqp_url"`
	AMQPExchange string `toml:"amqp_exchange"`

	ProcessWorkers int `toml:"process_workers"`
}

// DefaultConfig matches the local docker compose setup.
func DefaultConfig() Config {
	return Config{
		Port:             "3001",
		Environment:      EnvironmentProduction,
		LogLevel:         "info",
		FrontendURL:      "http://localhost:3000",
		PostgresAddress:  "localhost",
		PostgresPort:     "5433",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "testpassword",
		AMQPExchange:     "spaces.events",
		ProcessWorkers:   4,
	}
}

// ProcessEnvironmentVariables builds the config from .env and the process environment only.
func ProcessEnvironmentVariables() (*Config, error) {
	return Load("")
}

// Load layers defaults, the optional TOML file at path, a .env file in the
// working directory and finally the process environment.
func Load(path string) (*Config, error) {
	env := DefaultConfig()

	if path != "" {
		if _, err := toml.DecodeFile(path, &env); err != nil {
			return nil, fmt.Errorf("toml.DecodeFile %s: %w", path, err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("godotenv.Load: %w", err)
	}

	if err := env.applyEnvironment(); err != nil {
		return nil, err
	}

	if env.StoreBackend == "" {
		env.StoreBackend = BackendPostgres
		if env.SupabaseURL != "" {
			env.StoreBackend = BackendSupabase
		}
	}

	if err := env.Validate(); err != nil {
		return nil, err
	}
	return &env, nil
}

func (c *Config) applyEnvironment() error {
	setString(&c.Port, "PORT")
	setString(&c.Environment, "NODE_ENV")
	setString(&c.Environment, "ENVIRONMENT")
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.FrontendURL, "FRONTEND_URL")
	setString(&c.StoreBackend, "STORE_BACKEND")
	setString(&c.SupabaseURL, "SUPABASE_URL")
	setString(&c.SupabaseAnonKey, "SUPABASE_ANON_KEY")
	setString(&c.SupabaseServiceKey, "SUPABASE_SERVICE_ROLE_KEY")
	setString(&c.PostgresAddress, "POSTGRES_ADDRESS")
	setString(&c.PostgresPort, "POSTGRES_PORT")
	setString(&c.PostgresDB, "POSTGRES_DB")
	setString(&c.PostgresUsername, "POSTGRES_USERNAME")
	setString(&c.PostgresPassword, "POSTGRES_PASSWORD")
	setString(&c.AMQPURL, "AMQP_URL")
	setString(&c.AMQPExchange, "AMQP_EXCHANGE")

	if v := os.Getenv("PROCESS_WORKERS"); len(v) != 0 {
		workers, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PROCESS_WORKERS: %w", err)
		}
		c.ProcessWorkers = workers
	}
	return nil
}

func setString(target *string, key string) {
	if v := os.Getenv(key); len(v) != 0 {
		*target = v
	}
}

// Validate reports every problem at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %q", c.Port))
	}
	switch c.StoreBackend {
	case BackendSupabase:
		if c.SupabaseURL == "" {
			problems = append(problems, "SUPABASE_URL is required for the supabase backend")
		}
		if c.SupabaseKey() == "" {
			problems = append(problems, "SUPABASE_SERVICE_ROLE_KEY or SUPABASE_ANON_KEY is required for the supabase backend")
		}
	case BackendPostgres:
		if c.PostgresAddress == "" || c.PostgresDB == "" {
			problems = append(problems, "POSTGRES_ADDRESS and POSTGRES_DB are required for the postgres backend")
		}
	default:
		problems = append(problems, fmt.Sprintf("unknown store backend %q", c.StoreBackend))
	}
	if c.ProcessWorkers < 1 {
		problems = append(problems, "PROCESS_WORKERS must be at least 1")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

// SupabaseKey prefers the service role key for server-side access.
func (c *Config) SupabaseKey() string {
	if c.SupabaseServiceKey != "" {
		return c.SupabaseServiceKey
	}
	return c.SupabaseAnonKey
}

// IsDevelopment is true only for "development"; any other environment name,
// including an empty one, runs with production behaviour.
func (c *Config) IsDevelopment() bool {
	return c.Environment == EnvironmentDevelopment
}

func (c *Config) PostgresConnectionString() string {
	dsn := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.PostgresUsername, c.PostgresPassword),
		Host:     net.JoinHostPort(c.PostgresAddress, c.PostgresPort),
		Path:     "/" + c.PostgresDB,
		RawQuery: "sslmode=disable",
	}
	return dsn.String()
}
