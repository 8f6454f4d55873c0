package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/pelletier/go-toml/v2"
)

// ConfigPathEnv names the variable holding the optional TOML config path.
const ConfigPathEnv = "HOUSEBUILDER_CONFIG"

type Config struct {
	HTTPPort    string `toml:"http_port"`
	DBHost      string `toml:"db_host"`
	DBPort      string `toml:"db_port"`
	DBUser      string `toml:"db_user"`
	DBPassword  string `toml:"db_password"`
	DBName      string `toml:"db_name"`
	DBSslMode   string `toml:"db_sslmode"`
	JobSchedule string `toml:"job_schedule"`
	LogLevel    string `toml:"log_level"`
}

// DefaultConfig returns the settings used when neither a file nor the
// environment says otherwise.
func DefaultConfig() Config {
	return Config{
		HTTPPort:    "8080",
		DBHost:      "localhost",
		DBPort:      "5432",
		DBUser:      "postgres",
		DBName:      "housebuilder",
		DBSslMode:   "disable",
		JobSchedule: "* * * * * *",
		LogLevel:    "info",
	}
}

// LoadConfig layers configuration: defaults, then the TOML file at path (or
// at $HOUSEBUILDER_CONFIG when path is empty), then environment variables. A
// .env file in the working directory is loaded into the environment first; it
// never overrides variables that are already set.
func LoadConfig(path string) (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("error loading .env file: %w", err)
	}

	config := DefaultConfig()

	if path == "" {
		path = os.Getenv(ConfigPathEnv)
	}
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
		if err = toml.Unmarshal(raw, &config); err != nil {
			return Config{}, fmt.Errorf("error parsing config file %s: %w", path, err)
		}
	}

	overrideFromEnv(&config.HTTPPort, "HTTP_PORT")
	overrideFromEnv(&config.DBHost, "DB_HOST")
	overrideFromEnv(&config.DBPort, "DB_PORT")
	overrideFromEnv(&config.DBUser, "DB_USER")
	overrideFromEnv(&config.DBPassword, "DB_PASSWORD")
	overrideFromEnv(&config.DBName, "DB_NAME")
	overrideFromEnv(&config.DBSslMode, "DB_SSLMODE")
	overrideFromEnv(&config.JobSchedule, "JOB_SCHEDULE")
	overrideFromEnv(&config.LogLevel, "LOG_LEVEL")

	if _, _, err := config.LogLevels(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func overrideFromEnv(field *string, key string) {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		*field = value
	}
}

// DSN returns the connection string of the application database.
func (c Config) DSN() string {
	return c.dsn(c.DBName)
}

// MaintenanceDSN returns a connection string to the "postgres" database, used
// to create the application database.
func (c Config) MaintenanceDSN() string {
	return c.dsn("postgres")
}

func (c Config) dsn(dbName string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, dbName, c.DBSslMode)
}

// LogLevels maps LogLevel to the echo logger level and the slog level.
func (c Config) LogLevels() (log.Lvl, slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return log.DEBUG, slog.LevelDebug, nil
	case "", "info":
		return log.INFO, slog.LevelInfo, nil
	case "warn", "warning":
		return log.WARN, slog.LevelWarn, nil
	case "error":
		return log.ERROR, slog.LevelError, nil
	default:
		return 0, 0, fmt.Errorf("unknown log level %q", c.LogLevel)
	}
}
