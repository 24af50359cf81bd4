package config

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config agrupa toda la configuración del proceso.
type Config struct {
	AppName    string           `yaml:"app_name" toml:"app_name"`
	Server     ServerConfig     `yaml:"server" toml:"server"`
	Database   DatabaseConfig   `yaml:"database" toml:"database"`
	Logging    LoggingConfig    `yaml:"logging" toml:"logging"`
	Pagination PaginationConfig `yaml:"pagination" toml:"pagination"`
}

type ServerConfig struct {
	Addr string `yaml:"addr" toml:"addr"`

	ReadTimeout     time.Duration `yaml:"-" toml:"-"`
	WriteTimeout    time.Duration `yaml:"-" toml:"-"`
	ShutdownTimeout time.Duration `yaml:"-" toml:"-"`

	// Valores crudos ("5s") tal como vienen del archivo
	ReadTimeoutRaw     string `yaml:"read_timeout" toml:"read_timeout"`
	WriteTimeoutRaw    string `yaml:"write_timeout" toml:"write_timeout"`
	ShutdownTimeoutRaw string `yaml:"shutdown_timeout" toml:"shutdown_timeout"`
}

type DatabaseConfig struct {
	Driver      string `yaml:"driver" toml:"driver"` // memory | postgres | sqlite
	DSN         string `yaml:"dsn" toml:"dsn"`
	AutoMigrate bool   `yaml:"auto_migrate" toml:"auto_migrate"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
}

type PaginationConfig struct {
	PageSize    int `yaml:"page_size" toml:"page_size"`
	MaxPageSize int `yaml:"max_page_size" toml:"max_page_size"`
}

// Default devuelve la configuración usada cuando no hay archivo ni env.
func Default() Config {
	return Config{
		AppName: "pets-api",
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    10 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Database: DatabaseConfig{
			Driver: DriverMemory,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Pagination: PaginationConfig{
			PageSize:    10,
			MaxPageSize: 100,
		},
	}
}

// Load arma la configuración: defaults, luego archivo (si path != ""), luego env.
// El archivo puede ser YAML (.yaml/.yml) o TOML (.toml); ${VAR} se expande antes de parsear.
func Load(path string) (Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		if err := loadFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnv(&cfg, os.Getenv); err != nil {
		return Config{}, fmt.Errorf("reading env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validating config: %w", err)
	}
	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}
	expanded := expandEnvVars(string(data))

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if _, err := toml.Decode(expanded, cfg); err != nil {
			return fmt.Errorf("parsing config file: %w", err)
		}
	case ".yaml", ".yml", "":
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return fmt.Errorf("parsing config file: %w", err)
		}
	default:
		return fmt.Errorf("unsupported config extension %q", filepath.Ext(path))
	}

	if err := parseDurations(cfg); err != nil {
		return fmt.Errorf("parsing durations: %w", err)
	}
	return nil
}

var envVarPattern = regexp.MustCompile(`\$\{([^}]+)\}`)

// expandEnvVars reemplaza ${VAR} por su valor; si no existe queda vacío.
func expandEnvVars(s string) string {
	return envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		return os.Getenv(envVarPattern.FindStringSubmatch(match)[1])
	})
}

func parseDurations(cfg *Config) error {
	fields := []struct {
		name string
		raw  string
		dst  *time.Duration
	}{
		{"server.read_timeout", cfg.Server.ReadTimeoutRaw, &cfg.Server.ReadTimeout},
		{"server.write_timeout", cfg.Server.WriteTimeoutRaw, &cfg.Server.WriteTimeout},
		{"server.shutdown_timeout", cfg.Server.ShutdownTimeoutRaw, &cfg.Server.ShutdownTimeout},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.raw) == "" {
			continue
		}
		d, err := time.ParseDuration(strings.TrimSpace(f.raw))
		if err != nil {
			return fmt.Errorf("parsing %s %q: %w", f.name, f.raw, err)
		}
		*f.dst = d
	}
	return nil
}

// applyEnv aplica las variables que ya usaba el servicio (PORT, DB_DSN, ...).
// Si hay DB_DSN pero no DB_DRIVER, se asume postgres.
func applyEnv(cfg *Config, getenv func(string) string) error {
	if v := strings.TrimSpace(getenv("PORT")); v != "" {
		cfg.Server.Addr = ":" + v
	}
	if v := strings.TrimSpace(getenv("APP_NAME")); v != "" {
		cfg.AppName = v
	}
	if v := strings.TrimSpace(getenv("LOG_LEVEL")); v != "" {
		cfg.Logging.Level = v
	}
	if v := strings.TrimSpace(getenv("LOG_FORMAT")); v != "" {
		cfg.Logging.Format = v
	}

	dsn := strings.TrimSpace(getenv("DB_DSN"))
	driver := strings.ToLower(strings.TrimSpace(getenv("DB_DRIVER")))
	if dsn != "" {
		cfg.Database.DSN = dsn
		if driver == "" && cfg.Database.Driver == DriverMemory {
			driver = DriverPostgres
		}
	}
	if driver != "" {
		cfg.Database.Driver = driver
	}
	if v := strings.TrimSpace(getenv("DB_AUTO_MIGRATE")); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("DB_AUTO_MIGRATE %q: %w", v, err)
		}
		cfg.Database.AutoMigrate = b
	}

	if v := strings.TrimSpace(getenv("PAGE_SIZE")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PAGE_SIZE %q: %w", v, err)
		}
		cfg.Pagination.PageSize = n
	}
	return nil
}

// Validate revisa campos obligatorios y rangos; devuelve el primer problema encontrado.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Server.Addr) == "" {
		return fmt.Errorf("server.addr is required")
	}

	switch c.Database.Driver {
	case DriverMemory:
	case DriverPostgres, DriverSQLite:
		if strings.TrimSpace(c.Database.DSN) == "" {
			return fmt.Errorf("database.dsn is required for driver %q", c.Database.Driver)
		}
	default:
		return fmt.Errorf("database.driver %q is not supported", c.Database.Driver)
	}

	if c.Pagination.PageSize <= 0 {
		return fmt.Errorf("pagination.page_size must be positive")
	}
	if c.Pagination.MaxPageSize < c.Pagination.PageSize {
		return fmt.Errorf("pagination.max_page_size must be >= page_size")
	}
	return nil
}
