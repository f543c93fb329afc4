// Package config carga la configuración del servicio.
//
// Orden de precedencia (el último gana):
//  1. defaults
//  2. archivo YAML opcional ($CONFIG_FILE)
//  3. variables de entorno (incluye las cargadas desde .env)
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	DriverMemory   = "memory"
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	devSecret = "dev-only-insecure-jwt-secret"
)

type Config struct {
	Port    string        `yaml:"port"`
	Storage StorageConfig `yaml:"storage"`
	Auth    AuthConfig    `yaml:"auth"`
	Log     LogConfig     `yaml:"log"`

	CORSOrigins []string `yaml:"cors_origins"`
}

type StorageConfig struct {
	Driver     string `yaml:"driver"`
	DSN        string `yaml:"dsn"`
	SQLitePath string `yaml:"sqlite_path"`
}

type AuthConfig struct {
	JWTSecret    string   `yaml:"jwt_secret"`
	Issuer       string   `yaml:"issuer"`
	TokenTTL     Duration `yaml:"token_ttl"`
	CookieSecure bool     `yaml:"cookie_secure"`

	// DevMode acepta X-Debug-User-ID como identidad. Nunca en producción.
	DevMode bool `yaml:"dev_mode"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	App    string `yaml:"app"`
}

// Duration permite escribir "24h" o "90m" en el YAML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) Duration() time.Duration { return time.Duration(d) }

func Default() *Config {
	return &Config{
		Port: "8080",
		Auth: AuthConfig{
			Issuer:   "pet-health-tracker",
			TokenTTL: Duration(24 * time.Hour),
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
			App:    "pet-health-tracker",
		},
		CORSOrigins: []string{"http://localhost:5173"},
	}
}

// Load lee .env (si existe), el YAML de $CONFIG_FILE (si está definido) y el entorno.
func Load() (*Config, error) {
	// .env es opcional; godotenv nunca pisa variables ya exportadas.
	_ = godotenv.Load()

	return LoadFrom(os.Getenv("CONFIG_FILE"), os.LookupEnv)
}

// LookupFunc tiene la firma de os.LookupEnv para poder inyectar entornos en tests.
type LookupFunc func(key string) (string, bool)

func LoadFrom(path string, lookup LookupFunc) (*Config, error) {
	cfg := Default()

	if strings.TrimSpace(path) != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.applyEnv(lookup); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv(lookup LookupFunc) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			*dst = strings.TrimSpace(v)
		}
	}
	boolean := func(key string, dst *bool) error {
		v, ok := lookup(key)
		if !ok || strings.TrimSpace(v) == "" {
			return nil
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("%s must be a boolean: %w", key, err)
		}
		*dst = b
		return nil
	}

	str("PORT", &c.Port)
	str("STORAGE_DRIVER", &c.Storage.Driver)
	str("DB_DSN", &c.Storage.DSN)
	str("SQLITE_PATH", &c.Storage.SQLitePath)
	str("JWT_SECRET", &c.Auth.JWTSecret)
	str("JWT_ISSUER", &c.Auth.Issuer)
	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_FORMAT", &c.Log.Format)
	str("APP_NAME", &c.Log.App)

	if v, ok := lookup("TOKEN_TTL"); ok && strings.TrimSpace(v) != "" {
		d, err := time.ParseDuration(strings.TrimSpace(v))
		if err != nil {
			return fmt.Errorf("TOKEN_TTL must be a duration: %w", err)
		}
		c.Auth.TokenTTL = Duration(d)
	}
	if v, ok := lookup("CORS_ORIGINS"); ok && strings.TrimSpace(v) != "" {
		c.CORSOrigins = splitList(v)
	}

	if err := boolean("COOKIE_SECURE", &c.Auth.CookieSecure); err != nil {
		return err
	}
	return boolean("AUTH_DEV_MODE", &c.Auth.DevMode)
}

func (c *Config) applyDefaults() {
	if c.Storage.Driver == "" {
		switch {
		case c.Storage.DSN != "":
			c.Storage.Driver = DriverPostgres
		case c.Storage.SQLitePath != "":
			c.Storage.Driver = DriverSQLite
		default:
			c.Storage.Driver = DriverMemory
		}
	}
	c.Storage.Driver = strings.ToLower(c.Storage.Driver)

	if c.Auth.TokenTTL <= 0 {
		c.Auth.TokenTTL = Duration(24 * time.Hour)
	}
	if c.Auth.DevMode && c.Auth.JWTSecret == "" {
		c.Auth.JWTSecret = devSecret
	}
}

func (c *Config) Validate() error {
	var errs []error

	if _, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Errorf("port %q is not a number", c.Port))
	}

	switch c.Storage.Driver {
	case DriverMemory:
	case DriverPostgres:
		if c.Storage.DSN == "" {
			errs = append(errs, errors.New("DB_DSN is required for the postgres driver"))
		}
	case DriverSQLite:
		if c.Storage.SQLitePath == "" {
			errs = append(errs, errors.New("SQLITE_PATH is required for the sqlite driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown storage driver %q", c.Storage.Driver))
	}

	if len(c.Auth.JWTSecret) < 16 {
		errs = append(errs, errors.New("JWT_SECRET must be at least 16 characters"))
	}

	return errors.Join(errs...)
}

// Addr es la dirección de escucha del http.Server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

// UsingDevSecret indica que se arrancó en modo dev sin secreto propio.
func (c *Config) UsingDevSecret() bool {
	return c.Auth.JWTSecret == devSecret
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
