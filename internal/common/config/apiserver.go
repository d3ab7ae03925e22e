package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ecosedes/facilities/pkg/trace"
)

type (
	APIServerConfig struct {
		Server   ServerConfig   `yaml:"server"`
		Database DatabaseConfig `yaml:"database"`
		Logger   LoggerConfig   `yaml:"logger"`
		JWT      JWTConfig      `yaml:"jwt"`
		Metrics  MetricsConfig  `yaml:"metrics"`
		Tracing  trace.Config   `yaml:"tracing"`
		I18n     I18nConfig     `yaml:"i18n"`
	}

	ServerConfig struct {
		Port        int      `yaml:"port"`
		Mode        string   `yaml:"mode"`         // debug, release, test
		CORSOrigins []string `yaml:"cors_origins"` // allowed browser origins
	}

	// I18nConfig represents the internationalization configuration
	I18nConfig struct {
		Path        string `yaml:"path"`         // optional directory overriding the embedded translations
		DefaultLang string `yaml:"default_lang"` // es or en
	}

	DatabaseConfig struct {
		Type         string `yaml:"type"`           // mysql, postgres, sqlite
		Host         string `yaml:"host"`           // localhost
		Port         int    `yaml:"port"`           // 3306 (for mysql), 5432 (for postgres)
		User         string `yaml:"user"`           // root (for mysql), postgres (for postgres)
		Password     string `yaml:"password"`       // password
		DBName       string `yaml:"dbname"`         // database name, or file path for sqlite
		SSLMode      string `yaml:"sslmode"`        // disable (for postgres)
		MaxOpenConns int    `yaml:"max_open_conns"` // 0 keeps the driver default
		MaxIdleConns int    `yaml:"max_idle_conns"` // 0 keeps the driver default
		Debug        bool   `yaml:"debug"`          // log every statement
	}

	// JWTConfig configures bearer tokens; an empty secret disables them
	JWTConfig struct {
		SecretKey string        `yaml:"secret_key"`
		Duration  time.Duration `yaml:"duration"`
	}

	MetricsConfig struct {
		Enabled   bool      `yaml:"enabled"`
		Namespace string    `yaml:"namespace"`
		Path      string    `yaml:"path"`
		Buckets   []float64 `yaml:"buckets"`
	}
)

const sqlitePragmas = "?_pragma=foreign_keys(1)"

// GetDSN returns the database connection string
func (c *DatabaseConfig) GetDSN() string {
	switch c.Type {
	case "postgres":
		return c.getPostgresDSN()
	case "mysql":
		return c.getMySQLDSN()
	case "sqlite":
		if c.DBName != ":memory:" {
			// Ensure the directory for the SQLite database exists.
			// If the directory cannot be created, it's a fatal error.
			if err := os.MkdirAll(filepath.Dir(c.DBName), 0755); err != nil {
				panic(fmt.Errorf("failed to create directory for sqlite database: %w", err))
			}
		}
		// DBName is the file path; the pragma is applied to every new connection.
		return c.DBName + sqlitePragmas
	default:
		return ""
	}
}

// getPostgresDSN returns PostgreSQL connection string
func (c *DatabaseConfig) getPostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s&TimeZone=UTC",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode)
}

// getMySQLDSN returns MySQL connection string.
// Dates are stored at midnight UTC, so the session location must be UTC.
func (c *DatabaseConfig) getMySQLDSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
		c.User, c.Password, c.Host, c.Port, c.DBName)
}
