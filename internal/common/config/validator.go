package config

import (
	"fmt"
	"strings"
)

// ValidationError lists every problem found in a configuration file.
type ValidationError struct {
	File     string
	Problems []string
}

func (e *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString("invalid configuration")
	if e.File != "" {
		sb.WriteString(" in ")
		sb.WriteString(e.File)
	}
	sb.WriteString(":\n")
	for _, p := range e.Problems {
		sb.WriteString("--> ")
		sb.WriteString(p)
		sb.WriteString("\n")
	}
	return sb.String()
}

func result(file string, problems []string) error {
	if len(problems) == 0 {
		return nil
	}
	return &ValidationError{File: file, Problems: problems}
}

// Validate checks the settings the server cannot start without. file is
// only used in the error message.
func (c *APIServerConfig) Validate(file string) error {
	problems := c.Database.problems()

	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		problems = append(problems, fmt.Sprintf("server.port %d is out of range", c.Server.Port))
	}
	switch c.Server.Mode {
	case "debug", "release", "test":
	default:
		problems = append(problems, fmt.Sprintf("server.mode %q must be debug, release or test", c.Server.Mode))
	}
	if n := len(c.JWT.SecretKey); n > 0 && n < 32 {
		problems = append(problems, "jwt.secret_key must be at least 32 characters or empty")
	}
	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		problems = append(problems, fmt.Sprintf("metrics.path %q must start with /", c.Metrics.Path))
	}
	switch c.Tracing.Protocol {
	case "", "grpc", "http":
	default:
		problems = append(problems, fmt.Sprintf("tracing.protocol %q must be grpc or http", c.Tracing.Protocol))
	}
	switch c.I18n.DefaultLang {
	case "es", "en":
	default:
		problems = append(problems, fmt.Sprintf("i18n.default_lang %q must be es or en", c.I18n.DefaultLang))
	}
	return result(file, problems)
}

func (c *ImporterConfig) Validate(file string) error {
	return result(file, c.Database.problems())
}

func (c *DatabaseConfig) problems() []string {
	var problems []string
	switch c.Type {
	case "postgres", "mysql":
		if c.Host == "" {
			problems = append(problems, "database.host is required for "+c.Type)
		}
		if c.Port <= 0 || c.Port > 65535 {
			problems = append(problems, fmt.Sprintf("database.port %d is out of range", c.Port))
		}
	case "sqlite":
	default:
		problems = append(problems, fmt.Sprintf("database.type %q must be postgres, mysql or sqlite", c.Type))
	}
	if c.DBName == "" {
		problems = append(problems, "database.dbname is required")
	}
	return problems
}
