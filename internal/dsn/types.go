// Package dsn parses database connection URLs into dialect and connection
// metadata. The review prompt states the target dialect, and the optional
// schema introspection step needs a normalized PostgreSQL DSN; both come
// from here. Credentials are never echoed back except through Redacted.
package dsn

import "fmt"

// Dialect identifies the SQL dialect behind a connection URL.
type Dialect string

const (
	DialectPostgreSQL Dialect = "postgresql"
	DialectMySQL      Dialect = "mysql"
	DialectOracle     Dialect = "oracle"
	DialectTrino      Dialect = "trino"
	DialectUnknown    Dialect = "unknown"
)

// Info contains parsed information from a connection URL.
type Info struct {
	Dialect  Dialect
	Host     string
	Port     string
	User     string
	Password string
	Database string
	Params   map[string]string
	Original string
}

// Redacted returns a log-safe rendering of the connection target.
func (i *Info) Redacted() string {
	if i.Database == "" {
		return fmt.Sprintf("%s://%s:%s", i.Dialect, i.Host, i.Port)
	}
	return fmt.Sprintf("%s://%s:%s/%s", i.Dialect, i.Host, i.Port, i.Database)
}

// ParseError reports why a connection URL could not be parsed.
type ParseError struct {
	DSN    string
	Reason string
	Hint   string
}

func (e *ParseError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("invalid connection URL: %s\nHint: %s", e.Reason, e.Hint)
	}
	return fmt.Sprintf("invalid connection URL: %s", e.Reason)
}

// NewParseError creates a new ParseError.
func NewParseError(dsn, reason, hint string) *ParseError {
	return &ParseError{DSN: dsn, Reason: reason, Hint: hint}
}
