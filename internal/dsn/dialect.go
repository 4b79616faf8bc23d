package dsn

import "strings"

// Detect identifies the SQL dialect from a connection URL scheme.
// Unknown schemes are not an error; the review then targets generic SQL.
func Detect(url string) Dialect {
	lower := strings.ToLower(strings.TrimSpace(url))

	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DialectPostgreSQL
	case strings.HasPrefix(lower, "mysql://"):
		return DialectMySQL
	case strings.HasPrefix(lower, "oracle://"):
		return DialectOracle
	case strings.HasPrefix(lower, "trino://"), strings.HasPrefix(lower, "presto://"):
		return DialectTrino
	}
	return DialectUnknown
}

// Parse parses a connection URL into Info. Only PostgreSQL URLs are fully
// parsed today; other recognized dialects return Info with the dialect set
// so the prompt can still state the target, without host/database details.
func Parse(url string) (*Info, error) {
	if strings.TrimSpace(url) == "" {
		return nil, NewParseError(url, "empty connection URL", "provide a database connection string")
	}

	dialect := Detect(url)
	switch dialect {
	case DialectPostgreSQL:
		return parsePostgres(url)
	case DialectMySQL, DialectOracle, DialectTrino:
		return &Info{Dialect: dialect, Original: url, Params: map[string]string{}}, nil
	default:
		return nil, NewParseError(url, "unrecognized scheme", "use postgres://, mysql://, oracle:// or trino://")
	}
}
