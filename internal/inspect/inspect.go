// Package inspect connects to the reviewed database and summarizes what is
// actually deployed there. The summary is appended to the model prompt so
// recommendations can account for live row counts and existing indexes.
// Inspection is best effort: only PostgreSQL is introspected, and any failure
// degrades to an empty summary rather than failing the review.
package inspect

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"sqlrecsys/server/internal/dsn"
	"sqlrecsys/server/internal/logging"
)

const connectTimeout = 5 * time.Second

// TableInfo describes one deployed table.
type TableInfo struct {
	Name     string
	Columns  []string
	Indexes  []string
	RowCount int64
}

// Inspector introspects PostgreSQL databases over a short-lived pool.
type Inspector struct {
	log *logging.Logger
}

func New() *Inspector {
	return &Inspector{log: logging.New("inspect")}
}

// Describe connects to rawDSN and renders a summary of the live schema.
// A non-PostgreSQL dialect or any connection failure yields an empty string.
func (i *Inspector) Describe(ctx context.Context, rawDSN string) string {
	if rawDSN == "" {
		return ""
	}
	info, err := dsn.Parse(rawDSN)
	if err != nil {
		i.log.Debugf("skipping introspection: %v", err)
		return ""
	}
	if info.Dialect != dsn.DialectPostgreSQL {
		i.log.Debugf("skipping introspection for dialect %s", info.Dialect)
		return ""
	}

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	pool, err := pgxpool.New(ctx, rawDSN)
	if err != nil {
		i.log.Warnf("introspection pool: %v", err)
		return ""
	}
	defer pool.Close()

	tables, err := i.loadTables(ctx, pool)
	if err != nil {
		i.log.Warnf("introspection query: %v", err)
		return ""
	}
	if len(tables) == 0 {
		return ""
	}
	return Render(tables)
}

func (i *Inspector) loadTables(ctx context.Context, pool *pgxpool.Pool) (map[string]*TableInfo, error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	tables := make(map[string]*TableInfo)

	colQuery := `
		SELECT table_name, column_name, data_type
		FROM information_schema.columns
		WHERE table_schema = 'public'
		ORDER BY table_name, ordinal_position`
	rows, err := conn.Query(ctx, colQuery)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var table, column, dataType string
		if err := rows.Scan(&table, &column, &dataType); err != nil {
			rows.Close()
			return nil, err
		}
		t, ok := tables[table]
		if !ok {
			t = &TableInfo{Name: table}
			tables[table] = t
		}
		t.Columns = append(t.Columns, column+" "+dataType)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	idxQuery := `
		SELECT tablename, indexdef
		FROM pg_indexes
		WHERE schemaname = 'public'`
	rows, err = conn.Query(ctx, idxQuery)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var table, indexDef string
		if err := rows.Scan(&table, &indexDef); err != nil {
			rows.Close()
			return nil, err
		}
		if t, ok := tables[table]; ok {
			t.Indexes = append(t.Indexes, indexDef)
		}
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// Planner estimates are good enough; exact counts would scan every table.
	statQuery := `SELECT relname, n_live_tup FROM pg_stat_user_tables`
	rows, err = conn.Query(ctx, statQuery)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var table string
		var count int64
		if err := rows.Scan(&table, &count); err != nil {
			rows.Close()
			return nil, err
		}
		if t, ok := tables[table]; ok {
			t.RowCount = count
		}
	}
	rows.Close()
	return tables, rows.Err()
}

// Render formats the introspected tables as a prompt section.
func Render(tables map[string]*TableInfo) string {
	names := make([]string, 0, len(tables))
	for name := range tables {
		names = append(names, name)
	}
	sort.Strings(names)

	var sb strings.Builder
	sb.WriteString("=== LIVE DATABASE STATE ===\n")
	for _, name := range names {
		t := tables[name]
		fmt.Fprintf(&sb, "Table %s (~%d rows):\n", t.Name, t.RowCount)
		for _, col := range t.Columns {
			fmt.Fprintf(&sb, "  - %s\n", col)
		}
		for _, idx := range t.Indexes {
			fmt.Fprintf(&sb, "  index: %s\n", idx)
		}
	}
	return sb.String()
}
