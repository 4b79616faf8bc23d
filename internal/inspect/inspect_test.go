package inspect

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribeSkipsNonPostgres(t *testing.T) {
	i := New()
	assert.Empty(t, i.Describe(context.Background(), "mysql://u:p@db:3306/orders"))
	assert.Empty(t, i.Describe(context.Background(), ""))
	assert.Empty(t, i.Describe(context.Background(), "not a dsn"))
}

func TestRender(t *testing.T) {
	tables := map[string]*TableInfo{
		"users": {
			Name:     "users",
			Columns:  []string{"id integer", "email text"},
			Indexes:  []string{"CREATE UNIQUE INDEX users_pkey ON public.users USING btree (id)"},
			RowCount: 1500,
		},
		"orders": {
			Name:     "orders",
			Columns:  []string{"id integer"},
			RowCount: 10,
		},
	}

	out := Render(tables)
	assert.Contains(t, out, "=== LIVE DATABASE STATE ===")
	assert.Contains(t, out, "Table users (~1500 rows):")
	assert.Contains(t, out, "  - email text")
	assert.Contains(t, out, "users_pkey")

	// Tables render in name order.
	assert.Less(t, strings.Index(out, "Table orders"), strings.Index(out, "Table users"))
}
