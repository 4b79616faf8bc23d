package analysis

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
)

var (
	reFromTable = regexp.MustCompile(`(?i)FROM\s+([\w.]+)`)
	reJoinTable = regexp.MustCompile(`(?i)JOIN\s+([\w.]+)`)
)

// ExtractTables lists the distinct tables a query reads from.
func ExtractTables(query string) []string {
	seen := make(map[string]struct{})
	var tables []string
	for _, re := range []*regexp.Regexp{reFromTable, reJoinTable} {
		for _, m := range re.FindAllStringSubmatch(query, -1) {
			name := m[1]
			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				tables = append(tables, name)
			}
		}
	}
	return tables
}

// LineageReport builds a table dependency graph across the queries and
// renders it as a prompt section, calling out the most connected tables.
func LineageReport(queries []string) string {
	if len(queries) == 0 {
		return "no queries available for lineage analysis"
	}

	graph := make(map[string]map[string]struct{})
	for _, q := range queries {
		joins := reJoinTable.FindAllStringSubmatch(q, -1)
		for _, table := range ExtractTables(q) {
			if graph[table] == nil {
				graph[table] = make(map[string]struct{})
			}
			for _, jm := range joins {
				if jm[1] != table {
					graph[table][jm[1]] = struct{}{}
				}
			}
		}
	}

	tables := make([]string, 0, len(graph))
	for t := range graph {
		tables = append(tables, t)
	}
	sort.Strings(tables)

	var b strings.Builder
	b.WriteString("=== TABLE DEPENDENCY GRAPH ===\n")
	for _, t := range tables {
		deps := make([]string, 0, len(graph[t]))
		for d := range graph[t] {
			deps = append(deps, d)
		}
		sort.Strings(deps)
		if len(deps) == 0 {
			fmt.Fprintf(&b, "%s -> no dependencies\n", t)
		} else {
			fmt.Fprintf(&b, "%s -> %s\n", t, strings.Join(deps, ", "))
		}
	}

	// Most connected tables first; ties resolved by name for stable output.
	sort.SliceStable(tables, func(i, j int) bool {
		if len(graph[tables[i]]) != len(graph[tables[j]]) {
			return len(graph[tables[i]]) > len(graph[tables[j]])
		}
		return tables[i] < tables[j]
	})
	if len(tables) > 0 {
		b.WriteString("-- Critical tables:\n")
		for i, t := range tables {
			if i == 3 {
				break
			}
			fmt.Fprintf(&b, "%s: %d dependencies\n", t, len(graph[t]))
		}
	}
	return strings.TrimRight(b.String(), "\n")
}
