package analysis

import (
	"fmt"
	"strings"
)

// SchemaDiff compares the current DDL with the proposed one.
type SchemaDiff struct {
	Added     []string
	Removed   []string
	Unchanged []string
	// Breaking lists removed statements that drop or alter existing objects.
	Breaking []string
}

// DiffSchemas computes a statement-level diff between two DDL sets.
// Statements are compared after whitespace normalization; anything removed
// that contains DROP or ALTER is flagged as breaking.
func DiffSchemas(current, proposed []string) SchemaDiff {
	normalize := func(s string) string {
		return strings.Join(strings.Fields(s), " ")
	}

	currentSet := make(map[string]string, len(current))
	for _, s := range current {
		if strings.TrimSpace(s) != "" {
			currentSet[normalize(s)] = s
		}
	}
	proposedSet := make(map[string]string, len(proposed))
	for _, s := range proposed {
		if strings.TrimSpace(s) != "" {
			proposedSet[normalize(s)] = s
		}
	}

	var diff SchemaDiff
	for _, s := range proposed {
		key := normalize(s)
		if key == "" {
			continue
		}
		if _, ok := currentSet[key]; ok {
			diff.Unchanged = append(diff.Unchanged, s)
		} else {
			diff.Added = append(diff.Added, s)
		}
	}
	for _, s := range current {
		key := normalize(s)
		if key == "" {
			continue
		}
		if _, ok := proposedSet[key]; !ok {
			diff.Removed = append(diff.Removed, s)
			upper := strings.ToUpper(s)
			if strings.Contains(upper, "DROP") || strings.Contains(upper, "ALTER") {
				diff.Breaking = append(diff.Breaking, s)
			}
		}
	}
	return diff
}

// Warnings renders the diff as caller-facing warnings about risky changes.
func (d SchemaDiff) Warnings() []string {
	var warnings []string
	for _, s := range d.Removed {
		warnings = append(warnings, fmt.Sprintf("statement removed from schema: %s", firstLine(s)))
	}
	for _, s := range d.Breaking {
		warnings = append(warnings, fmt.Sprintf("breaking change: %s", firstLine(s)))
	}
	return warnings
}

// Report renders the diff as a summary block.
func (d SchemaDiff) Report() string {
	var b strings.Builder
	b.WriteString("=== SCHEMA DIFF ===\n")
	fmt.Fprintf(&b, "added: %d\nremoved: %d\nunchanged: %d\n", len(d.Added), len(d.Removed), len(d.Unchanged))
	if len(d.Breaking) > 0 {
		b.WriteString("-- Breaking changes:\n")
		for _, s := range d.Breaking {
			b.WriteString(firstLine(s))
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	if len(s) > 120 {
		s = s[:117] + "..."
	}
	return s
}
