// Package prompt loads and renders the embedded prompt templates.
// Templates ship inside the binary; a small cache keeps parsed templates
// across requests the way the original template store cached file reads.
package prompt

import (
	"embed"
	"fmt"
	"strings"
	"sync"
	"text/template"
)

//go:embed templates/*.txt
var templatesFS embed.FS

// Store loads named templates and renders them with parameters.
type Store struct {
	mu    sync.RWMutex
	cache map[string]*template.Template
}

// NewStore returns an empty template store backed by the embedded files.
func NewStore() *Store {
	return &Store{cache: make(map[string]*template.Template)}
}

// Load returns the raw template text by name (without the .txt suffix).
func (s *Store) Load(name string) (string, error) {
	data, err := templatesFS.ReadFile("templates/" + name + ".txt")
	if err != nil {
		return "", fmt.Errorf("prompt template %q not found: %w", name, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Format renders the named template with the given data.
func (s *Store) Format(name string, data any) (string, error) {
	s.mu.RLock()
	tmpl, ok := s.cache[name]
	s.mu.RUnlock()

	if !ok {
		text, err := s.Load(name)
		if err != nil {
			return "", err
		}
		tmpl, err = template.New(name).Option("missingkey=error").Parse(text)
		if err != nil {
			return "", fmt.Errorf("prompt template %q invalid: %w", name, err)
		}
		s.mu.Lock()
		s.cache[name] = tmpl
		s.mu.Unlock()
	}

	var b strings.Builder
	if err := tmpl.Execute(&b, data); err != nil {
		return "", fmt.Errorf("prompt template %q render: %w", name, err)
	}
	return b.String(), nil
}
