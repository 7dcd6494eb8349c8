// Package render turns raw structure content into final file content.
// It is a pure string-rendering step: the generator hands it a node's
// content and the run's variable mapping and gets bytes back.
package render

import (
	"bytes"
	"fmt"
	"strings"
	"sync"
	"text/template"
)

// Renderer parses and renders node content with caching. Safe for
// reuse across nodes; the cache is keyed by node path.
type Renderer struct {
	funcMap template.FuncMap
	cache   map[string]*template.Template
	mu      sync.RWMutex
}

// New creates a renderer with the built-in helper functions.
func New() *Renderer {
	return &Renderer{
		funcMap: defaultFuncMap(),
		cache:   make(map[string]*template.Template),
	}
}

// Render renders a node's content with the given variables. Variables
// are addressed as {{ .name }}; unset variables render as empty
// strings so non-interactive runs never block on missing input.
func (r *Renderer) Render(name, content string, vars map[string]string) ([]byte, error) {
	tmpl, err := r.parse(name, content)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, vars); err != nil {
		return nil, fmt.Errorf("failed to render %q: %w", name, err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) parse(name, content string) (*template.Template, error) {
	r.mu.RLock()
	if tmpl, ok := r.cache[name]; ok {
		r.mu.RUnlock()
		return tmpl, nil
	}
	r.mu.RUnlock()

	tmpl, err := template.New(name).Funcs(r.funcMap).Option("missingkey=zero").Parse(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse content of %q: %w", name, err)
	}

	r.mu.Lock()
	r.cache[name] = tmpl
	r.mu.Unlock()

	return tmpl, nil
}

// ClearCache drops all parsed templates (useful for testing).
func (r *Renderer) ClearCache() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cache = make(map[string]*template.Template)
}

// defaultFuncMap returns the helpers available inside content.
func defaultFuncMap() template.FuncMap {
	return template.FuncMap{
		"upper":   strings.ToUpper,
		"lower":   strings.ToLower,
		"trim":    strings.TrimSpace,
		"title":   Title,
		"quote":   Quote,
		"default": Default,
	}
}

// Quote wraps a string in double quotes.
func Quote(s string) string {
	return fmt.Sprintf("%q", s)
}

// Title capitalizes the first letter of each word. Replaces the
// deprecated strings.Title.
func Title(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}
	return strings.Join(words, " ")
}

// Default returns defaultVal when val is empty.
func Default(defaultVal, val string) string {
	if val == "" {
		return defaultVal
	}
	return val
}
