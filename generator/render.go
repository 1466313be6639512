package generator

import (
	"bytes"
	"fmt"
	"io/fs"
	"sync"
	"text/template"

	"github.com/Dunsteer/ngrx-essentials-generator/naming"
)

// Renderer handles template parsing and rendering with caching
type Renderer struct {
	funcMap template.FuncMap
	cache   map[string]*template.Template
	mu      sync.RWMutex // Protect cache for concurrent access
}

// NewRenderer creates a renderer with built-in helper functions
func NewRenderer() *Renderer {
	return &Renderer{
		funcMap: defaultFuncMap(),
		cache:   make(map[string]*template.Template),
	}
}

// RenderFS renders a template read from fsys (typically an embed.FS)
func (r *Renderer) RenderFS(fsys fs.FS, path string, data any) ([]byte, error) {
	return r.render(r.getCacheKey("fs", path), data, func() (*template.Template, error) {
		templateBytes, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("failed to read template from fs '%s': %w", path, err)
		}
		return template.New(path).Funcs(r.funcMap).Parse(string(templateBytes))
	})
}

func (r *Renderer) render(key string, data any, parse func() (*template.Template, error)) ([]byte, error) {
	r.mu.RLock()
	tmpl, ok := r.cache[key]
	r.mu.RUnlock()

	if !ok {
		var err error
		tmpl, err = parse()
		if err != nil {
			return nil, fmt.Errorf("failed to parse template '%s': %w", key, err)
		}

		r.mu.Lock()
		r.cache[key] = tmpl
		r.mu.Unlock()
	}

	return r.executeTemplate(tmpl, data)
}

// executeTemplate executes a parsed template with the given data
func (r *Renderer) executeTemplate(tmpl *template.Template, data any) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render template '%s': %w", tmpl.Name(), err)
	}
	return buf.Bytes(), nil
}

// getCacheKey generates a cache key for a template
func (r *Renderer) getCacheKey(typ, identifier string) string {
	return fmt.Sprintf("%s:%s", typ, identifier)
}

// defaultFuncMap returns the default template function map
func defaultFuncMap() template.FuncMap {
	return template.FuncMap{
		"camel":      naming.Camel,      // user-profile → userProfile
		"class":      naming.Class,      // user-profile → UserProfile
		"constant":   naming.Constant,   // user-profile → USER_PROFILE
		"human":      naming.Human,      // user-profile → user profile
		"capitalize": naming.Capitalize, // user profile → User profile
		"upper":      naming.Upper,      // user profile → USER PROFILE
		"plural":     naming.Plural,     // user → users
	}
}
