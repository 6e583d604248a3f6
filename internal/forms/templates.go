package forms

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"sync"
)

//go:embed templates
var embeddedTemplates embed.FS

//go:embed static
var embeddedStatic embed.FS

// StaticFS serves the client integration scripts, rooted so that
// backend JS paths resolve directly.
func StaticFS() fs.FS {
	sub, err := fs.Sub(embeddedStatic, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// Templates resolves widget template paths, preferring an override
// directory over the embedded defaults. Parsed templates are cached.
type Templates struct {
	sources []fs.FS

	mu    sync.Mutex
	cache map[string]*template.Template
}

func NewTemplates(overrideDir string) *Templates {
	embedded, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		panic(err)
	}

	sources := make([]fs.FS, 0, 2)
	if overrideDir != "" {
		sources = append(sources, os.DirFS(overrideDir))
	}
	sources = append(sources, embedded)

	return &Templates{
		sources: sources,
		cache:   make(map[string]*template.Template),
	}
}

func (t *Templates) Lookup(name string) (*template.Template, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if tmpl, ok := t.cache[name]; ok {
		return tmpl, nil
	}

	for _, src := range t.sources {
		if _, err := fs.Stat(src, name); err != nil {
			continue
		}

		tmpl, err := template.ParseFS(src, name)
		if err != nil {
			return nil, fmt.Errorf("parse template %q: %w", name, err)
		}
		t.cache[name] = tmpl
		return tmpl, nil
	}

	return nil, fmt.Errorf("template %q: %w", name, fs.ErrNotExist)
}
