package handlers

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
)

// TemplateExecutor is an interface for template execution
// This allows both *template.Template and custom template registries to be used
type TemplateExecutor interface {
	ExecuteTemplate(wr io.Writer, name string, data interface{}) error
}

// TemplateRegistry holds separate template instances for each page
type TemplateRegistry struct {
	templates map[string]*template.Template
}

func (tr *TemplateRegistry) ExecuteTemplate(w io.Writer, name string, data interface{}) error {
	tmpl, ok := tr.templates[name]
	if !ok {
		return fmt.Errorf("template %s not found", name)
	}
	// Partial files define a template named after the file without .html
	if lookup := tmpl.Lookup(strings.TrimSuffix(name, ".html")); lookup != nil {
		return lookup.Execute(w, data)
	}
	return tmpl.ExecuteTemplate(w, name, data)
}

// LoadTemplates builds one template set per page (layouts + partials + page)
// and one per partial for htmx fragment responses.
func LoadTemplates(fsys fs.FS) (*TemplateRegistry, error) {
	funcMap := template.FuncMap{
		"dict": dict,
	}
	registry := &TemplateRegistry{templates: make(map[string]*template.Template)}

	layoutFiles, err := fs.Glob(fsys, "layouts/*.html")
	if err != nil {
		return nil, err
	}
	partialFiles, err := fs.Glob(fsys, "partials/*.html")
	if err != nil {
		return nil, err
	}
	pageFiles, err := fs.Glob(fsys, "pages/*.html")
	if err != nil {
		return nil, err
	}
	sharedFiles := append(append([]string(nil), layoutFiles...), partialFiles...)

	for _, pageFile := range pageFiles {
		pageName := path.Base(pageFile)
		tmpl := template.New(pageName).Funcs(funcMap)
		for _, f := range append(sharedFiles, pageFile) {
			if err := parseFile(fsys, tmpl, f); err != nil {
				return nil, err
			}
		}
		registry.templates[pageName] = tmpl
	}

	for _, partialFile := range partialFiles {
		partialName := path.Base(partialFile)
		tmpl := template.New(partialName).Funcs(funcMap)
		// Partials may reference each other
		for _, f := range partialFiles {
			if err := parseFile(fsys, tmpl, f); err != nil {
				return nil, err
			}
		}
		registry.templates[partialName] = tmpl
	}

	return registry, nil
}

func parseFile(fsys fs.FS, tmpl *template.Template, name string) error {
	content, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if _, err := tmpl.Parse(string(content)); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

func dict(values ...interface{}) map[string]interface{} {
	if len(values)%2 != 0 {
		return nil
	}
	d := make(map[string]interface{}, len(values)/2)
	for i := 0; i < len(values); i += 2 {
		key, ok := values[i].(string)
		if !ok {
			return nil
		}
		d[key] = values[i+1]
	}
	return d
}

// renderBuffered executes into memory first so a failing template never
// leaves half a page on the wire.
func renderBuffered(templates TemplateExecutor, name string, data interface{}) ([]byte, error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, name, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
