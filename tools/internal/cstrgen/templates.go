// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package cstrgen

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"text/template"
)

// File is the data passed to an output template.
type File struct {
	Year         int
	Package      string
	Import       string
	Qualifier    string
	Registry     string
	Declarations Declarations
}

// TemplateLibrary is a set of named output templates.
type TemplateLibrary struct {
	functions template.FuncMap
	templates map[string]*template.Template
}

func NewTemplateLibrary(funcs template.FuncMap) *TemplateLibrary {
	return &TemplateLibrary{
		functions: funcs,
		templates: map[string]*template.Template{},
	}
}

// Register parses and registers a template. Register panics if the template
// cannot be parsed.
func (lib *TemplateLibrary) Register(src, name string, funcs template.FuncMap, altNames ...string) *template.Template {
	tmpl := lib.new(name, funcs)
	tmpl, err := tmpl.Parse(src)
	if err != nil {
		panic(fmt.Errorf("template %q: %w", name, err))
	}
	lib.templates[name] = tmpl
	for _, name := range altNames {
		lib.templates[name] = tmpl
	}
	return tmpl
}

// Names returns the names of the registered templates.
func (lib *TemplateLibrary) Names() []string {
	var names []string
	for name := range lib.templates {
		names = append(names, name)
	}
	return names
}

// Execute executes the named template. If no template is registered with that
// name, name is treated as the path of a template file. A name of the form
// "tmpl:sub" executes the sub-template sub of tmpl.
func (lib *TemplateLibrary) Execute(w io.Writer, name string, data interface{}) error {
	names := strings.Split(name, ":")
	name, names = names[0], names[1:]

	tmpl, ok := lib.templates[name]
	if ok {
		return execute(tmpl, names, w, data)
	}

	b, err := os.ReadFile(name)
	switch {
	case err == nil:
		// Ok
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%q is not a known template or a template file", name)
	default:
		return err
	}

	tmpl, err = lib.new(name, nil).Parse(string(b))
	if err != nil {
		return fmt.Errorf("error parsing %q: %w", name, err)
	}

	return execute(tmpl, names, w, data)
}

func (lib *TemplateLibrary) new(name string, funcs template.FuncMap) *template.Template {
	tmpl := template.New(name)
	if lib.functions != nil {
		tmpl = tmpl.Funcs(lib.functions)
	}
	if funcs != nil {
		tmpl = tmpl.Funcs(funcs)
	}
	return tmpl
}

func execute(tmpl *template.Template, names []string, w io.Writer, data interface{}) error {
	for _, name := range names {
		tmpl = tmpl.Lookup(name)
		if tmpl == nil {
			return fmt.Errorf("unknown sub-template %q", name)
		}
	}
	return tmpl.Execute(w, data)
}
