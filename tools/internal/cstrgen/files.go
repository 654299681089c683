// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package cstrgen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

type FileReader struct {
	Include []string
	Exclude []string
	Rename  []string
}

func (f *FileReader) SetFlags(flags *pflag.FlagSet, label string) {
	flags.StringSliceVarP(&f.Include, "include", "i", nil, "Include only specific "+label)
	flags.StringSliceVarP(&f.Exclude, "exclude", "x", nil, "Exclude specific "+label)
	flags.StringSliceVar(&f.Rename, "rename", nil, "Rename "+label+", e.g. 'Foo:Bar'")
}

// ParseFile parses a declaration file or, if the extension is .yml or .yaml, a
// manifest.
func ParseFile(file string) (*Invocation, error) {
	src, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", file, err)
	}

	switch filepath.Ext(file) {
	case ".yml", ".yaml":
		return ParseManifest(file, src)
	default:
		return Parse(file, src)
	}
}

// Read reads declarations from each file. Each file is a separate invocation,
// so visibility only has to be consistent within a file.
func (f *FileReader) Read(files []string) (Declarations, error) {
	var all Declarations
	for _, file := range files {
		inv, err := ParseFile(file)
		if err != nil {
			return nil, err
		}
		if inv.Literal != nil {
			return nil, fmt.Errorf("%s: a bare literal cannot be declared, use gen-cstr expr", file)
		}
		all = append(all, inv.Declarations...)
	}

	all, err := f.include(all)
	if err != nil {
		return nil, err
	}

	all, err = f.exclude(all)
	if err != nil {
		return nil, err
	}

	err = f.rename(all)
	if err != nil {
		return nil, err
	}

	if len(all) == 0 {
		return nil, fmt.Errorf("no constants declared")
	}

	seen := map[string]*Declaration{}
	for _, decl := range all {
		err := decl.Validate()
		if err != nil {
			return nil, err
		}

		name := decl.GoName()
		if prev, ok := seen[name]; ok {
			return nil, decl.errorf("duplicate entries for %q, previously declared at %v", name, prev.Pos)
		}
		seen[name] = decl
	}

	return all, nil
}

func (d Declarations) find(name string) int {
	for i, decl := range d {
		if decl.Name == name || decl.GoName() == name {
			return i
		}
	}
	return -1
}

func (f *FileReader) include(all Declarations) (Declarations, error) {
	if f.Include == nil {
		return all, nil
	}

	included := map[*Declaration]bool{}
	for _, name := range f.Include {
		if name = strings.TrimSpace(name); name == "" {
			continue
		}
		i := all.find(name)
		if i < 0 {
			return nil, fmt.Errorf("%q is not declared", name)
		}
		included[all[i]] = true
	}

	// Keep the declaration order, not the flag order
	var ordered Declarations
	for _, decl := range all {
		if included[decl] {
			ordered = append(ordered, decl)
		}
	}
	return ordered, nil
}

func (f *FileReader) exclude(all Declarations) (Declarations, error) {
	for _, name := range f.Exclude {
		if name = strings.TrimSpace(name); name == "" {
			continue
		}
		i := all.find(name)
		if i < 0 {
			return nil, fmt.Errorf("%q is not declared", name)
		}
		all = append(all[:i:i], all[i+1:]...)
	}
	return all, nil
}

func (f *FileReader) rename(all Declarations) error {
	for _, spec := range f.Rename {
		bits := strings.Split(spec, ":")
		if len(bits) != 2 {
			return fmt.Errorf("invalid rename: want 'X:Y', got '%s'", spec)
		}

		from, to := bits[0], bits[1]
		i := all.find(from)
		if i < 0 {
			return fmt.Errorf("%q is not declared", from)
		}
		all[i].Name = to
	}
	return nil
}

// GetModifiedDate returns the modification time of the file.
func GetModifiedDate(file string) (time.Time, error) {
	st, err := os.Stat(file)
	if err != nil {
		return time.Time{}, err
	}
	return st.ModTime(), nil
}
