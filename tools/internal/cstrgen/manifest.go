// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package cstrgen

import (
	"bytes"
	"fmt"
	"go/token"

	"gopkg.in/yaml.v3"
)

// Manifest is the YAML form of an invocation.
type Manifest struct {
	// Visibility is the visibility of every constant, exported or unexported.
	// If it is unset, the first entry's exported setting decides, and
	// otherwise constants are unexported.
	Visibility string `yaml:"visibility"`
	// Strings is an ordered mapping of names to values. A value is either a
	// string or an entry.
	Strings yaml.Node `yaml:"strings"`
}

// ManifestEntry is the long form of a manifest value.
type ManifestEntry struct {
	Value       *string
	Description string
	Exported    *bool
}

// ParseManifest parses a YAML manifest. Declarations are returned in the order
// they appear in the manifest.
func ParseManifest(filename string, src []byte) (*Invocation, error) {
	var m Manifest
	dec := yaml.NewDecoder(bytes.NewReader(src))
	dec.KnownFields(true)
	err := dec.Decode(&m)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", filename, err)
	}

	var exported, inferred bool
	switch m.Visibility {
	case "":
		inferred = true
	case "unexported":
	case "exported":
		exported = true
	default:
		return nil, fmt.Errorf("%s: invalid visibility %q", filename, m.Visibility)
	}

	if m.Strings.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("%s: strings must be a mapping", filename)
	}

	inv := new(Invocation)
	for i := 0; i+1 < len(m.Strings.Content); i += 2 {
		key, value := m.Strings.Content[i], m.Strings.Content[i+1]
		decl := &Declaration{
			Name: key.Value,
			Pos:  position(filename, key),
		}

		entry, err := decodeEntry(filename, value)
		if err != nil {
			return nil, err
		}

		decl.Value = *entry.Value
		decl.Description = entry.Description
		if inferred && i == 0 && entry.Exported != nil {
			exported = *entry.Exported
		}
		decl.Exported = exported
		if entry.Exported != nil && *entry.Exported != exported {
			return nil, fmt.Errorf("%v: mixed visibility: %s but %s", decl.Pos, describeVisibility(exported), describe(&Declaration{Name: decl.Name, Exported: *entry.Exported}))
		}
		inv.Declarations = append(inv.Declarations, decl)
	}
	if len(inv.Declarations) == 0 {
		return nil, fmt.Errorf("%s: no strings declared", filename)
	}
	return inv, nil
}

func describeVisibility(exported bool) string {
	if exported {
		return "the manifest is exported"
	}
	return "the manifest is unexported"
}

func decodeEntry(filename string, node *yaml.Node) (*ManifestEntry, error) {
	entry := new(ManifestEntry)
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil, fmt.Errorf("%v: missing value", position(filename, node))
		}
		entry.Value = &node.Value
		return entry, nil

	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			var err error
			switch key.Value {
			case "value":
				entry.Value = new(string)
				err = value.Decode(entry.Value)
			case "description":
				err = value.Decode(&entry.Description)
			case "exported":
				entry.Exported = new(bool)
				err = value.Decode(entry.Exported)
			default:
				return nil, fmt.Errorf("%v: field %s not found in type cstrgen.ManifestEntry", position(filename, key), key.Value)
			}
			if err != nil {
				return nil, fmt.Errorf("%v: %w", position(filename, value), err)
			}
		}
		if entry.Value == nil {
			return nil, fmt.Errorf("%v: missing value", position(filename, node))
		}
		return entry, nil

	default:
		return nil, fmt.Errorf("%v: value must be a string or a mapping", position(filename, node))
	}
}

func position(filename string, node *yaml.Node) token.Position {
	return token.Position{Filename: filename, Line: node.Line, Column: node.Column}
}
