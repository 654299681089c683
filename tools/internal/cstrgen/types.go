// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package cstrgen

import (
	"fmt"
	"go/token"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var enUsTitle = cases.Title(language.AmericanEnglish)
var enUsLower = cases.Lower(language.AmericanEnglish)

// TitleCase upper-cases the first letter of s.
func TitleCase(s string) string {
	_, n := utf8.DecodeRuneInString(s)
	return enUsTitle.String(s[:n]) + s[n:]
}

// LowerCase lower-cases the first letter of s.
func LowerCase(s string) string {
	_, n := utf8.DecodeRuneInString(s)
	return enUsLower.String(s[:n]) + s[n:]
}

// Declarations is an ordered list of declarations.
type Declarations []*Declaration

// Declaration is a named C string constant.
type Declaration struct {
	// Name is the name of the constant as written in the input.
	Name string
	// Value is the text of the constant, without the NUL terminator.
	Value string
	// Exported specifies whether the constant is exported.
	Exported bool
	// Description is the description of the constant.
	Description string
	// Pos is the position of the declaration in the input.
	Pos token.Position
}

// Invocation is the result of parsing one input. An invocation either declares
// constants or is a single bare literal.
type Invocation struct {
	// Declarations is the list of declarations.
	Declarations Declarations
	// Literal is the value of a bare literal.
	Literal *string
}

// GoName returns the name of the constant with the first letter cased
// according to its visibility.
func (d *Declaration) GoName() string {
	if d.Exported {
		return TitleCase(d.Name)
	}
	return LowerCase(d.Name)
}

// HasInteriorNul returns true if the value contains a NUL byte. Consumers of
// the C string will only see the text up to the first NUL.
func (d *Declaration) HasInteriorNul() bool {
	return strings.IndexByte(d.Value, 0) >= 0
}

// Validate checks that the Go name of the declaration is a usable identifier
// with the declared visibility.
func (d *Declaration) Validate() error {
	name := d.GoName()
	if !token.IsIdentifier(name) {
		return d.errorf("%q is not a valid identifier", name)
	}
	if name == "_" {
		return d.errorf("cannot declare a blank constant")
	}
	if d.Exported != token.IsExported(name) {
		r, _ := utf8.DecodeRuneInString(name)
		if !unicode.IsUpper(r) && !unicode.IsLower(r) {
			return d.errorf("cannot control the visibility of %q", name)
		}
		return d.errorf("%q does not have the declared visibility", name)
	}
	return nil
}

func (d *Declaration) errorf(format string, args ...interface{}) error {
	msg := fmt.Sprintf(format, args...)
	if !d.Pos.IsValid() {
		return fmt.Errorf("%s", msg)
	}
	return fmt.Errorf("%v: %s", d.Pos, msg)
}

// Expr returns a Go expression that evaluates to a C string constant with the
// given text, qualified with the given package name.
func Expr(qualifier, value string) string {
	return qualifier + ".Const(" + Quote(value) + ")"
}

// Quote returns a Go string literal for value with a NUL terminator appended.
func Quote(value string) string {
	return strconv.Quote(value + "\x00")
}

// CheckNames checks that no constant shadows the package it is declared with,
// qualifier, and that the registry name does not collide with a constant.
func (d Declarations) CheckNames(qualifier, registry string) error {
	for _, decl := range d {
		name := decl.GoName()
		if name == qualifier {
			return decl.errorf("%q collides with the import of package %s", name, qualifier)
		}
		if name == registry {
			return decl.errorf("%q collides with the registry", name)
		}
	}
	if registry != "" && registry == qualifier {
		return fmt.Errorf("registry %q collides with the import of package %s", registry, qualifier)
	}
	return nil
}
