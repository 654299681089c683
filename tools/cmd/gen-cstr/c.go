// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	_ "embed"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"
	"unicode"

	"gitlab.com/accumulatenetwork/constcstr/tools/internal/cstrgen"
)

//go:embed c.h.tmpl
var cHeader string

var _ = Templates.Register(cHeader, "c-header", template.FuncMap{
	"cquote":   cQuote,
	"ccomment": cComment,
	"guard": func() string {
		return includeGuard(flags.Out)
	},
}, "C")

// cQuote returns a C string literal for s. The compiler supplies the
// terminator. Octal escapes are always three digits so they cannot run into
// the following character.
func cQuote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '"' || c == '\\':
			sb.WriteByte('\\')
			sb.WriteByte(c)
		case c == '\n':
			sb.WriteString(`\n`)
		case c == '\t':
			sb.WriteString(`\t`)
		case c == '?':
			// Avoid trigraphs
			sb.WriteString(`\?`)
		case c < 0x20 || c >= 0x7f:
			fmt.Fprintf(&sb, `\%03o`, c)
		default:
			sb.WriteByte(c)
		}
	}
	sb.WriteByte('"')
	return sb.String()
}

// cComment makes s safe to place inside a block comment.
func cComment(s string) string {
	return strings.ReplaceAll(s, "*/", "* /")
}

var cKeywords = map[string]bool{}

func init() {
	for _, kw := range strings.Fields(`
		auto break case char const continue default do double else enum extern
		float for goto if inline int long register restrict return short signed
		sizeof static struct switch typedef union unsigned void volatile while
		_Alignas _Alignof _Atomic _Bool _Complex _Generic _Imaginary _Noreturn
		_Static_assert _Thread_local
		alignas alignof bool constexpr false nullptr static_assert thread_local
		true typeof typeof_unqual _BitInt _Decimal128 _Decimal32 _Decimal64
	`) {
		cKeywords[kw] = true
	}
}

func isCHeader(language string) bool {
	name, _, _ := strings.Cut(language, ":")
	return name == "c-header" || name == "C"
}

// checkCNames rejects constants whose names are reserved words in C.
func checkCNames(decls cstrgen.Declarations) error {
	for _, decl := range decls {
		if name := decl.GoName(); cKeywords[name] {
			return fmt.Errorf("%v: %q is a C keyword", decl.Pos, name)
		}
	}
	return nil
}

func includeGuard(file string) string {
	name := strings.ToUpper(filepath.Base(file))
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return '_'
	}, name)
}
