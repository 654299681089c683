// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
	"gitlab.com/accumulatenetwork/constcstr/tools/internal/cstrgen"
)

func parseDecls(t *testing.T, src string) cstrgen.Declarations {
	t.Helper()
	inv, err := cstrgen.Parse("test.cstr", []byte(src))
	require.NoError(t, err)
	require.Nil(t, inv.Literal)
	return inv.Declarations
}

func render(t *testing.T, language string, file *cstrgen.File) string {
	t.Helper()
	buf := new(bytes.Buffer)
	require.NoError(t, Templates.Execute(buf, language, file))
	return buf.String()
}

// constValues parses Go source and returns the value of each constant, in
// order.
func constValues(t *testing.T, src []byte) ([]string, map[string]string) {
	t.Helper()
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, "cstr_gen.go", src, parser.ParseComments)
	require.NoError(t, err)

	var names []string
	values := map[string]string{}
	for _, decl := range f.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.CONST {
			continue
		}
		for _, spec := range gen.Specs {
			spec := spec.(*ast.ValueSpec)
			require.Len(t, spec.Names, 1)
			require.Equal(t, "cstr.Const", typeName(spec.Type))
			lit := spec.Values[0].(*ast.BasicLit)
			value, err := strconv.Unquote(lit.Value)
			require.NoError(t, err)
			names = append(names, spec.Names[0].Name)
			values[spec.Names[0].Name] = value
		}
	}
	return names, values
}

func typeName(expr ast.Expr) string {
	sel, ok := expr.(*ast.SelectorExpr)
	if !ok {
		return ""
	}
	return sel.X.(*ast.Ident).Name + "." + sel.Sel.Name
}

func newTestFile(decls cstrgen.Declarations) *cstrgen.File {
	return &cstrgen.File{
		Year:         2026,
		Package:      "ffi",
		Import:       defaultImport,
		Qualifier:    "cstr",
		Declarations: decls,
	}
}

func TestGoOutput(t *testing.T) {
	decls := parseDecls(t, `
		pub first = "first";
		pub Second = "second";
		pub Empty = "";
		pub Quoted = "say \"hi\"\n";
	`)

	src, err := cstrgen.Format("cstr_gen.go", []byte(render(t, "go", newTestFile(decls))))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(src), "// Copyright 2026 The Accumulate Authors\n"))
	require.Contains(t, string(src), "// Code generated by gen-cstr. DO NOT EDIT.\n\npackage ffi\n")
	require.Contains(t, string(src), `"`+defaultImport+`"`)

	names, values := constValues(t, src)
	require.Equal(t, []string{"First", "Second", "Empty", "Quoted"}, names)
	require.Equal(t, "first\x00", values["First"])
	require.Equal(t, "second\x00", values["Second"])
	require.Equal(t, "\x00", values["Empty"])
	require.Equal(t, "say \"hi\"\n\x00", values["Quoted"])
}

func TestGoOutputUnexported(t *testing.T) {
	decls := parseDecls(t, `Hello = "Hello, world!"; goodnight = "Goodnight, sun!";`)
	src, err := cstrgen.Format("cstr_gen.go", []byte(render(t, "Go", newTestFile(decls))))
	require.NoError(t, err)

	names, values := constValues(t, src)
	require.Equal(t, []string{"hello", "goodnight"}, names)
	require.Equal(t, "Hello, world!\x00", values["hello"])
}

func TestGoOutputRegistryAndDescription(t *testing.T) {
	file := newTestFile(cstrgen.Declarations{
		{Name: "Hello", Value: "Hello, world!", Exported: true, Description: "Hello is printed on startup."},
		{Name: "Goodnight", Value: "Goodnight, sun!", Exported: true},
	})
	file.Registry = "Messages"

	src, err := cstrgen.Format("cstr_gen.go", []byte(render(t, "go", file)))
	require.NoError(t, err)
	require.Contains(t, string(src), "// Hello is printed on startup.\nconst Hello cstr.Const = \"Hello, world!\\x00\"\n")
	require.Contains(t, string(src), "var Messages = cstr.NewRegistry(\n\tHello,\n\tGoodnight,\n)\n")
}

func TestCHeaderOutput(t *testing.T) {
	flags.Out = "strings.h"
	defer func() { flags.Out = "" }()

	decls := parseDecls(t, `pub Hello = "Hello, world!"; pub Odd = "tab\there?";`)
	src := render(t, "c-header", newTestFile(decls))
	require.Contains(t, src, "#ifndef STRINGS_H\n#define STRINGS_H\n")
	require.Contains(t, src, `static const char Hello[] = "Hello, world!";`)
	require.Contains(t, src, `static const char Odd[] = "tab\there\?";`)
	require.Contains(t, src, "#endif /* STRINGS_H */")
}

func TestCHeaderDescription(t *testing.T) {
	flags.Out = "strings.h"
	defer func() { flags.Out = "" }()

	file := newTestFile(cstrgen.Declarations{
		{Name: "Glob", Value: "*", Exported: true, Description: "Glob matches */ everything."},
	})
	src := render(t, "C", file)
	require.Contains(t, src, "/* Glob matches * / everything. */\nstatic const char Glob[] = \"*\";")
	require.Equal(t, 1, strings.Count(src, "*/\nstatic"))
}

func TestCheckCNames(t *testing.T) {
	require.NoError(t, checkCNames(parseDecls(t, `pub Hello = "Hello"; pub Int = "int";`)))

	err := checkCNames(parseDecls(t, `int = "int";`))
	require.EqualError(t, err, `test.cstr:1:1: "int" is a C keyword`)

	require.True(t, isCHeader("c-header"))
	require.True(t, isCHeader("C"))
	require.True(t, isCHeader("c-header:body"))
	require.False(t, isCHeader("go"))
}

func TestCQuote(t *testing.T) {
	cases := map[string]string{
		"":         `""`,
		"plain":    `"plain"`,
		`a"b\c`:    `"a\"b\\c"`,
		"line\n":   `"line\n"`,
		"nul\x00x": `"nul\000x"`,
		"é":        `"\303\251"`,
		"\x1b[0m":  `"\033[0m"`,
		"what??!":  `"what\?\?!"`,
	}
	for input, expect := range cases {
		require.Equal(t, expect, cQuote(input), "cQuote(%q)", input)
	}
}

func TestHeaderYear(t *testing.T) {
	year, ok := headerYear([]byte("// Copyright 2024 The Accumulate Authors\n"))
	require.True(t, ok)
	require.Equal(t, 2024, year)

	year, ok = headerYear([]byte("/* Copyright 2025 The Accumulate Authors\n"))
	require.True(t, ok)
	require.Equal(t, 2025, year)

	_, ok = headerYear([]byte("package main\n"))
	require.False(t, ok)
}

func TestExpr(t *testing.T) {
	flags.Import = defaultImport
	defer func() { flags.Import = "" }()

	buf := new(bytes.Buffer)
	cmd := new(cobra.Command)
	cmd.SetOut(buf)
	runExpr(cmd, []string{`"Goodnight, sun!"`, "`raw` + \"\\tcat\""})
	require.Equal(t, "cstr.Const(\"Goodnight, sun!\\x00\")\ncstr.Const(\"raw\\tcat\\x00\")\n", buf.String())
}

func TestNewFile(t *testing.T) {
	flags.Package, flags.Import, flags.Registry = "ffi", defaultImport, "All"
	defer func() { flags.Package, flags.Import, flags.Registry = "", "", "" }()

	file, err := newFile(nil)
	require.NoError(t, err)
	require.Equal(t, "cstr", file.Qualifier)
	require.Equal(t, "All", file.Registry)

	flags.Registry = "not valid"
	_, err = newFile(nil)
	require.Error(t, err)

	flags.Registry = "hello"
	_, err = newFile(parseDecls(t, `hello = "Hello";`))
	require.EqualError(t, err, `test.cstr:1:1: "hello" collides with the registry`)

	flags.Registry = ""
	_, err = newFile(parseDecls(t, `cstr = "cstr";`))
	require.EqualError(t, err, `test.cstr:1:1: "cstr" collides with the import of package cstr`)

	// C keywords are only reserved in C output
	decls := parseDecls(t, `static = "static";`)
	_, err = newFile(decls)
	require.NoError(t, err)

	flags.Language = "c-header"
	defer func() { flags.Language = "" }()
	_, err = newFile(decls)
	require.EqualError(t, err, `test.cstr:1:1: "static" is a C keyword`)
}

// The generated files checked into the repository must match what gen-cstr
// produces from their inputs, the same way --check compares them.
func TestCommittedOutputIsCurrent(t *testing.T) {
	cases := []struct {
		name, input, output, pkg, registry string
	}{
		{"Example", "../../../examples/hello/strings.yml", "../../../examples/hello/cstr_gen.go", "main", "messages"},
		{"Tests", "../../../pkg/cstr/testdata/strings.cstr", "../../../pkg/cstr/cstr_gen_test.go", "cstr_test", "testStrings"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			var reader cstrgen.FileReader
			decls, err := reader.Read([]string{c.input})
			require.NoError(t, err)

			file := newTestFile(decls)
			file.Package = c.pkg
			file.Registry = c.registry

			generated, err := cstrgen.Format(c.output, []byte(render(t, "go", file)))
			require.NoError(t, err)

			committed, err := os.ReadFile(c.output)
			require.NoError(t, err)
			require.Empty(t, cstrgen.Diff(string(committed), string(generated)))
		})
	}
}

func TestVersion(t *testing.T) {
	require.NotEmpty(t, version())

	Version = "v1.2.3"
	defer func() { Version = unknownVersion }()
	require.True(t, IsVersionKnown())
	require.Equal(t, "v1.2.3", version())
}
