// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	_ "embed"
	"strings"
	"text/template"

	"gitlab.com/accumulatenetwork/constcstr/tools/internal/cstrgen"
)

//go:embed go.go.tmpl
var goSrc string

var _ = Templates.Register(goSrc, "go", template.FuncMap{
	"quote": cstrgen.Quote,
	"comment": func(s string) string {
		lines := strings.Split(strings.TrimSpace(s), "\n")
		for i, line := range lines {
			lines[i] = strings.TrimRight("// "+line, " ")
		}
		return strings.Join(lines, "\n")
	},
}, "Go")
