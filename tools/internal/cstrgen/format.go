// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package cstrgen

import (
	"bytes"
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Format formats generated source. Go source is run through gofmt, anything
// else is returned as is.
func Format(file string, src []byte) ([]byte, error) {
	if filepath.Ext(file) != ".go" {
		return src, nil
	}

	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, file, src, parser.ParseComments)
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	err = format.Node(buf, fset, f)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func WriteFile(file string, buf *bytes.Buffer) error {
	switch filepath.Ext(file) {
	case ".go":
		return GoFmt(file, buf)
	default:
		return os.WriteFile(file, buf.Bytes(), 0644)
	}
}

func GoFmt(filePath string, buf *bytes.Buffer) error {
	src, err := Format(filePath, buf.Bytes())
	if err != nil {
		// If parsing fails, write out the unformatted code. Without this,
		// debugging the generator is a pain.
		_ = os.WriteFile(filePath, buf.Bytes(), 0644)
		return err
	}

	err = os.WriteFile(filePath, src, 0644)
	if err != nil {
		return err
	}

	return exec.Command("go", "run", "github.com/rinchsan/gosimports/cmd/gosimports", "-w", filePath).Run()
}

// Diff returns a line diff between the current and generated content, or an
// empty string if they are the same.
func Diff(current, generated string) string {
	if current == generated {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToRunes(current, generated)
	diffs := dmp.DiffCharsToLines(dmp.DiffMainRunes(a, b, false), lines)

	var sb strings.Builder
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		default:
			continue
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			sb.WriteString(prefix)
			sb.WriteString(line)
			if !strings.HasSuffix(line, "\n") {
				sb.WriteString("\n")
			}
		}
	}
	return sb.String()
}
