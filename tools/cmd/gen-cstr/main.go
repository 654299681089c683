// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"bytes"
	"errors"
	"fmt"
	"go/token"
	"io/fs"
	"os"
	"path"
	"regexp"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gitlab.com/accumulatenetwork/constcstr/tools/internal/cstrgen"
	"golang.org/x/exp/slog"
	"golang.org/x/term"
)

const defaultImport = "gitlab.com/accumulatenetwork/constcstr/pkg/cstr"

var Templates = cstrgen.NewTemplateLibrary(nil)

var flags struct {
	files cstrgen.FileReader

	Package  string
	Language string
	Out      string
	Import   string
	Registry string
	Year     int
	Check    bool
	Verbose  bool
}

var logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

func main() {
	cmd := &cobra.Command{
		Use:     "gen-cstr [file]",
		Short:   "Generate NUL-terminated string constants",
		Args:    cobra.MinimumNArgs(1),
		Version: version(),
		PersistentPreRun: func(*cobra.Command, []string) {
			level := slog.LevelWarn
			if flags.Verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		},
		Run: run,
	}

	cmd.PersistentFlags().StringVar(&flags.Import, "import", defaultImport, "Import path of the cstr package")
	cmd.PersistentFlags().BoolVarP(&flags.Verbose, "verbose", "v", false, "Log what the generator is doing")
	cmd.Flags().StringVarP(&flags.Language, "language", "l", "Go", "Output language or template file")
	cmd.Flags().StringVar(&flags.Package, "package", "main", "Package name")
	cmd.Flags().StringVarP(&flags.Out, "out", "o", "cstr_gen.go", "Output file")
	cmd.Flags().StringVar(&flags.Registry, "registry", "", "Also declare a registry of all the constants with this name")
	cmd.Flags().IntVar(&flags.Year, "year", 0, "Copyright year (defaults to the modification year of the newest input)")
	cmd.Flags().BoolVar(&flags.Check, "check", false, "Check that the output file is up to date instead of writing it")
	flags.files.SetFlags(cmd.Flags(), "constants")

	cmd.AddCommand(cmdExpr)

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

func check(err error) {
	if err != nil {
		fatalf("%v", err)
	}
}

func checkf(err error, format string, otherArgs ...interface{}) {
	if err != nil {
		fatalf(format+": %v", append(otherArgs, err)...)
	}
}

func warnf(format string, args ...interface{}) {
	format = "WARNING: " + format + "\n"
	if term.IsTerminal(int(os.Stderr.Fd())) {
		fmt.Fprint(os.Stderr, color.YellowString(format, args...))
	} else {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

func run(cmd *cobra.Command, args []string) {
	decls, err := flags.files.Read(args)
	check(err)
	logger.Debug("Read declarations", "files", len(args), "constants", len(decls))

	for _, decl := range decls {
		if decl.HasInteriorNul() {
			text, _, _ := strings.Cut(decl.Value, "\x00")
			warnf("%v: %s contains a NUL byte, C code will only see %q", decl.Pos, decl.GoName(), text)
		}
	}

	file, err := newFile(decls)
	check(err)

	if flags.Year == 0 {
		flags.Year, err = inputYear(args)
		check(err)
	}

	current, err := os.ReadFile(flags.Out)
	switch {
	case err == nil:
		if year, ok := headerYear(current); ok && flags.Check && !cmd.Flags().Changed("year") {
			flags.Year = year
		}
	case errors.Is(err, fs.ErrNotExist):
		current = nil
	default:
		checkf(err, "reading %q", flags.Out)
	}
	file.Year = flags.Year

	w := new(bytes.Buffer)
	check(Templates.Execute(w, flags.Language, file))

	if !flags.Check {
		check(cstrgen.WriteFile(flags.Out, w))
		logger.Debug("Wrote output", "file", flags.Out, "language", flags.Language)
		return
	}

	generated, err := cstrgen.Format(flags.Out, w.Bytes())
	checkf(err, "formatting %q", flags.Out)
	if diff := cstrgen.Diff(string(current), string(generated)); diff != "" {
		fmt.Fprint(os.Stderr, diff)
		fatalf("%s is out of date, run go generate", flags.Out)
	}
	logger.Debug("Output is up to date", "file", flags.Out)
}

func newFile(decls cstrgen.Declarations) (*cstrgen.File, error) {
	if flags.Registry != "" && !token.IsIdentifier(flags.Registry) {
		return nil, fmt.Errorf("--registry: %q is not a valid identifier", flags.Registry)
	}
	if !token.IsIdentifier(flags.Package) {
		return nil, fmt.Errorf("--package: %q is not a valid identifier", flags.Package)
	}

	qualifier := path.Base(flags.Import)
	if err := decls.CheckNames(qualifier, flags.Registry); err != nil {
		return nil, err
	}
	if isCHeader(flags.Language) {
		if err := checkCNames(decls); err != nil {
			return nil, err
		}
	}

	return &cstrgen.File{
		Package:      flags.Package,
		Import:       flags.Import,
		Qualifier:    qualifier,
		Registry:     flags.Registry,
		Declarations: decls,
	}, nil
}

func inputYear(files []string) (int, error) {
	modified, err := cstrgen.GetModifiedDate(files[0])
	if err != nil {
		return 0, err
	}
	for _, file := range files[1:] {
		t, err := cstrgen.GetModifiedDate(file)
		if err != nil {
			return 0, err
		}
		if t.After(modified) {
			modified = t
		}
	}
	return modified.Year(), nil
}

var reHeaderYear = regexp.MustCompile(`^(?://|/\*) Copyright (\d{4}) `)

func headerYear(src []byte) (int, bool) {
	m := reHeaderYear.FindSubmatch(src)
	if m == nil {
		return 0, false
	}
	year, err := strconv.Atoi(string(m[1]))
	return year, err == nil
}
