// Copyright 2026 The Accumulate Authors
//
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file or at
// https://opensource.org/licenses/MIT.

package main

import (
	"fmt"
	"path"

	"github.com/spf13/cobra"
	"gitlab.com/accumulatenetwork/constcstr/tools/internal/cstrgen"
)

var cmdExpr = &cobra.Command{
	Use:   "expr [literal...]",
	Short: "Print the constant expression for a Go string literal",
	Args:  cobra.MinimumNArgs(1),
	Run:   runExpr,
}

var flagExpr = struct {
	Text bool
}{}

func init() {
	cmdExpr.Flags().BoolVar(&flagExpr.Text, "text", false, "Treat the arguments as text instead of Go string literals")
}

func runExpr(cmd *cobra.Command, args []string) {
	for _, arg := range args {
		value := arg
		if !flagExpr.Text {
			var err error
			value, err = cstrgen.ParseExpr(arg)
			checkf(err, "parsing %s", arg)
		}
		logger.Debug("Expanding literal", "value", value)
		fmt.Fprintln(cmd.OutOrStdout(), cstrgen.Expr(path.Base(flags.Import), value))
	}
}
