/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package validate provides the validate command for fptokens.
package validate

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/fptokens/cmd/flags"
	"bennypowers.dev/fptokens/internal/logger"
	"bennypowers.dev/fptokens/load"
)

// Cmd is the validate cobra command.
var Cmd = &cobra.Command{
	Use:   "validate [template]",
	Short: "Check that a template can be resolved",
	Long: `Check that a template's tokens are well formed, that no segment holds
more than one token, and that every token has a value set.`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().Bool("strict", false, "Fail on warnings")
	Cmd.Flags().Bool("quiet", false, "Only output errors")
}

// Report summarises a successful check.
type Report struct {
	Tokens       int
	Combinations int
	Unused       []string
}

func run(cmd *cobra.Command, args []string) error {
	strict, _ := cmd.Flags().GetBool("strict")
	quiet, _ := cmd.Flags().GetBool("quiet")

	opts, err := flags.Options(cmd, viper.GetViper())
	if err != nil {
		return err
	}
	tmpl, err := load.Load(cmd.Context(), flags.Spec(args), opts)
	if err != nil {
		return err
	}

	report, err := Check(tmpl)
	if err != nil {
		return err
	}
	if !quiet {
		Print(cmd.OutOrStdout(), report)
	}
	if strict && len(report.Unused) > 0 {
		return fmt.Errorf("validation failed: %d unused value sets", len(report.Unused))
	}
	return nil
}

// Check verifies that tmpl resolves. Value sets that no token uses are
// reported and logged, but are not an error.
func Check(tmpl *load.Template) (*Report, error) {
	n, err := tmpl.Filename.Count(tmpl.Values)
	if err != nil {
		return nil, err
	}

	unused := tmpl.Config.UnusedValues(tmpl.Filename)
	for _, name := range unused {
		logger.Warn("values for %q match no token", name)
	}

	return &Report{
		Tokens:       len(tmpl.Filename.Tokens()),
		Combinations: n,
		Unused:       unused,
	}, nil
}

// Print writes a human-readable summary of r.
func Print(w io.Writer, r *Report) {
	fmt.Fprintf(w, "%d tokens, %d paths\n", r.Tokens, r.Combinations)
	for _, name := range r.Unused {
		fmt.Fprintf(w, "  unused values: %s\n", name)
	}
	fmt.Fprintln(w, "Template valid.")
}
