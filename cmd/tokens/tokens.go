/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package tokens provides the tokens command for fptokens.
package tokens

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/fptokens/cmd/flags"
	"bennypowers.dev/fptokens/cmd/render"
	"bennypowers.dev/fptokens/load"
)

// Cmd is the tokens cobra command.
var Cmd = &cobra.Command{
	Use:   "tokens [template]",
	Short: "List the tokens detected in a template",
	Long:  `List every distinct token in a template, in order of first appearance, with its configured values.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  run,
}

func init() {
	Cmd.Flags().StringP("format", "f", "table", "Output format: table, json")
}

func run(cmd *cobra.Command, args []string) error {
	format, _ := cmd.Flags().GetString("format")

	opts, err := flags.Options(cmd, viper.GetViper())
	if err != nil {
		return err
	}
	tmpl, err := load.Load(cmd.Context(), flags.Spec(args), opts)
	if err != nil {
		return err
	}
	return List(cmd.OutOrStdout(), tmpl, format)
}

type tokenOutput struct {
	Name      string   `json:"name"`
	Delimited string   `json:"delimited"`
	Escape    string   `json:"escape"`
	Values    []string `json:"values,omitempty"`
}

// List writes the template's tokens to w as a table or JSON.
func List(w io.Writer, tmpl *load.Template, format string) error {
	toks := tmpl.Filename.Tokens()

	switch format {
	case "json":
		output := make([]tokenOutput, 0, len(toks))
		for _, t := range toks {
			output = append(output, tokenOutput{
				Name:      t.Name(),
				Delimited: t.Delimited(),
				Escape:    t.Escape(),
				Values:    tmpl.Values[t.Name()],
			})
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(output)
	case "table", "":
		return render.Tokens(w, toks, tmpl.Values)
	default:
		return fmt.Errorf("unknown format %q (want table or json)", format)
	}
}
