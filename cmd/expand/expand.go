/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package expand provides the expand command for fptokens.
package expand

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/fptokens/cmd/flags"
	"bennypowers.dev/fptokens/cmd/render"
	"bennypowers.dev/fptokens/fs"
	"bennypowers.dev/fptokens/internal/logger"
	"bennypowers.dev/fptokens/load"
)

// Cmd is the expand cobra command.
var Cmd = &cobra.Command{
	Use:   "expand [template]",
	Short: "Print every path a template expands to",
	Long: `Expand a filename template into one path per combination of token values.

The template is either given as an argument (e.g. 'assets/$size$/img_$size$.jpg')
or read from the config file. Values come from the config and --set flags.`,
	Example: `  fptokens expand 'assets/$size$/$color$/img_$size$_$color$.jpg' \
    --set size=1200px,2500px --set color=black,white`,
	Args: cobra.MaximumNArgs(1),
	RunE: run,
}

func init() {
	Cmd.Flags().String("match", "", "Only keep paths matching this glob (relative to the root, ** supported)")
	Cmd.Flags().Int("limit", 0, "Stop after this many paths (0 for all)")
	Cmd.Flags().StringP("format", "f", "names", "Output format: names, json, table")
	Cmd.Flags().Bool("make", false, "Create the directory of every resolved path")
}

// Options controls one expansion.
type Options struct {
	Match  string
	Limit  int
	Format render.Format
	Make   bool
}

func run(cmd *cobra.Command, args []string) error {
	match, _ := cmd.Flags().GetString("match")
	limit, _ := cmd.Flags().GetInt("limit")
	formatFlag, _ := cmd.Flags().GetString("format")
	mk, _ := cmd.Flags().GetBool("make")

	format, err := render.ParseFormat(formatFlag)
	if err != nil {
		return err
	}

	loadOpts, err := flags.Options(cmd, viper.GetViper())
	if err != nil {
		return err
	}
	filesystem := fs.NewOSFileSystem()
	loadOpts.FS = filesystem

	tmpl, err := load.Load(cmd.Context(), flags.Spec(args), loadOpts)
	if err != nil {
		return err
	}

	return Expand(tmpl, Options{Match: match, Limit: limit, Format: format, Make: mk}, filesystem, cmd.OutOrStdout())
}

// Expand resolves tmpl and renders the selected paths to w. With opts.Make
// each selected path's directory is created on filesystem as it is produced.
func Expand(tmpl *load.Template, opts Options, filesystem fs.FileSystem, w io.Writer) error {
	if opts.Match != "" && !doublestar.ValidatePattern(opts.Match) {
		return fmt.Errorf("invalid --match pattern %q", opts.Match)
	}

	f := tmpl.Filename
	combos, err := f.Combinations(tmpl.Values)
	if err != nil {
		return err
	}

	var rows []render.Row
	for combo := range combos {
		resolved := f.Apply(combo)
		path := resolved.Path()

		if opts.Match != "" {
			rel, err := filepath.Rel(f.Root, path)
			if err != nil {
				rel = path
			}
			if ok, _ := doublestar.Match(opts.Match, filepath.ToSlash(rel)); !ok {
				continue
			}
		}

		if opts.Make {
			if err := resolved.Materialize(filesystem); err != nil {
				return err
			}
		}

		rows = append(rows, render.NewRow(path, combo))
		if opts.Limit > 0 && len(rows) >= opts.Limit {
			break
		}
	}
	logger.Info("expanded %d paths", len(rows))

	return render.Rows(w, opts.Format, rows)
}
