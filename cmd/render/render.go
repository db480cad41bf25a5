/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package render provides shared rendering functions for CLI output.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/width"

	"bennypowers.dev/fptokens/filename"
	"bennypowers.dev/fptokens/token"
)

// Row holds display values for one resolved path.
type Row struct {
	Path     string             // Resolved path
	Bindings []filename.Binding // Token values that produced Path
	Values   map[string]string  // Bindings keyed by token name
}

// NewRow builds a row from a resolved path and its bindings.
func NewRow(path string, combo []filename.Binding) Row {
	values := make(map[string]string, len(combo))
	for _, b := range combo {
		values[b.Name] = b.Value
	}
	return Row{Path: path, Bindings: combo, Values: values}
}

// Format names an output format.
type Format string

// Supported output formats.
const (
	FormatNames Format = "names"
	FormatJSON  Format = "json"
	FormatTable Format = "table"
)

// ParseFormat parses a format name.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatNames, FormatJSON, FormatTable:
		return Format(s), nil
	default:
		return "", fmt.Errorf("unknown format %q (want names, json or table)", s)
	}
}

// Rows renders rows in the given format.
func Rows(w io.Writer, format Format, rows []Row) error {
	switch format {
	case FormatJSON:
		return JSON(w, rows)
	case FormatTable:
		return Table(w, rows)
	default:
		return Names(w, rows)
	}
}

// Names renders just the paths, one per line.
func Names(w io.Writer, rows []Row) error {
	for _, r := range rows {
		if _, err := fmt.Fprintln(w, r.Path); err != nil {
			return err
		}
	}
	return nil
}

// JSON renders rows as an indented array of {path, values} objects.
func JSON(w io.Writer, rows []Row) error {
	type rowOutput struct {
		Path   string            `json:"path"`
		Values map[string]string `json:"values"`
	}
	output := make([]rowOutput, 0, len(rows))
	for _, r := range rows {
		output = append(output, rowOutput{Path: r.Path, Values: r.Values})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}

// Table renders one column per token followed by the path. Column order
// follows the bindings of the first row.
func Table(w io.Writer, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}
	names := make([]string, len(rows[0].Bindings))
	for i, b := range rows[0].Bindings {
		names[i] = b.Name
	}
	widths := ColumnWidths(names, rows)

	header := make([]string, len(names))
	for i, n := range names {
		header[i] = pad(n, widths[i])
	}
	if _, err := fmt.Fprintf(w, "%s  %s\n", strings.Join(header, "  "), "PATH"); err != nil {
		return err
	}
	for _, r := range rows {
		cells := make([]string, len(names))
		for i, n := range names {
			cells[i] = pad(r.Values[n], widths[i])
		}
		if _, err := fmt.Fprintf(w, "%s  %s\n", strings.Join(cells, "  "), r.Path); err != nil {
			return err
		}
	}
	return nil
}

// ColumnWidths calculates the terminal width needed for each token column.
func ColumnWidths(names []string, rows []Row) []int {
	widths := make([]int, len(names))
	for i, n := range names {
		widths[i] = DisplayWidth(n)
		for _, r := range rows {
			if l := DisplayWidth(r.Values[n]); l > widths[i] {
				widths[i] = l
			}
		}
	}
	return widths
}

// DisplayWidth returns the number of terminal cells s occupies. Wide and
// fullwidth East Asian runes take two cells.
func DisplayWidth(s string) int {
	n := 0
	for _, r := range s {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			n += 2
		default:
			n++
		}
	}
	return n
}

func pad(s string, w int) string {
	if d := w - DisplayWidth(s); d > 0 {
		return s + strings.Repeat(" ", d)
	}
	return s
}

// Tokens renders detected tokens, one per line, with their delimited form.
func Tokens(w io.Writer, tokens []token.Token, values filename.Values) error {
	for _, t := range tokens {
		line := fmt.Sprintf("%-20s %s", t.Name(), t.Delimited())
		if vals, ok := values[t.Name()]; ok {
			line += "  [" + strings.Join(vals, ", ") + "]"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
