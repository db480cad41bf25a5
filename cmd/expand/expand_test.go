/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package expand

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bennypowers.dev/fptokens/cmd/render"
	"bennypowers.dev/fptokens/internal/mapfs"
	"bennypowers.dev/fptokens/load"
	"bennypowers.dev/fptokens/token"
)

func loadTemplate(t *testing.T, spec string, values map[string][]string) *load.Template {
	t.Helper()
	tmpl, err := load.Load(context.Background(), spec, load.Options{
		Root:       "/project",
		FS:         mapfs.New(),
		OutputRoot: "/out",
		Values:     values,
	})
	require.NoError(t, err)
	return tmpl
}

func lines(s string) []string {
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}

func TestExpand_All(t *testing.T) {
	tmpl := loadTemplate(t, "assets/$sizes$/$colors$/untitled_$sizes$_$colors$.jpg", map[string][]string{
		"sizes":  {"1200px", "2500px", "4096px"},
		"colors": {"black", "white", "silver"},
	})

	var buf bytes.Buffer
	require.NoError(t, Expand(tmpl, Options{Format: render.FormatNames}, mapfs.New(), &buf))

	got := lines(buf.String())
	require.Len(t, got, 9)
	assert.Equal(t, filepath.Join("/out", "assets", "1200px", "black", "untitled_1200px_black.jpg"), got[0])
	assert.Equal(t, filepath.Join("/out", "assets", "4096px", "silver", "untitled_4096px_silver.jpg"), got[8])
}

func TestExpand_MatchAndLimit(t *testing.T) {
	tmpl := loadTemplate(t, "assets/$sizes$/$colors$/untitled_$sizes$_$colors$.jpg", map[string][]string{
		"sizes":  {"1200px", "2500px", "4096px"},
		"colors": {"black", "white", "silver"},
	})

	var buf bytes.Buffer
	require.NoError(t, Expand(tmpl, Options{Match: "assets/*/white/**", Format: render.FormatNames}, mapfs.New(), &buf))
	got := lines(buf.String())
	require.Len(t, got, 3)
	for _, p := range got {
		assert.Contains(t, p, "white")
	}

	buf.Reset()
	require.NoError(t, Expand(tmpl, Options{Limit: 4, Format: render.FormatNames}, mapfs.New(), &buf))
	assert.Len(t, lines(buf.String()), 4)

	buf.Reset()
	require.NoError(t, Expand(tmpl, Options{Match: "**/*_silver.jpg", Limit: 2, Format: render.FormatNames}, mapfs.New(), &buf))
	assert.Len(t, lines(buf.String()), 2)
}

func TestExpand_InvalidMatch(t *testing.T) {
	tmpl := loadTemplate(t, "$a$.jpg", map[string][]string{"a": {"x"}})
	err := Expand(tmpl, Options{Match: "[", Format: render.FormatNames}, mapfs.New(), &bytes.Buffer{})
	assert.Error(t, err)
}

func TestExpand_Make(t *testing.T) {
	tmpl := loadTemplate(t, "assets/$sizes$/img.jpg", map[string][]string{"sizes": {"s", "m"}})
	mfs := mapfs.New()

	require.NoError(t, Expand(tmpl, Options{Make: true, Format: render.FormatNames}, mfs, &bytes.Buffer{}))
	assert.Equal(t, []string{"/out/assets/m", "/out/assets/s"}, mfs.Dirs())
}

func TestExpand_MissingValues(t *testing.T) {
	tmpl := loadTemplate(t, "assets/$sizes$/$colors$.jpg", map[string][]string{"sizes": {"s"}})
	mfs := mapfs.New()

	var buf bytes.Buffer
	err := Expand(tmpl, Options{Make: true, Format: render.FormatNames}, mfs, &buf)
	assert.ErrorIs(t, err, token.ErrMissingValues)
	assert.Zero(t, buf.Len(), "nothing is rendered on precondition failure")
	assert.Zero(t, mfs.MkdirCalls())
}

func TestExpand_NoTokens(t *testing.T) {
	tmpl := loadTemplate(t, "assets/plain.jpg", nil)
	err := Expand(tmpl, Options{Format: render.FormatNames}, mapfs.New(), &bytes.Buffer{})
	assert.ErrorIs(t, err, token.ErrNoTokens)
}

func TestCmd_Flags(t *testing.T) {
	for _, name := range []string{"match", "limit", "format", "make"} {
		assert.NotNil(t, Cmd.Flags().Lookup(name), name)
	}
}
