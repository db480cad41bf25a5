/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package config provides loading of templated filename definitions.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"bennypowers.dev/fptokens/filename"
)

// Sentinel errors for configuration.
var (
	// ErrConflictingTemplate indicates both path and folders/base were given.
	ErrConflictingTemplate = errors.New("path cannot be combined with folders or base")

	// ErrEmptyTemplate indicates neither path nor base was given.
	ErrEmptyTemplate = errors.New("template has no path or base")

	// ErrInvalidCase indicates an unknown case transform.
	ErrInvalidCase = errors.New("invalid case")
)

// Config describes one templated filename and the values to expand it with.
type Config struct {
	// Root is the directory resolved paths are placed under.
	Root string `yaml:"root" json:"root"`

	// Path is a slash-separated template, e.g. "assets/$size$/img_$size$.jpg".
	// It is an alternative to Folders, Base and Extension.
	Path string `yaml:"path" json:"path"`

	// Folders are folder segments. A single string is accepted as one segment.
	Folders StringList `yaml:"folders" json:"folders"`

	// Base are filename stem segments. A single string is accepted as one segment.
	Base StringList `yaml:"base" json:"base"`

	// Separator joins base segments. Nil means filename.DefaultSeparator.
	Separator *string `yaml:"separator" json:"separator"`

	// Extension is the file extension without the dot.
	Extension string `yaml:"extension" json:"extension"`

	// Escape is the token delimiter.
	Escape string `yaml:"escape" json:"escape"`

	// Values maps token names to candidate values.
	Values map[string]StringList `yaml:"values" json:"values"`

	// Case transforms substituted values: none, lower, upper or title.
	Case string `yaml:"case" json:"case"`
}

// StringList is a list of strings that also accepts a single scalar, and
// coerces numbers and booleans to their text form.
type StringList []string

// UnmarshalYAML handles both scalar and sequence forms.
func (l *StringList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		*l = StringList{node.Value}
		return nil
	case yaml.SequenceNode:
		out := make(StringList, 0, len(node.Content))
		for _, n := range node.Content {
			if n.Kind != yaml.ScalarNode {
				return fmt.Errorf("line %d: expected a scalar value", n.Line)
			}
			out = append(out, n.Value)
		}
		*l = out
		return nil
	default:
		return fmt.Errorf("line %d: expected a string or a list of strings", node.Line)
	}
}

// UnmarshalJSON handles both scalar and array forms.
func (l *StringList) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return err
	}

	switch v := raw.(type) {
	case nil:
		*l = nil
	case []any:
		out := make(StringList, 0, len(v))
		for _, item := range v {
			s, err := scalarString(item)
			if err != nil {
				return err
			}
			out = append(out, s)
		}
		*l = out
	default:
		s, err := scalarString(v)
		if err != nil {
			return err
		}
		*l = StringList{s}
	}
	return nil
}

func scalarString(v any) (string, error) {
	switch s := v.(type) {
	case string:
		return s, nil
	case json.Number:
		return s.String(), nil
	case bool:
		return fmt.Sprint(s), nil
	default:
		return "", fmt.Errorf("expected a scalar value, got %T", v)
	}
}

// Default returns a config with default values.
func Default() *Config {
	return &Config{
		Root:   ".",
		Values: map[string]StringList{},
	}
}

// Validate checks the template shape and the case transform.
func (c *Config) Validate() error {
	if c.Path != "" && (len(c.Folders) > 0 || len(c.Base) > 0) {
		return ErrConflictingTemplate
	}
	if c.Path == "" && len(c.Base) == 0 {
		return ErrEmptyTemplate
	}
	if _, err := ParseCase(c.Case); err != nil {
		return err
	}
	return nil
}

// Filename builds the templated filename described by c and detects its
// tokens.
func (c *Config) Filename() (*filename.Filename, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	opts := []filename.Option{filename.WithEscape(c.Escape)}
	if c.Separator != nil {
		opts = append(opts, filename.WithSeparator(*c.Separator))
	}

	var f *filename.Filename
	if c.Path != "" {
		f = filename.FromPath(c.Path, opts...)
		if !filepath.IsAbs(f.Root) {
			f.Root = filepath.Join(c.Root, f.Root)
		}
	} else {
		opts = append(opts, filename.WithFolders(c.Folders...), filename.WithBase(c.Base...))
		f = filename.New(c.Root, opts...)
	}
	if c.Extension != "" {
		f.Extension = strings.TrimPrefix(c.Extension, ".")
	}

	if err := f.Parse(); err != nil {
		return nil, err
	}
	return f, nil
}

// ValueSets returns the configured values with the case transform applied.
func (c *Config) ValueSets() filename.Values {
	caser, _ := ParseCase(c.Case)
	values := make(filename.Values, len(c.Values))
	for name, list := range c.Values {
		out := make([]string, len(list))
		for i, v := range list {
			out[i] = caser.Apply(v)
		}
		values[name] = out
	}
	return values
}

// UnusedValues returns value keys that name no token in f, sorted.
func (c *Config) UnusedValues(f *filename.Filename) []string {
	used := make(map[string]bool)
	for _, t := range f.Tokens() {
		used[t.Name()] = true
	}
	var unused []string
	for name := range c.Values {
		if !used[name] {
			unused = append(unused, name)
		}
	}
	slices.Sort(unused)
	return unused
}
