/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package load provides a high-level API for loading a templated filename
// together with its value sets.
package load

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"bennypowers.dev/fptokens/config"
	"bennypowers.dev/fptokens/filename"
	"bennypowers.dev/fptokens/fs"
	"bennypowers.dev/fptokens/internal/logger"
)

// ErrInvalidSet indicates a malformed name=values assignment.
var ErrInvalidSet = errors.New("invalid value assignment")

// Options configures how a template is loaded. Set fields take precedence
// over the config file.
type Options struct {
	// Root is the project directory searched for .config/fptokens.*, and the
	// default output root.
	Root string

	// FS is the filesystem to use. Defaults to OS filesystem if nil.
	FS fs.FileSystem

	// ConfigFile is an explicit config path or http(s) URL. When empty the
	// project config is used if present.
	ConfigFile string

	// Fetcher enables loading ConfigFile from a URL. Remote configs fail
	// with ErrRemoteDisabled when it is nil.
	Fetcher Fetcher

	// FetchTimeout bounds a remote fetch. Defaults to DefaultTimeout.
	FetchTimeout time.Duration

	// OutputRoot overrides the configured root of resolved paths.
	OutputRoot string

	// Separator overrides the base separator when non-nil.
	Separator *string

	// Extension overrides the extension.
	Extension string

	// Escape overrides the token delimiter.
	Escape string

	// Values are merged over the configured values, replacing whole lists.
	Values map[string][]string

	// Case overrides the value case transform.
	Case string
}

// Template is a loaded, token-detected filename with its value sets.
type Template struct {
	Config   *config.Config
	Filename *filename.Filename
	Values   filename.Values
}

// Load builds a Template from spec (a slash-separated template path, or
// empty to use the config's template) and opts.
//
// The loading process:
//  1. Loads the explicit config file or URL, or .config/fptokens.* under Root
//  2. Applies the template path and Options values (they take precedence over config)
//  3. Builds the filename and detects its tokens
//  4. Merges value sets and applies the case transform
func Load(ctx context.Context, spec string, opts Options) (*Template, error) {
	filesystem := opts.FS
	if filesystem == nil {
		filesystem = fs.NewOSFileSystem()
	}

	root := opts.Root
	if root == "" {
		root = "."
	}
	if !filepath.IsAbs(root) {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve root path: %w", err)
		}
		root = absRoot
	}

	var cfg *config.Config
	var err error
	switch {
	case IsRemote(opts.ConfigFile):
		timeout := opts.FetchTimeout
		if timeout == 0 {
			timeout = DefaultTimeout
		}
		cfg, err = fetchConfig(ctx, opts.ConfigFile, root, opts.Fetcher, timeout)
	case opts.ConfigFile != "":
		cfg, err = config.LoadFile(filesystem, opts.ConfigFile)
	default:
		cfg, err = config.Load(filesystem, root)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if cfg == nil {
		cfg = config.Default()
		cfg.Root = root
	} else {
		logger.Debug("loaded config, root %s", cfg.Root)
	}

	if spec != "" {
		cfg.Path = spec
		cfg.Folders = nil
		cfg.Base = nil
		cfg.Extension = ""
	}
	if opts.OutputRoot != "" {
		cfg.Root = opts.OutputRoot
	}
	if opts.Separator != nil {
		cfg.Separator = opts.Separator
	}
	if opts.Extension != "" {
		cfg.Extension = opts.Extension
	}
	if opts.Escape != "" {
		cfg.Escape = opts.Escape
	}
	if opts.Case != "" {
		cfg.Case = opts.Case
	}
	if cfg.Values == nil {
		cfg.Values = map[string]config.StringList{}
	}
	for name, vals := range opts.Values {
		cfg.Values[name] = config.StringList(vals)
	}

	f, err := cfg.Filename()
	if err != nil {
		return nil, err
	}

	return &Template{
		Config:   cfg,
		Filename: f,
		Values:   cfg.ValueSets(),
	}, nil
}

// ParseAssignments parses name=v1,v2 assignments. Repeating a name appends
// to its list. Empty items are kept so "name=" yields one empty value.
func ParseAssignments(assignments []string) (map[string][]string, error) {
	values := make(map[string][]string)
	for _, a := range assignments {
		name, list, ok := strings.Cut(a, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("%w: %q (want name=value[,value...])", ErrInvalidSet, a)
		}
		values[name] = append(values[name], strings.Split(list, ",")...)
	}
	return values, nil
}
