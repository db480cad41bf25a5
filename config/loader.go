/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

package config

import (
	"encoding/json"
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	fptfs "bennypowers.dev/fptokens/fs"
)

// ConfigFileName is the base name of the config file without extension.
const ConfigFileName = "fptokens"

// ConfigDir is the directory where config files are stored.
const ConfigDir = ".config"

// configExtensions are the supported config file extensions in priority order.
var configExtensions = []string{".yaml", ".yml", ".json", ".toml"}

// Load searches for .config/fptokens.{yaml,yml,json,toml} under rootDir.
// Returns nil if no config found (not an error).
func Load(filesystem fptfs.FileSystem, rootDir string) (*Config, error) {
	for _, ext := range configExtensions {
		configPath := filepath.Join(rootDir, ConfigDir, ConfigFileName+ext)
		if !filesystem.Exists(configPath) {
			continue
		}
		return LoadFile(filesystem, configPath)
	}
	return nil, nil
}

// LoadFile reads the config at path. The format follows the extension:
// .json is JSON with comments allowed, .toml is TOML, anything else is YAML.
func LoadFile(filesystem fptfs.FileSystem, path string) (*Config, error) {
	data, err := filesystem.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Relative roots are relative to the project, i.e. the parent of .config,
	// or to the file's own directory when it lives elsewhere.
	base := filepath.Dir(path)
	if filepath.Base(base) == ConfigDir {
		base = filepath.Dir(base)
	}
	return Parse(data, path, base)
}

// Parse decodes a config named name (only its extension matters) and
// resolves a relative root against baseDir.
func Parse(data []byte, name, baseDir string) (*Config, error) {
	cfg := Default()
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		if err := json.Unmarshal(jsonc.ToJSON(data), cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
	case ".toml":
		// Decoded generically and re-read as JSON so StringList keeps its
		// scalar-or-list handling.
		var raw map[string]any
		if err := toml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		converted, err := json.Marshal(raw)
		if err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
		if err := json.Unmarshal(converted, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", name, err)
		}
	}

	if cfg.Root == "" {
		cfg.Root = "."
	}
	if !filepath.IsAbs(cfg.Root) {
		cfg.Root = filepath.Join(baseDir, cfg.Root)
	}
	return cfg, nil
}
