/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package flags binds the persistent template flags shared by all commands.
package flags

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"bennypowers.dev/fptokens/load"
)

// EnvPrefix is the prefix for environment overrides, e.g. FPTOKENS_ROOT.
const EnvPrefix = "FPTOKENS"

// Names of the persistent flags.
const (
	Config    = "config"
	Root      = "root"
	Separator = "separator"
	Extension = "extension"
	Escape    = "escape"
	Set       = "set"
	Case      = "case"
	Verbose   = "verbose"
)

// Register adds the persistent flags to fs and binds them in v.
func Register(fs *pflag.FlagSet, v *viper.Viper) {
	fs.StringP(Config, "c", "", "Template definition file or URL (default: .config/fptokens.{yaml,yml,json,toml})")
	fs.String(Root, "", "Output root for resolved paths")
	fs.String(Separator, "_", "Separator joining base segments")
	fs.String(Extension, "", "File extension, without the dot")
	fs.String(Escape, "", "Token delimiter character (default \"$\")")
	fs.StringArray(Set, nil, "Token values as name=v1,v2 (repeatable)")
	fs.String(Case, "", "Case transform for values: none, lower, upper, title")
	fs.CountP(Verbose, "v", "Increase log verbosity (-v info, -vv debug)")

	for _, name := range []string{Config, Root, Separator, Extension, Escape, Case, Verbose} {
		_ = v.BindPFlag(name, fs.Lookup(name))
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
}

// Options builds load.Options from the bound flags. The working directory
// is the project root.
func Options(cmd *cobra.Command, v *viper.Viper) (load.Options, error) {
	sets, err := cmd.Flags().GetStringArray(Set)
	if err != nil {
		return load.Options{}, err
	}
	values, err := load.ParseAssignments(sets)
	if err != nil {
		return load.Options{}, err
	}

	opts := load.Options{
		Root:       ".",
		ConfigFile: v.GetString(Config),
		OutputRoot: v.GetString(Root),
		Extension:  v.GetString(Extension),
		Escape:     v.GetString(Escape),
		Case:       v.GetString(Case),
		Values:     values,
		Fetcher:    load.NewHTTPFetcher(load.DefaultMaxSize),
	}
	if v.IsSet(Separator) {
		sep := v.GetString(Separator)
		opts.Separator = &sep
	}
	return opts, nil
}

// Spec returns the template path argument, or "" to use the config.
func Spec(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return ""
}
