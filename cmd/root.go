/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package cmd provides CLI commands for fptokens.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"bennypowers.dev/fptokens/cmd/expand"
	"bennypowers.dev/fptokens/cmd/flags"
	"bennypowers.dev/fptokens/cmd/tokens"
	"bennypowers.dev/fptokens/cmd/validate"
	"bennypowers.dev/fptokens/cmd/version"
	"bennypowers.dev/fptokens/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:   "fptokens",
	Short: "Expand tokenised filename templates",
	Long: `fptokens expands filename templates such as assets/$size$/img_$size$.jpg
into every concrete path for the supplied token values.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetLevel(viper.GetInt(flags.Verbose))
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	flags.Register(rootCmd.PersistentFlags(), viper.GetViper())

	rootCmd.AddCommand(expand.Cmd)
	rootCmd.AddCommand(tokens.Cmd)
	rootCmd.AddCommand(validate.Cmd)
	rootCmd.AddCommand(version.Cmd)
}
