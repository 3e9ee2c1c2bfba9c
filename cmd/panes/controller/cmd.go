// Copyright (c) 2022 Stephan Lukits. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package controller

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// runner runs an assembled app; replaced in tests.
type runner func(*App) error

func runApp(a *App) error { return a.Run() }

// NewRootCmd returns the panes command with its check subcommand.
func NewRootCmd() *cobra.Command { return newRootCmd(runApp) }

func newRootCmd(run runner) *cobra.Command {
	var (
		v    = NewViper()
		cfg  *Config
		file string
	)
	root := &cobra.Command{
		Use:   "panes",
		Short: "Navigate a menu tree of panes in the terminal",
		Long: "panes shows a menu tree as nested grid panes in the " +
			"terminal.\nClick a menu's button to navigate, " +
			"'<' to go back and press q to quit.",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var err error
			cfg, err = LoadConfig(v, file)
			return err
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := NewApp(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer a.Close()
			return run(a)
		},
	}
	ff := root.PersistentFlags()
	ff.StringVar(&file, "config", "", "yaml configuration file")
	ff.String("menu", "", "toml menu definition (default: built-in menu)")
	ff.String("log-level", "", "log level: trace, debug, info, warn, error")
	ff.String("log-format", "", "log format: console or json")
	ff.Bool("watch", false, "reload the menu file whenever it is written")
	bind(v, root, "menu", "menu")
	bind(v, root, "watch", "watch")
	bind(v, root, "log.level", "log-level")
	bind(v, root, "log.format", "log-format")

	root.AddCommand(&cobra.Command{
		Use:   "check <menu.toml>",
		Short: "Validate a menu definition and print its tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return Check(cfg, args[0], cmd.OutOrStdout())
		},
	})
	return root
}

func bind(v *viper.Viper, cmd *cobra.Command, key, flag string) {
	if err := v.BindPFlag(key, cmd.PersistentFlags().Lookup(flag)); err != nil {
		panic(err)
	}
}
