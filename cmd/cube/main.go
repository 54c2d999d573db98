// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command cube runs scenes headlessly: it makes, turns, scrambles and
// shows puzzle cubes, drops physics bodies, and converts scene files.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"cogentcore.org/cube/settings"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
)

// DefaultSettingsFile is the settings file used when none is given,
// if it exists.
const DefaultSettingsFile = "~/.config/cube/settings.toml"

// app holds the state shared by the commands.
type app struct {

	// settingsFile is the settings file given on the command line.
	settingsFile string

	// verbose turns on debug logging.
	verbose bool

	// settings are the loaded settings.
	settings *settings.Settings
}

// loadSettings loads the settings file, falling back on the default
// file and then on the default values.
func (ap *app) loadSettings() error {
	if ap.verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	fn := ap.settingsFile
	if fn == "" {
		dfn, err := homedir.Expand(DefaultSettingsFile)
		if err != nil {
			ap.settings = settings.New()
			return nil
		}
		if _, err := os.Stat(dfn); err != nil {
			ap.settings = settings.New()
			return nil
		}
		fn = dfn
	}
	st, err := settings.Open(fn)
	if err != nil {
		return err
	}
	ap.settings = st
	return nil
}

func newRootCmd() *cobra.Command {
	ap := &app{}
	root := &cobra.Command{
		Use:           "cube",
		Short:         "Run 3D puzzle and physics scenes from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ap.loadSettings()
		},
	}
	root.PersistentFlags().StringVarP(&ap.settingsFile, "settings", "s", "", "settings file (.toml or .yaml), default "+DefaultSettingsFile)
	root.PersistentFlags().BoolVarP(&ap.verbose, "verbose", "v", false, "log debug messages")
	root.AddCommand(
		newNewCmd(ap),
		newScrambleCmd(ap),
		newTurnCmd(ap),
		newShowCmd(ap),
		newConvertCmd(ap),
		newDropCmd(ap),
		newRunCmd(ap),
		newSettingsCmd(ap),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "cube:", err)
		os.Exit(1)
	}
}
