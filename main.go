// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

// loadConfigOrDefault never fails: a broken config file is reported and the
// defaults are used instead.
func loadConfigOrDefault() *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	return config
}

func newRootCmd() *cobra.Command {
	asciiLogo := fmt.Sprintf(`
  ___  _   _ _      _
 / _ \| | | | |    | |_ _ __ ___  ___
| |_| | | | | |    | __| '__/ _ \/ _ \
|  _  |\ V /| |___ | |_| | |  __/  __/
|_| |_| \_/ |_____| \__|_|  \___|\___|
Self-balancing binary search tree playground [Version: %s%s%s]
`, Green, version, Reset)

	demo := func(cmd *cobra.Command, args []string) {
		config := loadConfigOrDefault()
		if err := runDemo(cmd.OutOrStdout(), config.Demo.Values, config.Demo.Search); err != nil {
			log.Fatalf("Error running demo: %v", err)
		}
	}

	var cmdDemo = &cobra.Command{
		Use:   "demo",
		Short: "Insert the configured values, print them in order and search one",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Demo builds a tree from demo.values and searches demo.search`),
		Args:  cobra.NoArgs,
		Run:   demo,
	}

	var cmdInsert = &cobra.Command{
		Use:   "insert <values...>",
		Short: "Build a tree from the given integers",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Insert builds a tree from the arguments and prints its in-order traversal`),
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := parseValues(args)
			if err != nil {
				return err
			}
			opts := insertOptions{}
			opts.Shape, _ = cmd.Flags().GetBool("shape")
			opts.Copy, _ = cmd.Flags().GetBool("copy")
			if cmd.Flags().Changed("search") {
				search, err := cmd.Flags().GetInt("search")
				if err != nil {
					return err
				}
				opts.Search = &search
			}
			return runInsert(cmd.OutOrStdout(), values, opts)
		},
	}
	cmdInsert.Flags().Int("search", 0, "value to search for after inserting")
	cmdInsert.Flags().Bool("shape", false, "draw the tree with heights and balance factors")
	cmdInsert.Flags().Bool("copy", false, "copy the tree drawing to the clipboard")

	var cmdStress = &cobra.Command{
		Use:   "stress",
		Short: "Insert random values and verify the tree after every insertion",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Stress checks order, balance, cached heights and the AVL height bound`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfigOrDefault()
			count, seed := config.Stress.Count, config.Stress.Seed
			if cmd.Flags().Changed("count") {
				count, _ = cmd.Flags().GetInt("count")
			}
			if cmd.Flags().Changed("seed") {
				seed, _ = cmd.Flags().GetInt64("seed")
			}
			var progress io.Writer
			if quiet, _ := cmd.Flags().GetBool("quiet"); !quiet {
				progress = cmd.ErrOrStderr()
			}

			result, err := runStress(count, seed, progress)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d insertions verified, height %d (bound %.2f)\n",
				result.Count, result.Height, result.Bound)
			return nil
		},
	}
	cmdStress.Flags().Int("count", 0, "number of random insertions (default from config)")
	cmdStress.Flags().Int64("seed", 0, "random seed (default from config)")
	cmdStress.Flags().Bool("quiet", false, "hide the progress bar")

	var cmdShell = &cobra.Command{
		Use:   "shell",
		Short: "Interactive session over a single tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Shell reads commands such as "insert 1 2 3" or "search 2" from stdin`),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			config := loadConfigOrDefault()
			shell := NewShell(NewIndex(config.Index), cmd.OutOrStdout())
			return shell.Run(cmd.InOrStdin())
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avltree usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration, creating the default file if missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, err := getConfigPath()
			if err != nil {
				return fmt.Errorf("failed to get config path: %w", err)
			}
			return displaySettings(cmd.OutOrStdout(), configPath)
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avltree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avltree",
		Version: version,
		Long:    asciiLogo,
		Args:    cobra.NoArgs,
		// Default to demo when no subcommand is provided
		Run: demo,
	}
	rootCmd.AddCommand(cmdDemo, cmdInsert, cmdStress, cmdShell, cmdUsage, cmdSettings, cmdVersion)
	return rootCmd
}

func main() {
	InitializeColors()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
