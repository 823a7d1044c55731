// Package cmd provides command-line interface functionality for SaveTools.
// SaveTools is a collection of utilities for inspecting and patching save files
// of third-generation Pokémon games for Game Boy Advance and their ROM hacks.
package cmd

import (
	"os"

	"github.com/hansbonini/savetools/pkg/common"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands.
// It provides the main entry point for the SaveTools application.
var rootCmd = &cobra.Command{
	Use:   "savetools",
	Short: "Tools for inspecting and patching GBA Pokémon save files",
	Long: `SaveTools - A collection of utilities for inspecting and patching save
files of third-generation Pokémon games for Game Boy Advance and their ROM hacks.

Currently supports:
  - Save summaries (blocks, sections, checksums)
  - Section dumps and Hall of Fame listings
  - Byte patches with checksum recalculation
  - Checksum verification, repair and window inference for ROM hacks
  - Byte-level diffs between two saves

Examples:
  savetools info game.sav
  savetools section game.sav "rival info"
  savetools hof game.sav
  savetools patch game.sav patched.sav -e 3:0x100=0xde,0xad --update-checksum
  savetools checksum verify game.sav
  savetools checksum fix game.sav fixed.sav
  savetools diff before.sav after.sav

Use 'savetools [command] --help' for more information about a command.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main() and serves as the entry point for command execution.
func Execute() {
	if err := run(os.Args[1:]); err != nil {
		os.Exit(1)
	}
}

// run executes the root command with args and logs the error it fails with
func run(args []string) error {
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	if err != nil {
		common.LogError(common.ErrCommandFailed, err)
	}
	return err
}
