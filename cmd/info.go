// Package cmd provides command-line interface for save file inspection.
// This file contains the info command, which summarizes a save.
package cmd

import (
	"fmt"

	"github.com/hansbonini/savetools/pkg"
	"github.com/spf13/cobra"
)

// infoCmd prints a summary of both save blocks: which one is current,
// and the id, checksum and validation window of every section.
var infoCmd = &cobra.Command{
	Use:   "info [save_file]",
	Short: "Show blocks, sections and checksums of a save file",
	Long: `Show a summary of a third-generation GBA save file.

Output:
  - File size and the current (most recently written) block
  - Number of used Hall of Fame slots
  - For each block: save index and every section with its stored and
    computed checksum, validation window and status

Examples:
  savetools info game.sav
  savetools info game.sav --format yaml`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyVerboseFlag(cmd); err != nil {
			return err
		}

		processor := pkg.NewSAVProcessor()
		report, err := processor.Info(args[0])
		if err != nil {
			return fmt.Errorf("failed to read save file: %w", err)
		}
		return exportReport(cmd, processor, report)
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)

	addVerboseFlag(infoCmd.Flags())
	addFormatFlag(infoCmd.Flags())
}
