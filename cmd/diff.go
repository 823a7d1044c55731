package cmd

import (
	"fmt"

	"github.com/hansbonini/savetools/pkg"
	"github.com/spf13/cobra"
)

// diffCmd compares the current blocks of two save files byte by byte.
var diffCmd = &cobra.Command{
	Use:   "diff [old_save] [new_save]",
	Short: "Show byte differences between two saves",
	Long: `Compare the current blocks of two save files section by section and list
every changed byte, with offsets relative to the section start.

Examples:
  savetools diff before.sav after.sav
  savetools diff before.sav after.sav --format yaml`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyVerboseFlag(cmd); err != nil {
			return err
		}

		processor := pkg.NewSAVProcessor()
		report, err := processor.DiffFiles(args[0], args[1])
		if err != nil {
			return fmt.Errorf("failed to compare save files: %w", err)
		}
		return exportReport(cmd, processor, report)
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)

	addVerboseFlag(diffCmd.Flags())
	addFormatFlag(diffCmd.Flags())
}
