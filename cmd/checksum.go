package cmd

import (
	"fmt"

	"github.com/hansbonini/savetools/pkg"
	"github.com/spf13/cobra"
)

// checksumCmd groups the checksum verify and fix subcommands.
var checksumCmd = &cobra.Command{
	Use:   "checksum",
	Short: "Verify or repair section checksums",
	Long: `Verify or repair the checksums of the current save block.

Commands:
  verify    Compare stored and computed checksums
  fix       Recompute every checksum and write a new save

ROM hacks sometimes checksum fewer bytes than the retail game. Pass --infer
to derive each section's window from its stored checksum first.

Examples:
  savetools checksum verify game.sav
  savetools checksum fix game.sav fixed.sav --infer`,
}

var checksumVerifyCmd = &cobra.Command{
	Use:   "verify [save_file]",
	Short: "Compare stored and computed checksums",
	Long: `Compare the stored checksum of every section of the current block with
the one computed over its validation window. Mismatches are reported as
warnings and in the STATUS column.

Example:
  savetools checksum verify game.sav`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyVerboseFlag(cmd); err != nil {
			return err
		}
		infer, err := cmd.Flags().GetBool("infer")
		if err != nil {
			return fmt.Errorf("error getting infer flag: %w", err)
		}

		processor := pkg.NewSAVProcessor()
		report, err := processor.VerifyChecksums(args[0], infer)
		if err != nil {
			return fmt.Errorf("failed to verify checksums: %w", err)
		}
		return exportReport(cmd, processor, report)
	},
}

var checksumFixCmd = &cobra.Command{
	Use:   "fix [input_file] [output_file]",
	Short: "Recompute checksums and write a new save",
	Long: `Recompute the checksum of every section of the current block and write
the result. Input and output may be the same file.

Example:
  savetools checksum fix game.sav fixed.sav`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyVerboseFlag(cmd); err != nil {
			return err
		}
		infer, err := cmd.Flags().GetBool("infer")
		if err != nil {
			return fmt.Errorf("error getting infer flag: %w", err)
		}

		processor := pkg.NewSAVProcessor()
		changed, err := processor.FixChecksums(args[0], args[1], infer)
		if err != nil {
			return fmt.Errorf("failed to fix checksums: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d checksum(s) updated, written to %s\n", changed, args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checksumCmd)
	checksumCmd.AddCommand(checksumVerifyCmd)
	checksumCmd.AddCommand(checksumFixCmd)

	addVerboseFlag(checksumVerifyCmd.Flags())
	addFormatFlag(checksumVerifyCmd.Flags())
	addInferFlag(checksumVerifyCmd.Flags())

	addVerboseFlag(checksumFixCmd.Flags())
	addInferFlag(checksumFixCmd.Flags())
}
