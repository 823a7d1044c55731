package cmd

import (
	"errors"
	"fmt"

	"github.com/hansbonini/savetools/pkg"
	"github.com/hansbonini/savetools/pkg/common"
	"github.com/spf13/cobra"
)

// sectionCmd dumps one section of the current block as hex.
var sectionCmd = &cobra.Command{
	Use:   "section [save_file] [id_or_name]",
	Short: "Dump a section of the current block",
	Long: `Dump the payload of one section of the current block.

The section is selected by id (decimal or 0x-prefixed) or by name, case
insensitive. The footer (id, checksum, signature, save index) is printed
before the hex dump; offsets are relative to the section start.

Examples:
  savetools section game.sav 4
  savetools section game.sav "rival info"
  savetools section game.sav 0 --window 3968
  savetools section game.sav 1 --infer`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyVerboseFlag(cmd); err != nil {
			return err
		}
		window, err := cmd.Flags().GetInt("window")
		if err != nil {
			return fmt.Errorf("error getting window flag: %w", err)
		}
		infer, err := cmd.Flags().GetBool("infer")
		if err != nil {
			return fmt.Errorf("error getting infer flag: %w", err)
		}
		if window != 0 && infer {
			return errors.New("--window and --infer are mutually exclusive")
		}

		processor := pkg.NewSAVProcessor()
		save, err := processor.Load(args[0])
		if err != nil {
			return fmt.Errorf("failed to read save file: %w", err)
		}
		section, err := processor.Section(save, args[1])
		if err != nil {
			return err
		}

		switch {
		case window != 0:
			if err := section.SetValidationWindow(window); err != nil {
				return common.FormatError(common.ErrInvalidValidationBytes, err)
			}
		case infer:
			section.InferValidationWindow()
		}

		name, err := section.Name()
		if err != nil {
			name = "unknown"
		}
		computed := section.GenerateChecksum()
		status := "ok"
		if !section.ChecksumValid() {
			status = "MISMATCH"
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Section %d: %s (block %s)\n", section.ID(), name, save.CurrentBlock().Name())
		fmt.Fprintf(out, "Checksum: 0x%04X (computed 0x%04X over %d bytes, %s)\n",
			section.Checksum(), computed, section.ValidationWindow(), status)
		fmt.Fprintf(out, "Signature: 0x%08X\n", section.Signature())
		fmt.Fprintf(out, "Save index: %d\n\n", section.SaveIndex())
		fmt.Fprint(out, common.HexDump(section.Data(), 0))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sectionCmd)

	addVerboseFlag(sectionCmd.Flags())
	addInferFlag(sectionCmd.Flags())
	sectionCmd.Flags().Int("window", 0, "Checksum validation window in bytes (multiple of 4, at most 3968)")
}
