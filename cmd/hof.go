package cmd

import (
	"fmt"

	"github.com/hansbonini/savetools/pkg"
	"github.com/spf13/cobra"
)

// hofCmd lists the Pokémon stored in the Hall of Fame region.
var hofCmd = &cobra.Command{
	Use:   "hof [save_file]",
	Short: "List Hall of Fame entries of a save file",
	Long: `List the used slots of the Hall of Fame region.

Each entry shows its team and slot, nickname, species, level, trainer and
secret ids and personality value. Nicknames are decoded with the Western
character table.

Examples:
  savetools hof game.sav
  savetools hof game.sav --format json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := applyVerboseFlag(cmd); err != nil {
			return err
		}

		processor := pkg.NewSAVProcessor()
		entries, err := processor.HallOfFame(args[0])
		if err != nil {
			return fmt.Errorf("failed to read Hall of Fame: %w", err)
		}
		return exportReport(cmd, processor, entries)
	},
}

func init() {
	rootCmd.AddCommand(hofCmd)

	addVerboseFlag(hofCmd.Flags())
	addFormatFlag(hofCmd.Flags())
}
