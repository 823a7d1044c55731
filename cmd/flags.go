package cmd

import (
	"fmt"

	"github.com/hansbonini/savetools/pkg"
	"github.com/hansbonini/savetools/pkg/common"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addVerboseFlag registers the -v/--verbose flag shared by every subcommand
func addVerboseFlag(flags *pflag.FlagSet) {
	flags.BoolP("verbose", "v", false, "Enable verbose output (show debug messages)")
}

// addFormatFlag registers the -f/--format flag of commands that print reports
func addFormatFlag(flags *pflag.FlagSet) {
	flags.StringP("format", "f", pkg.FormatText, "Output format: text, yaml or json")
}

// addInferFlag registers the --infer flag of commands that compute checksums
func addInferFlag(flags *pflag.FlagSet) {
	flags.Bool("infer", false, "Infer each section's validation window from its stored checksum (for ROM hacks)")
}

// applyVerboseFlag enables verbose mode if requested
func applyVerboseFlag(cmd *cobra.Command) error {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return fmt.Errorf("error getting verbose flag: %w", err)
	}
	common.SetVerboseMode(verbose)
	return nil
}

// exportReport prints report to the command output in the requested format
func exportReport(cmd *cobra.Command, processor *pkg.SAVProcessor, report interface{}) error {
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("error getting format flag: %w", err)
	}
	return processor.Export(cmd.OutOrStdout(), report, format)
}
