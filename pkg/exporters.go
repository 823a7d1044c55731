// Package pkg provides functionality for patching third-generation GBA save files.
// This file contains exporters for writing save reports as text, YAML or JSON.
package pkg

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/goccy/go-json"
	"github.com/hansbonini/savetools/pkg/common"
	"gopkg.in/yaml.v3"
)

// SAVFileExporter implements the SAVExporter interface and renders
// processor reports in one of the supported output formats.
type SAVFileExporter struct{}

// NewSAVExporter creates a new SAV exporter instance.
func NewSAVExporter() *SAVFileExporter {
	return &SAVFileExporter{}
}

// Export writes report to writer in the given format ("text", "yaml" or "json").
// Reports are the types produced by SAVProcessor: *SaveReport, *BlockReport,
// *DiffReport and []HallOfFameEntry.
func (e *SAVFileExporter) Export(writer io.Writer, report interface{}, format string) error {
	var err error
	switch format {
	case FormatYAML:
		encoder := yaml.NewEncoder(writer)
		encoder.SetIndent(2)
		err = encoder.Encode(report)
		if err == nil {
			err = encoder.Close()
		}
	case FormatJSON:
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "  ")
		err = encoder.Encode(report)
	case FormatText, "":
		err = e.exportText(writer, report)
	default:
		return common.FormatErrorString(common.ErrUnsupportedFormat, "%q", format)
	}
	if err != nil {
		return common.FormatError(common.ErrFailedToEncodeReport, err)
	}
	return nil
}

func (e *SAVFileExporter) exportText(writer io.Writer, report interface{}) error {
	switch r := report.(type) {
	case *SaveReport:
		return e.writeSaveText(writer, r)
	case *BlockReport:
		return e.writeBlockText(writer, r)
	case *DiffReport:
		return e.writeDiffText(writer, r)
	case []HallOfFameEntry:
		return e.writeHallOfFameText(writer, r)
	default:
		return fmt.Errorf("no text layout for %T", report)
	}
}

func (e *SAVFileExporter) writeSaveText(writer io.Writer, report *SaveReport) error {
	fmt.Fprintf(writer, "File: %s (%d bytes)\n", report.File, report.Size)
	fmt.Fprintf(writer, "Current block: %s\n", report.CurrentBlock)
	fmt.Fprintf(writer, "Hall of Fame entries: %d\n", report.HallOfFameEntries)
	for i := range report.Blocks {
		fmt.Fprintln(writer)
		if err := e.writeBlockText(writer, &report.Blocks[i]); err != nil {
			return err
		}
	}
	return nil
}

func (e *SAVFileExporter) writeBlockText(writer io.Writer, block *BlockReport) error {
	marker := ""
	if block.Current {
		marker = " (current)"
	}
	fmt.Fprintf(writer, "Block %s%s, save index %d\n", block.Name, marker, block.SaveIndex)

	tw := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "SLOT\tID\tNAME\tCHECKSUM\tCOMPUTED\tWINDOW\tSTATUS")
	for _, section := range block.Sections {
		status := "ok"
		if !section.Valid {
			status = "MISMATCH"
		}
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%d\t%s\n",
			section.Slot, section.ID, section.Name, section.Checksum, section.Computed, section.Window, status)
	}
	return tw.Flush()
}

func (e *SAVFileExporter) writeDiffText(writer io.Writer, report *DiffReport) error {
	if len(report.Sections) == 0 {
		_, err := fmt.Fprintln(writer, "No differences found.")
		return err
	}
	for _, section := range report.Sections {
		fmt.Fprintf(writer, "Changes identified in %s (addresses relative to section start)\n", section.Name)
		for _, change := range section.Changes {
			fmt.Fprintf(writer, "\t%s: 0x%02X => 0x%02X\n", change.Offset, change.Old, change.New)
		}
	}
	return nil
}

func (e *SAVFileExporter) writeHallOfFameText(writer io.Writer, entries []HallOfFameEntry) error {
	if len(entries) == 0 {
		_, err := fmt.Fprintln(writer, "Hall of Fame is empty.")
		return err
	}
	tw := tabwriter.NewWriter(writer, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TEAM\tSLOT\tNICKNAME\tSPECIES\tLEVEL\tTID\tSID\tPERSONALITY")
	for _, entry := range entries {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%d\t%d\t%05d\t%05d\t%s\n",
			entry.Team, entry.Index%6, entry.Nickname, entry.Species, entry.Level,
			entry.TrainerID, entry.SecretID, entry.Personality)
	}
	return tw.Flush()
}
