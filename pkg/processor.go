// Package pkg provides functionality for patching third-generation GBA save files.
// This file contains the SAV processor, which drives the load, inspect, patch
// and write workflows on top of the gen3 codec.
package pkg

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hansbonini/savetools/pkg/common"
	"github.com/hansbonini/savetools/pkg/gen3"
)

// SAVProcessor handles save file operations (info, patch, checksum, diff)
type SAVProcessor struct {
	*SAVFileExporter
}

// NewSAVProcessor creates a new SAV processor instance
func NewSAVProcessor() *SAVProcessor {
	return &SAVProcessor{
		SAVFileExporter: NewSAVExporter(),
	}
}

// Load reads and parses a save file
func (p *SAVProcessor) Load(path string) (*gen3.SaveImage, error) {
	save, err := gen3.Load(path)
	if err != nil {
		return nil, common.FormatError(common.ErrFailedToLoadSave, err)
	}

	current := save.CurrentBlock()
	common.LogInfo(common.InfoSaveLoaded, path, save.Size(), current.Name(), current.SaveIndex())
	for _, block := range []*gen3.Block{save.A(), save.B()} {
		common.LogDebug(common.DebugBlockInfo, block.Name(), block.SaveIndex())
	}
	if save.A().SaveIndex() == save.B().SaveIndex() {
		common.LogWarn(common.WarnBlocksTied, save.B().SaveIndex())
	}
	return save, nil
}

// Write serializes a save file to path
func (p *SAVProcessor) Write(save *gen3.SaveImage, path string) error {
	common.LogDebug(common.DebugOpaqueRegion, "mystery gift", gen3.MysteryGiftSize)
	common.LogDebug(common.DebugOpaqueRegion, "recorded battle", gen3.RecordedBattleSize)
	if err := save.WriteFile(path); err != nil {
		return common.FormatError(common.ErrFailedToWriteSave, err)
	}
	common.LogInfo(common.InfoSaveWritten, path, save.Size())
	return nil
}

// Info builds a summary of both blocks of a save file
func (p *SAVProcessor) Info(path string) (*SaveReport, error) {
	save, err := p.Load(path)
	if err != nil {
		return nil, err
	}

	current := save.CurrentBlock()
	report := &SaveReport{
		File:         path,
		Size:         save.Size(),
		CurrentBlock: current.Name(),
	}
	for _, block := range []*gen3.Block{save.A(), save.B()} {
		report.Blocks = append(report.Blocks, blockReport(block, block == current))
	}
	for _, record := range save.HallOfFame().Records() {
		if !record.IsEmpty() {
			report.HallOfFameEntries++
		}
	}
	return report, nil
}

// VerifyChecksums reports every section of the current block, logging mismatches
func (p *SAVProcessor) VerifyChecksums(path string, infer bool) (*BlockReport, error) {
	save, err := p.Load(path)
	if err != nil {
		return nil, err
	}

	current := save.CurrentBlock()
	if infer {
		inferWindows(current.Sections())
	}
	report := blockReport(current, true)
	for _, section := range report.Sections {
		if !section.Valid {
			common.LogWarn(common.WarnChecksumMismatch, sectionLabel(section.Name, section.ID), section.Checksum, section.Computed)
		}
	}
	return &report, nil
}

// FixChecksums recomputes the checksum of every section of the current block
// and writes the result. It returns the number of checksums that changed.
func (p *SAVProcessor) FixChecksums(input, output string, infer bool) (int, error) {
	save, err := p.Load(input)
	if err != nil {
		return 0, err
	}

	sections := save.CurrentBlock().Sections()
	if infer {
		inferWindows(sections)
	}
	changed := 0
	for _, section := range sections {
		if updateChecksum(section) {
			changed++
		}
	}

	if err := p.Write(save, output); err != nil {
		return 0, err
	}
	return changed, nil
}

// Patch is the explicit patch entry point: it loads input, applies edits to the
// current block and writes the result to output.
func (p *SAVProcessor) Patch(input string, edits []Edit, output string, opts PatchOptions) error {
	if len(edits) == 0 {
		return errors.New(common.ErrNoEditsGiven)
	}

	save, err := p.Load(input)
	if err != nil {
		return err
	}
	if err := p.ApplyEdits(save, edits, opts); err != nil {
		return err
	}
	return p.Write(save, output)
}

// ApplyEdits writes edits into the current block of save
func (p *SAVProcessor) ApplyEdits(save *gen3.SaveImage, edits []Edit, opts PatchOptions) error {
	block := save.CurrentBlock()

	// Resolve every target first so a bad edit leaves the save untouched.
	touched := make([]*gen3.Section, 0, len(edits))
	seen := make(map[uint16]bool)
	for _, edit := range edits {
		section, ok := block.SectionByID(edit.Section)
		if !ok {
			return common.FormatErrorString(common.ErrSectionNotFound, "id %d", edit.Section)
		}
		if edit.Offset < 0 || len(edit.Values) > gen3.SectionDataSize || edit.Offset > gen3.SectionDataSize-len(edit.Values) {
			return common.FormatError(common.ErrFailedToApplyEdit,
				fmt.Errorf("%w: %d bytes at 0x%X", gen3.ErrOffsetOutOfRange, len(edit.Values), edit.Offset))
		}
		if !seen[edit.Section] {
			seen[edit.Section] = true
			touched = append(touched, section)
		}
	}

	// Inference needs the stored checksum to still match the unedited payload.
	if opts.InferWindow {
		inferWindows(touched)
	}

	for _, edit := range edits {
		section, _ := block.SectionByID(edit.Section)
		if err := section.WriteAt(edit.Offset, edit.Values); err != nil {
			return common.FormatError(common.ErrFailedToApplyEdit, err)
		}
		common.LogInfo(common.InfoEditApplied, len(edit.Values), sectionName(section), edit.Offset)
	}

	if !opts.UpdateChecksum {
		common.LogWarn(common.WarnChecksumNotFixed)
		return nil
	}
	for _, section := range touched {
		updateChecksum(section)
	}
	return nil
}

// Section finds a section of the current block by id ("4") or name ("rival info")
func (p *SAVProcessor) Section(save *gen3.SaveImage, selector string) (*gen3.Section, error) {
	block := save.CurrentBlock()

	if number, err := common.ParseNumber(selector); err == nil {
		id, err := common.SafeIntToUint16(number)
		if err != nil {
			return nil, common.FormatError(common.ErrFailedToParseSelector, err)
		}
		section, ok := block.SectionByID(id)
		if !ok {
			return nil, common.FormatErrorString(common.ErrSectionNotFound, "id %d", id)
		}
		return section, nil
	}

	section, ok := block.SectionByName(strings.TrimSpace(selector))
	if !ok {
		return nil, common.FormatErrorString(common.ErrSectionNotFound, "%q", selector)
	}
	return section, nil
}

// HallOfFame lists the used Hall of Fame slots of a save file
func (p *SAVProcessor) HallOfFame(path string) ([]HallOfFameEntry, error) {
	save, err := p.Load(path)
	if err != nil {
		return nil, err
	}

	var entries []HallOfFameEntry
	for i, record := range save.HallOfFame().Records() {
		if record.IsEmpty() {
			continue
		}
		entries = append(entries, HallOfFameEntry{
			Index:       i,
			Team:        i / 6,
			TrainerID:   record.TrainerID(),
			SecretID:    record.SecretID(),
			Personality: fmt.Sprintf("0x%08X", record.Personality()),
			Species:     record.Species(),
			Level:       record.Level(),
			Nickname:    record.Nickname(gen3.WesternCharset),
		})
	}
	return entries, nil
}

// DiffFiles compares the current blocks of two save files
func (p *SAVProcessor) DiffFiles(oldPath, newPath string) (*DiffReport, error) {
	before, err := p.Load(oldPath)
	if err != nil {
		return nil, err
	}
	after, err := p.Load(newPath)
	if err != nil {
		return nil, err
	}

	report := &DiffReport{Old: oldPath, New: newPath}
	for _, diff := range gen3.Diff(before, after) {
		sectionDiff := SectionDiffReport{ID: diff.ID, Name: diff.Name}
		for _, change := range diff.Changes {
			sectionDiff.Changes = append(sectionDiff.Changes, ByteChangeReport{
				Offset: fmt.Sprintf("0x%X", change.Offset),
				Old:    change.Old,
				New:    change.New,
			})
		}
		report.Sections = append(report.Sections, sectionDiff)
	}

	if len(report.Sections) == 0 {
		common.LogInfo(common.InfoNoDifferencesFound)
	} else {
		common.LogInfo(common.InfoDifferencesFound, len(report.Sections))
	}
	return report, nil
}

func blockReport(block *gen3.Block, current bool) BlockReport {
	report := BlockReport{
		Name:      block.Name(),
		SaveIndex: block.SaveIndex(),
		Current:   current,
	}
	for slot, section := range block.Sections() {
		name, err := section.Name()
		if err != nil {
			common.LogWarn(common.WarnUnknownSectionID, slot, section.ID())
			name = ""
		}
		computed := section.GenerateChecksum()
		common.LogDebug(common.DebugSectionInfo, slot, section.ID(), section.Checksum(), computed, section.ValidationWindow())
		report.Sections = append(report.Sections, SectionReport{
			Slot:        slot,
			ID:          section.ID(),
			Name:        name,
			Checksum:    fmt.Sprintf("0x%04X", section.Checksum()),
			Computed:    fmt.Sprintf("0x%04X", computed),
			Valid:       computed == section.Checksum(),
			Window:      section.ValidationWindow(),
			Signature:   fmt.Sprintf("0x%08X", section.Signature()),
			SaveIndex:   section.SaveIndex(),
			Fingerprint: fmt.Sprintf("%016x", section.Fingerprint()),
		})
	}
	return report
}

func inferWindows(sections []*gen3.Section) {
	for _, section := range sections {
		if section.InferValidationWindow() {
			common.LogInfo(common.InfoWindowInferred, sectionName(section), section.ValidationWindow())
		} else {
			common.LogDebug(common.DebugWindowUnchanged, sectionName(section), section.ValidationWindow())
		}
	}
}

func updateChecksum(section *gen3.Section) bool {
	old := section.Checksum()
	section.UpdateChecksum()
	if section.Checksum() == old {
		return false
	}
	common.LogInfo(common.InfoChecksumUpdated, sectionName(section), old, section.Checksum())
	return true
}

func sectionName(section *gen3.Section) string {
	name, err := section.Name()
	if err != nil {
		name = ""
	}
	return sectionLabel(name, section.ID())
}

func sectionLabel(name string, id uint16) string {
	if name == "" {
		return fmt.Sprintf("section %d", id)
	}
	return fmt.Sprintf("%s (section %d)", name, id)
}
