package pkg

import (
	"io"

	"github.com/hansbonini/savetools/pkg/gen3"
)

// Output formats accepted by the exporters
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Edit overwrites bytes of one section payload in the current block
type Edit struct {
	Section uint16 // Section id (0-13)
	Offset  int    // Offset relative to the start of the section data
	Values  []byte // Bytes written starting at Offset
}

// EditEntry is the YAML form of an Edit
type EditEntry struct {
	Section int   `yaml:"section"`
	Offset  int   `yaml:"offset"`
	Values  []int `yaml:"values"`
}

// EditList is the YAML document accepted by the patch command
type EditList struct {
	Edits []EditEntry `yaml:"edits"`
}

// PatchOptions controls how edits are committed
type PatchOptions struct {
	UpdateChecksum bool // Recompute the checksum of every edited section
	InferWindow    bool // Infer each edited section's validation window before editing
}

// SectionReport describes one section of a block
type SectionReport struct {
	Slot        int    `yaml:"slot" json:"slot"`
	ID          uint16 `yaml:"id" json:"id"`
	Name        string `yaml:"name" json:"name"`
	Checksum    string `yaml:"checksum" json:"checksum"`
	Computed    string `yaml:"computed" json:"computed"`
	Valid       bool   `yaml:"valid" json:"valid"`
	Window      int    `yaml:"window" json:"window"`
	Signature   string `yaml:"signature" json:"signature"`
	SaveIndex   uint32 `yaml:"save_index" json:"save_index"`
	Fingerprint string `yaml:"fingerprint" json:"fingerprint"`
}

// BlockReport describes one of the two game blocks
type BlockReport struct {
	Name      string          `yaml:"name" json:"name"`
	SaveIndex uint32          `yaml:"save_index" json:"save_index"`
	Current   bool            `yaml:"current" json:"current"`
	Sections  []SectionReport `yaml:"sections" json:"sections"`
}

// SaveReport is the summary produced by the info command
type SaveReport struct {
	File              string        `yaml:"file" json:"file"`
	Size              int           `yaml:"size" json:"size"`
	CurrentBlock      string        `yaml:"current_block" json:"current_block"`
	Blocks            []BlockReport `yaml:"blocks" json:"blocks"`
	HallOfFameEntries int           `yaml:"hall_of_fame_entries" json:"hall_of_fame_entries"`
}

// HallOfFameEntry is one used Hall of Fame slot
type HallOfFameEntry struct {
	Index       int    `yaml:"index" json:"index"`
	Team        int    `yaml:"team" json:"team"`
	TrainerID   uint16 `yaml:"trainer_id" json:"trainer_id"`
	SecretID    uint16 `yaml:"secret_id" json:"secret_id"`
	Personality string `yaml:"personality" json:"personality"`
	Species     uint16 `yaml:"species" json:"species"`
	Level       uint16 `yaml:"level" json:"level"`
	Nickname    string `yaml:"nickname" json:"nickname"`
}

// ByteChangeReport is one changed byte of a section payload
type ByteChangeReport struct {
	Offset string `yaml:"offset" json:"offset"`
	Old    uint8  `yaml:"old" json:"old"`
	New    uint8  `yaml:"new" json:"new"`
}

// SectionDiffReport lists the changed bytes of one section
type SectionDiffReport struct {
	ID      uint16             `yaml:"id" json:"id"`
	Name    string             `yaml:"name" json:"name"`
	Changes []ByteChangeReport `yaml:"changes" json:"changes"`
}

// DiffReport is the result of comparing two saves
type DiffReport struct {
	Old      string              `yaml:"old" json:"old"`
	New      string              `yaml:"new" json:"new"`
	Sections []SectionDiffReport `yaml:"sections" json:"sections"`
}

// SAVLoader interface defines methods for reading and writing save files
type SAVLoader interface {
	Load(path string) (*gen3.SaveImage, error)
	Write(save *gen3.SaveImage, path string) error
}

// SAVExporter interface defines methods for exporting save reports
type SAVExporter interface {
	Export(writer io.Writer, report interface{}, format string) error
}
