// Package gen3 provides the structures of third-generation Game Boy Advance save files.
// This file contains the fixed layout of the save: region offsets, section field
// offsets and the per-section schema tables.
package gen3

// File regions (absolute offsets from the start of the save)
const (
	BlockAOffset         = 0x0
	BlockBOffset         = 0xE000
	BlockSize            = 57344
	HallOfFameOffset     = 0x1C000
	HallOfFameSize       = 8192
	MysteryGiftOffset    = 0x1E000
	MysteryGiftSize      = 4096
	RecordedBattleOffset = 0x1F000
	RecordedBattleSize   = 4096

	// MinimumSaveSize is the end of the last known region.
	MinimumSaveSize = RecordedBattleOffset + RecordedBattleSize
)

// Section layout (offsets relative to the start of a section)
const (
	SectionSize            = 4096
	SectionDataOffset      = 0x0
	SectionDataSize        = 3968
	SectionIDOffset        = 0xFF4
	SectionIDSize          = 2
	SectionChecksumOffset  = 0xFF6
	SectionChecksumSize    = 2
	SectionSignatureOffset = 0xFF8
	SectionSignatureSize   = 4
	SectionSaveIndexOffset = 0xFFC
	SectionSaveIndexSize   = 4

	// SectionCount is the number of sections in a block.
	SectionCount = 14
)

// Hall of Fame record layout (offsets relative to the start of a record)
const (
	HallOfFameRecords           = 300
	HallOfFameRecordSize        = 20
	HallOfFameTrainerIDOffset   = 0x0
	HallOfFamePersonalityOffset = 0x4
	HallOfFamePackedOffset      = 0x8
	HallOfFameNicknameOffset    = 0xA
	HallOfFameNicknameSize      = 10

	speciesMask = 0x1FF
	levelShift  = 9
	levelMask   = 0x7F
)

// Region describes a named byte range of the save file.
type Region struct {
	Name   string
	Offset int
	Size   int
}

// End returns the offset just past the region.
func (r Region) End() int {
	return r.Offset + r.Size
}

// Regions lists every top-level region in file order.
var Regions = [...]Region{
	{"block A", BlockAOffset, BlockSize},
	{"block B", BlockBOffset, BlockSize},
	{"hall of fame", HallOfFameOffset, HallOfFameSize},
	{"mystery gift", MysteryGiftOffset, MysteryGiftSize},
	{"recorded battle", RecordedBattleOffset, RecordedBattleSize},
}

var sectionNames = [SectionCount]string{
	"Trainer info",
	"Team / items",
	"Game state",
	"Misc data",
	"Rival info",
	"PC Buffer A",
	"PC Buffer B",
	"PC Buffer C",
	"PC Buffer D",
	"PC Buffer E",
	"PC Buffer F",
	"PC Buffer G",
	"PC Buffer H",
	"PC Buffer I",
}

// Number of payload bytes covered by the checksum of each section id.
var sectionValidationWindows = [SectionCount]int{
	3884,
	3968,
	3968,
	3968,
	3848,
	3968,
	3968,
	3968,
	3968,
	3968,
	3968,
	3968,
	3968,
	2000,
}

// SectionName returns the display name of a section id.
func SectionName(id uint16) (string, error) {
	if int(id) >= SectionCount {
		return "", unknownSectionID(id)
	}
	return sectionNames[id], nil
}

// DefaultValidationWindow returns the number of payload bytes the game checksums
// for the given section id.
func DefaultValidationWindow(id uint16) (int, error) {
	if int(id) >= SectionCount {
		return 0, unknownSectionID(id)
	}
	return sectionValidationWindows[id], nil
}
