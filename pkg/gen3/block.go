package gen3

import (
	"fmt"
	"strings"
)

// Block is one of the two redundant copies of the game data. The game writes
// A and B alternately, so the older one acts as a backup.
type Block struct {
	name     string
	sections [SectionCount]*Section
}

// ParseBlock decodes SectionCount consecutive sections from raw.
func ParseBlock(name string, raw []byte) (*Block, error) {
	if len(raw) < BlockSize {
		return nil, truncated("block "+name, BlockSize, len(raw))
	}

	b := &Block{name: name}
	for i := range b.sections {
		offset := i * SectionSize
		section, err := ParseSection(raw[offset : offset+SectionSize])
		if err != nil {
			return nil, fmt.Errorf("failed to parse section %d of block %s: %w", i, name, err)
		}
		b.sections[i] = section
	}
	return b, nil
}

// Name returns "A" or "B".
func (b *Block) Name() string { return b.name }

// Sections returns the sections in slot order.
func (b *Block) Sections() []*Section {
	out := make([]*Section, SectionCount)
	copy(out, b.sections[:])
	return out
}

// Section returns the section stored in the given slot.
func (b *Block) Section(slot int) (*Section, bool) {
	if slot < 0 || slot >= SectionCount {
		return nil, false
	}
	return b.sections[slot], true
}

// Last returns the section in the final slot. Its save index dates the block.
func (b *Block) Last() *Section {
	return b.sections[SectionCount-1]
}

// SaveIndex returns the save counter of the block.
func (b *Block) SaveIndex() uint32 {
	return b.Last().SaveIndex()
}

// SectionByID returns the first section carrying the given id.
func (b *Block) SectionByID(id uint16) (*Section, bool) {
	for _, section := range b.sections {
		if section.ID() == id {
			return section, true
		}
	}
	return nil, false
}

// SectionByName returns the first section whose display name matches, ignoring case.
func (b *Block) SectionByName(name string) (*Section, bool) {
	for _, section := range b.sections {
		sectionName, err := section.Name()
		if err != nil {
			continue
		}
		if strings.EqualFold(sectionName, name) {
			return section, true
		}
	}
	return nil, false
}

// Bytes reassembles the block.
func (b *Block) Bytes() []byte {
	out := make([]byte, BlockSize)
	for i, section := range b.sections {
		copy(out[i*SectionSize:], section.Bytes())
	}
	return out
}
