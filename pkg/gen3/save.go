package gen3

import (
	"fmt"
	"os"
)

// SaveImage is a whole save file: two game blocks, the Hall of Fame and the
// Mystery Gift and Recorded Battle regions, which are kept as opaque bytes.
type SaveImage struct {
	a              *Block
	b              *Block
	hallOfFame     *HallOfFame
	mysteryGift    []byte
	recordedBattle []byte
	trailer        []byte // bytes past the last region, e.g. emulator RTC data
}

// Parse decodes a save file held in memory. The input is copied.
func Parse(data []byte) (*SaveImage, error) {
	for _, region := range Regions {
		if len(data) < region.End() {
			return nil, truncated(region.Name, region.End(), len(data))
		}
	}

	a, err := ParseBlock("A", data[BlockAOffset:BlockAOffset+BlockSize])
	if err != nil {
		return nil, err
	}
	b, err := ParseBlock("B", data[BlockBOffset:BlockBOffset+BlockSize])
	if err != nil {
		return nil, err
	}
	hof, err := ParseHallOfFame(data[HallOfFameOffset : HallOfFameOffset+HallOfFameSize])
	if err != nil {
		return nil, err
	}

	return &SaveImage{
		a:              a,
		b:              b,
		hallOfFame:     hof,
		mysteryGift:    cloneBytes(data[MysteryGiftOffset : MysteryGiftOffset+MysteryGiftSize]),
		recordedBattle: cloneBytes(data[RecordedBattleOffset : RecordedBattleOffset+RecordedBattleSize]),
		trailer:        cloneBytes(data[MinimumSaveSize:]),
	}, nil
}

// Load reads and parses the save file at path.
func Load(path string) (*SaveImage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read save file: %w", err)
	}
	save, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return save, nil
}

// A returns block A.
func (s *SaveImage) A() *Block { return s.a }

// B returns block B.
func (s *SaveImage) B() *Block { return s.b }

// HallOfFame returns the Hall of Fame table.
func (s *SaveImage) HallOfFame() *HallOfFame { return s.hallOfFame }

// CurrentBlock returns the most recently written block: the one whose last
// section has the strictly greater save index. Ties go to block B.
func (s *SaveImage) CurrentBlock() *Block {
	if s.a.SaveIndex() > s.b.SaveIndex() {
		return s.a
	}
	return s.b
}

// BackupBlock returns the block CurrentBlock did not choose.
func (s *SaveImage) BackupBlock() *Block {
	if s.CurrentBlock() == s.a {
		return s.b
	}
	return s.a
}

// MysteryGift returns a copy of the Mystery Gift region.
func (s *SaveImage) MysteryGift() []byte { return cloneBytes(s.mysteryGift) }

// SetMysteryGift replaces the Mystery Gift region.
func (s *SaveImage) SetMysteryGift(data []byte) error {
	if len(data) != MysteryGiftSize {
		return fmt.Errorf("%w: mystery gift must be %d bytes, got %d", ErrInvalidDataSize, MysteryGiftSize, len(data))
	}
	s.mysteryGift = cloneBytes(data)
	return nil
}

// RecordedBattle returns a copy of the Recorded Battle region.
func (s *SaveImage) RecordedBattle() []byte { return cloneBytes(s.recordedBattle) }

// SetRecordedBattle replaces the Recorded Battle region.
func (s *SaveImage) SetRecordedBattle(data []byte) error {
	if len(data) != RecordedBattleSize {
		return fmt.Errorf("%w: recorded battle must be %d bytes, got %d", ErrInvalidDataSize, RecordedBattleSize, len(data))
	}
	s.recordedBattle = cloneBytes(data)
	return nil
}

// Size returns the length of the serialized file.
func (s *SaveImage) Size() int {
	return MinimumSaveSize + len(s.trailer)
}

// Bytes serializes the save file. Checksums are written as stored.
func (s *SaveImage) Bytes() []byte {
	out := make([]byte, s.Size())
	copy(out[BlockAOffset:], s.a.Bytes())
	copy(out[BlockBOffset:], s.b.Bytes())
	copy(out[HallOfFameOffset:], s.hallOfFame.Bytes())
	copy(out[MysteryGiftOffset:], s.mysteryGift)
	copy(out[RecordedBattleOffset:], s.recordedBattle)
	copy(out[MinimumSaveSize:], s.trailer)
	return out
}

// WriteFile serializes the save to path.
func (s *SaveImage) WriteFile(path string) error {
	if err := os.WriteFile(path, s.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}
	return nil
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
