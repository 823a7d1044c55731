package gen3

import "bytes"

// ByteChange is one differing payload byte. Offset is relative to the section data.
type ByteChange struct {
	Offset int
	Old    byte
	New    byte
}

// SectionDiff lists the changed bytes of one section id.
type SectionDiff struct {
	ID      uint16
	Name    string
	Changes []ByteChange
}

// Diff compares the payloads of the current blocks of two saves, section id by
// section id. Only sections with at least one changed byte are returned.
func Diff(before, after *SaveImage) []SectionDiff {
	return DiffBlocks(before.CurrentBlock(), after.CurrentBlock())
}

// DiffBlocks compares the payloads of two blocks by section id.
func DiffBlocks(before, after *Block) []SectionDiff {
	var diffs []SectionDiff
	for id := uint16(0); id < SectionCount; id++ {
		oldSection, ok := before.SectionByID(id)
		if !ok {
			continue
		}
		newSection, ok := after.SectionByID(id)
		if !ok {
			continue
		}
		if bytes.Equal(oldSection.data[:], newSection.data[:]) {
			continue
		}

		changes := diffPayload(oldSection.data[:], newSection.data[:])
		if len(changes) == 0 {
			continue
		}
		name, _ := SectionName(id)
		diffs = append(diffs, SectionDiff{ID: id, Name: name, Changes: changes})
	}
	return diffs
}

func diffPayload(before, after []byte) []ByteChange {
	var changes []ByteChange
	for i := range before {
		if before[i] != after[i] {
			changes = append(changes, ByteChange{Offset: i, Old: before[i], New: after[i]})
		}
	}
	return changes
}
