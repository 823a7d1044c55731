// Package gen3 provides the structures of third-generation Game Boy Advance save files.
// This file contains the Section record and its checksum algorithm.
package gen3

import (
	"encoding/binary"
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Section is one 4096-byte record of a block. It owns a private copy of its bytes,
// so mutating one section never affects another.
type Section struct {
	raw       [SectionSize]byte // original bytes, used for the unmodeled gap before the footer
	data      [SectionDataSize]byte
	id        uint16
	checksum  uint16
	signature uint32
	saveIndex uint32
	window    int
}

// ParseSection decodes a section from the first SectionSize bytes of raw.
// Stored checksums are not verified.
func ParseSection(raw []byte) (*Section, error) {
	if len(raw) < SectionSize {
		return nil, truncated("section", SectionSize, len(raw))
	}

	s := &Section{}
	copy(s.raw[:], raw[:SectionSize])
	copy(s.data[:], raw[SectionDataOffset:SectionDataOffset+SectionDataSize])
	s.id = binary.LittleEndian.Uint16(raw[SectionIDOffset:])
	s.checksum = binary.LittleEndian.Uint16(raw[SectionChecksumOffset:])
	s.signature = binary.LittleEndian.Uint32(raw[SectionSignatureOffset:])
	s.saveIndex = binary.LittleEndian.Uint32(raw[SectionSaveIndexOffset:])
	s.window = s.defaultWindow()

	return s, nil
}

// defaultWindow falls back to the whole payload when the id has no schema entry.
func (s *Section) defaultWindow() int {
	window, err := DefaultValidationWindow(s.id)
	if err != nil {
		return SectionDataSize
	}
	return window
}

// ID returns the section id.
func (s *Section) ID() uint16 { return s.id }

// Name returns the display name of the section, or ErrUnknownSectionID.
func (s *Section) Name() (string, error) { return SectionName(s.id) }

// Checksum returns the stored checksum. It is not refreshed when the data changes.
func (s *Section) Checksum() uint16 { return s.checksum }

// Signature returns the section signature.
func (s *Section) Signature() uint32 { return s.signature }

// SaveIndex returns the save counter of the section.
func (s *Section) SaveIndex() uint32 { return s.saveIndex }

// ValidationWindow returns the number of payload bytes covered by the checksum.
func (s *Section) ValidationWindow() int { return s.window }

// Data returns a copy of the payload.
func (s *Section) Data() []byte {
	out := make([]byte, SectionDataSize)
	copy(out, s.data[:])
	return out
}

// SetData replaces the whole payload. The checksum is left untouched.
func (s *Section) SetData(data []byte) error {
	if len(data) != SectionDataSize {
		return fmt.Errorf("%w: section payload must be %d bytes, got %d", ErrInvalidDataSize, SectionDataSize, len(data))
	}
	copy(s.data[:], data)
	return nil
}

// WriteAt overwrites payload bytes starting at offset. The checksum is left untouched.
func (s *Section) WriteAt(offset int, values []byte) error {
	if offset < 0 || len(values) > SectionDataSize || offset > SectionDataSize-len(values) {
		return fmt.Errorf("%w: %d bytes at 0x%X exceed section payload of %d bytes",
			ErrOffsetOutOfRange, len(values), offset, SectionDataSize)
	}
	copy(s.data[offset:], values)
	return nil
}

// SetValidationWindow overrides the number of payload bytes covered by the checksum.
func (s *Section) SetValidationWindow(window int) error {
	if window < 4 || window > SectionDataSize || window%4 != 0 {
		return fmt.Errorf("%w: %d", ErrInvalidWindow, window)
	}
	s.window = window
	return nil
}

// GenerateChecksum computes the checksum of the payload over the active window.
func (s *Section) GenerateChecksum() uint16 {
	return checksum(s.data[:], s.window)
}

// checksum sums the little-endian words of data[:window] into 32 bits, then adds
// the upper and lower halves of the sum into 16 bits. Both additions wrap.
func checksum(data []byte, window int) uint16 {
	var sum uint32
	for offset := 0; offset+4 <= window; offset += 4 {
		sum += binary.LittleEndian.Uint32(data[offset:])
	}
	return uint16(sum>>16) + uint16(sum)
}

// UpdateChecksum stores the result of GenerateChecksum.
func (s *Section) UpdateChecksum() {
	s.checksum = s.GenerateChecksum()
}

// ChecksumValid reports whether the stored checksum matches the payload.
func (s *Section) ChecksumValid() bool {
	return s.checksum == s.GenerateChecksum()
}

// InferValidationWindow searches for the window length that reproduces the stored
// checksum, from the full payload down to 4 bytes. Some ROM hacks checksum a
// different number of bytes than the original game. On success the window is
// adopted; otherwise it is reset to the schema default and false is returned.
func (s *Section) InferValidationWindow() bool {
	for window := SectionDataSize; window > 0; window -= 4 {
		if checksum(s.data[:], window) == s.checksum {
			s.window = window
			return true
		}
	}
	s.window = s.defaultWindow()
	return false
}

// Fingerprint returns a hash of the payload.
func (s *Section) Fingerprint() uint64 {
	return xxhash.Sum64(s.data[:])
}

// Bytes reassembles the section record.
func (s *Section) Bytes() []byte {
	out := make([]byte, SectionSize)
	copy(out, s.raw[:])
	copy(out[SectionDataOffset:], s.data[:])
	binary.LittleEndian.PutUint16(out[SectionIDOffset:], s.id)
	binary.LittleEndian.PutUint16(out[SectionChecksumOffset:], s.checksum)
	binary.LittleEndian.PutUint32(out[SectionSignatureOffset:], s.signature)
	binary.LittleEndian.PutUint32(out[SectionSaveIndexOffset:], s.saveIndex)
	return out
}
