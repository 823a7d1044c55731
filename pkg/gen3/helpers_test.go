package gen3

import (
	"encoding/binary"
	"math/rand"
)

const testSignature = 0x08012025

// newTestSave builds a blank save whose blocks carry the given save indexes.
// Block B stores its sections rotated by rotateB slots, as the game does.
func newTestSave(indexA, indexB uint32, rotateB int) []byte {
	buf := make([]byte, MinimumSaveSize)
	for slot := 0; slot < SectionCount; slot++ {
		putSectionFooter(buf, BlockAOffset, slot, uint16(slot), indexA)
		putSectionFooter(buf, BlockBOffset, slot, uint16((slot+rotateB)%SectionCount), indexB)
	}
	return buf
}

func putSectionFooter(buf []byte, blockOffset, slot int, id uint16, saveIndex uint32) {
	base := blockOffset + slot*SectionSize
	binary.LittleEndian.PutUint16(buf[base+SectionIDOffset:], id)
	binary.LittleEndian.PutUint32(buf[base+SectionSignatureOffset:], testSignature)
	binary.LittleEndian.PutUint32(buf[base+SectionSaveIndexOffset:], saveIndex)
}

// newTestSection builds a raw section whose payload is made of repeated words.
func newTestSection(id uint16, word uint32, storedChecksum uint16) []byte {
	raw := make([]byte, SectionSize)
	for offset := 0; offset < SectionDataSize; offset += 4 {
		binary.LittleEndian.PutUint32(raw[offset:], word)
	}
	binary.LittleEndian.PutUint16(raw[SectionIDOffset:], id)
	binary.LittleEndian.PutUint16(raw[SectionChecksumOffset:], storedChecksum)
	binary.LittleEndian.PutUint32(raw[SectionSignatureOffset:], testSignature)
	return raw
}

func randomBytes(seed int64, n int) []byte {
	r := rand.New(rand.NewSource(seed))
	buf := make([]byte, n)
	r.Read(buf)
	return buf
}
