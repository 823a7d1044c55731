package gen3

import (
	"encoding/binary"
)

// PokemonRecord is one 20-byte Hall of Fame entry.
type PokemonRecord struct {
	trainerID   uint16
	secretID    uint16
	personality uint32
	packed      uint16
	nickname    [HallOfFameNicknameSize]byte
}

// ParsePokemonRecord decodes a record from the first HallOfFameRecordSize bytes of raw.
func ParsePokemonRecord(raw []byte) (*PokemonRecord, error) {
	if len(raw) < HallOfFameRecordSize {
		return nil, truncated("hall of fame record", HallOfFameRecordSize, len(raw))
	}

	r := &PokemonRecord{
		trainerID:   binary.LittleEndian.Uint16(raw[HallOfFameTrainerIDOffset:]),
		secretID:    binary.LittleEndian.Uint16(raw[HallOfFameTrainerIDOffset+2:]),
		personality: binary.LittleEndian.Uint32(raw[HallOfFamePersonalityOffset:]),
		packed:      binary.LittleEndian.Uint16(raw[HallOfFamePackedOffset:]),
	}
	copy(r.nickname[:], raw[HallOfFameNicknameOffset:HallOfFameNicknameOffset+HallOfFameNicknameSize])
	return r, nil
}

// PackSpeciesLevel combines a 9-bit species index and a 7-bit level.
func PackSpeciesLevel(species, level uint16) uint16 {
	return species&speciesMask | (level&levelMask)<<levelShift
}

// TrainerID returns the public half of the original trainer id.
func (r *PokemonRecord) TrainerID() uint16 { return r.trainerID }

// SecretID returns the secret half of the original trainer id.
func (r *PokemonRecord) SecretID() uint16 { return r.secretID }

// Personality returns the personality value.
func (r *PokemonRecord) Personality() uint32 { return r.personality }

// Packed returns the raw species/level word.
func (r *PokemonRecord) Packed() uint16 { return r.packed }

// Species returns the internal species index (not the national dex number).
func (r *PokemonRecord) Species() uint16 { return r.packed & speciesMask }

// Level returns the level stored in the top 7 bits.
func (r *PokemonRecord) Level() uint16 { return r.packed >> levelShift }

// SetSpecies replaces the species index, keeping the level.
func (r *PokemonRecord) SetSpecies(species uint16) {
	r.packed = PackSpeciesLevel(species, r.Level())
}

// SetLevel replaces the level, keeping the species.
func (r *PokemonRecord) SetLevel(level uint16) {
	r.packed = PackSpeciesLevel(r.Species(), level)
}

// RawNickname returns the encoded nickname bytes.
func (r *PokemonRecord) RawNickname() []byte {
	out := make([]byte, HallOfFameNicknameSize)
	copy(out, r.nickname[:])
	return out
}

// Nickname decodes the nickname with dec, or with the Western table if dec is nil.
func (r *PokemonRecord) Nickname(dec TextDecoder) string {
	if dec == nil {
		dec = WesternCharset
	}
	return dec.Decode(r.nickname[:])
}

// IsEmpty reports whether the record slot is unused.
func (r *PokemonRecord) IsEmpty() bool {
	if r.trainerID != 0 || r.secretID != 0 || r.personality != 0 || r.packed != 0 {
		return false
	}
	for _, b := range r.nickname {
		if b != 0 {
			return false
		}
	}
	return true
}

// Bytes reassembles the record.
func (r *PokemonRecord) Bytes() []byte {
	out := make([]byte, HallOfFameRecordSize)
	binary.LittleEndian.PutUint16(out[HallOfFameTrainerIDOffset:], r.trainerID)
	binary.LittleEndian.PutUint16(out[HallOfFameTrainerIDOffset+2:], r.secretID)
	binary.LittleEndian.PutUint32(out[HallOfFamePersonalityOffset:], r.personality)
	binary.LittleEndian.PutUint16(out[HallOfFamePackedOffset:], r.packed)
	copy(out[HallOfFameNicknameOffset:], r.nickname[:])
	return out
}

// HallOfFame is the table of Pokémon that completed the game, 50 teams of 6.
type HallOfFame struct {
	raw     [HallOfFameSize]byte // keeps the bytes after the last record
	records [HallOfFameRecords]*PokemonRecord
}

// ParseHallOfFame decodes the Hall of Fame region.
func ParseHallOfFame(raw []byte) (*HallOfFame, error) {
	if len(raw) < HallOfFameSize {
		return nil, truncated("hall of fame", HallOfFameSize, len(raw))
	}

	h := &HallOfFame{}
	copy(h.raw[:], raw[:HallOfFameSize])
	for i := range h.records {
		offset := i * HallOfFameRecordSize
		record, err := ParsePokemonRecord(raw[offset : offset+HallOfFameRecordSize])
		if err != nil {
			return nil, err
		}
		h.records[i] = record
	}
	return h, nil
}

// Records returns all 300 records in table order.
func (h *HallOfFame) Records() []*PokemonRecord {
	out := make([]*PokemonRecord, HallOfFameRecords)
	copy(out, h.records[:])
	return out
}

// Record returns the record at index i.
func (h *HallOfFame) Record(i int) (*PokemonRecord, bool) {
	if i < 0 || i >= HallOfFameRecords {
		return nil, false
	}
	return h.records[i], true
}

// Bytes reassembles the Hall of Fame region.
func (h *HallOfFame) Bytes() []byte {
	out := make([]byte, HallOfFameSize)
	copy(out, h.raw[:])
	for i, record := range h.records {
		copy(out[i*HallOfFameRecordSize:], record.Bytes())
	}
	return out
}
