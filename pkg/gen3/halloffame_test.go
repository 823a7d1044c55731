package gen3

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestRecord(trainerID, secretID uint16, personality uint32, packed uint16, nickname []byte) []byte {
	raw := make([]byte, HallOfFameRecordSize)
	binary.LittleEndian.PutUint16(raw[0:], trainerID)
	binary.LittleEndian.PutUint16(raw[2:], secretID)
	binary.LittleEndian.PutUint32(raw[4:], personality)
	binary.LittleEndian.PutUint16(raw[8:], packed)
	copy(raw[10:], nickname)
	return raw
}

func TestParsePokemonRecord(t *testing.T) {
	// "TREECKO" followed by the terminator
	nickname := []byte{0xCE, 0xCC, 0xBF, 0xBF, 0xBD, 0xC5, 0xC9, 0xFF, 0x00, 0x00}
	raw := newTestRecord(12345, 54321, 0xDEADBEEF, 0x203, nickname)

	record, err := ParsePokemonRecord(raw)
	require.NoError(t, err)
	require.Equal(t, uint16(12345), record.TrainerID())
	require.Equal(t, uint16(54321), record.SecretID())
	require.Equal(t, uint32(0xDEADBEEF), record.Personality())
	require.Equal(t, uint16(3), record.Species())
	require.Equal(t, uint16(1), record.Level())
	require.Equal(t, "TREECKO", record.Nickname(nil))
	require.Equal(t, nickname, record.RawNickname())
	require.False(t, record.IsEmpty())
	require.Equal(t, raw, record.Bytes())
}

func TestParsePokemonRecord_Truncated(t *testing.T) {
	_, err := ParsePokemonRecord(make([]byte, HallOfFameRecordSize-1))
	require.ErrorIs(t, err, ErrTruncatedInput)
}

func TestPackSpeciesLevel(t *testing.T) {
	testCases := []struct {
		name    string
		species uint16
		level   uint16
		packed  uint16
	}{
		{"species 3 level 1", 3, 1, 0x203},
		{"max species", 0x1FF, 0, 0x1FF},
		{"max level", 0, 100, 100 << 9},
		{"both max", 0x1FF, 0x7F, 0xFFFF},
		{"species masked", 0x3FF, 0, 0x1FF},
		{"level masked", 0, 0xFF, 0xFE00},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.packed, PackSpeciesLevel(tc.species, tc.level))
		})
	}
}

func TestPokemonRecord_SetSpeciesLevel(t *testing.T) {
	record, err := ParsePokemonRecord(newTestRecord(1, 2, 3, 0x203, nil))
	require.NoError(t, err)

	record.SetSpecies(0x115)
	require.Equal(t, uint16(0x115), record.Species())
	require.Equal(t, uint16(1), record.Level())

	record.SetLevel(50)
	require.Equal(t, uint16(0x115), record.Species())
	require.Equal(t, uint16(50), record.Level())
	require.Equal(t, uint16(0x115|50<<9), record.Packed())
}

func TestPokemonRecord_IsEmpty(t *testing.T) {
	record, err := ParsePokemonRecord(make([]byte, HallOfFameRecordSize))
	require.NoError(t, err)
	require.True(t, record.IsEmpty())

	record, err = ParsePokemonRecord(newTestRecord(0, 0, 0, 0, []byte{0, 0, 0, 0, 0, 0, 0, 0, 0, 1}))
	require.NoError(t, err)
	require.False(t, record.IsEmpty())
}

func TestParseHallOfFame(t *testing.T) {
	raw := make([]byte, HallOfFameSize)
	copy(raw[5*HallOfFameRecordSize:], newTestRecord(1, 2, 3, PackSpeciesLevel(277, 45), nil))
	raw[HallOfFameRecords*HallOfFameRecordSize] = 0x77

	hof, err := ParseHallOfFame(raw)
	require.NoError(t, err)
	require.Len(t, hof.Records(), HallOfFameRecords)

	record, ok := hof.Record(5)
	require.True(t, ok)
	require.Equal(t, uint16(277), record.Species())
	require.Equal(t, uint16(45), record.Level())

	_, ok = hof.Record(HallOfFameRecords)
	require.False(t, ok)

	require.Equal(t, raw, hof.Bytes())

	record.SetLevel(46)
	out := hof.Bytes()
	require.Equal(t, PackSpeciesLevel(277, 46), binary.LittleEndian.Uint16(out[5*HallOfFameRecordSize+HallOfFamePackedOffset:]))
	require.Equal(t, byte(0x77), out[HallOfFameRecords*HallOfFameRecordSize])
}

func TestParseHallOfFame_Truncated(t *testing.T) {
	_, err := ParseHallOfFame(make([]byte, HallOfFameSize-1))
	require.ErrorIs(t, err, ErrTruncatedInput)
}

func TestWesternCharset_Decode(t *testing.T) {
	testCases := []struct {
		name     string
		raw      []byte
		expected string
	}{
		{"upper case", []byte{0xC7, 0xC9, 0xC8, 0xBF, 0xD3}, "MONEY"},
		{"lower case", []byte{0xE2, 0xE3, 0xE8, 0xD9}, "note"},
		{"digits", []byte{0xA1, 0xAA}, "09"},
		{"stops at terminator", []byte{0xBB, 0xFF, 0xBC}, "A"},
		{"space and punctuation", []byte{0xBB, 0x00, 0xAB, 0xB5}, "A !♂"},
		{"accented", []byte{0xC6, 0x1B, 0xE0, 0x1B, 0x14}, "LéléÑ"},
		{"umlauts", []byte{0xF1, 0xF5, 0xF6}, "Äöü"},
		{"pokedollar", []byte{0xB7, 0xA2, 0xA1, 0xA1}, "$100"},
		{"unused code", []byte{0x0A}, "\uFFFD"},
		{"two-letter glyph", []byte{0x34}, "\uFFFD"},
		{"empty", nil, ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expected, WesternCharset.Decode(tc.raw))
		})
	}
}

type stubDecoder struct{}

func (stubDecoder) Decode(raw []byte) string { return "custom" }

func TestPokemonRecord_NicknameWithDecoder(t *testing.T) {
	record, err := ParsePokemonRecord(newTestRecord(0, 0, 0, 0, []byte{0xBB}))
	require.NoError(t, err)
	require.Equal(t, "custom", record.Nickname(stubDecoder{}))
}
