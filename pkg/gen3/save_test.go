package gen3

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse_Truncated(t *testing.T) {
	testCases := []struct {
		name   string
		size   int
		region string
	}{
		{"empty", 0, "block A"},
		{"inside block B", BlockBOffset + 100, "block B"},
		{"inside hall of fame", HallOfFameOffset + 10, "hall of fame"},
		{"inside mystery gift", MysteryGiftOffset, "mystery gift"},
		{"one byte short", MinimumSaveSize - 1, "recorded battle"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(make([]byte, tc.size))
			require.ErrorIs(t, err, ErrTruncatedInput)

			var truncErr *TruncatedInputError
			require.True(t, errors.As(err, &truncErr))
			require.Equal(t, tc.region, truncErr.Region)
			require.Equal(t, tc.size, truncErr.Have)
			require.Greater(t, truncErr.Want, truncErr.Have)
		})
	}
}

func TestParse_RoundTrip(t *testing.T) {
	t.Run("random bytes", func(t *testing.T) {
		raw := randomBytes(7, MinimumSaveSize)
		save, err := Parse(raw)
		require.NoError(t, err)
		require.Equal(t, raw, save.Bytes())
	})

	t.Run("structured save", func(t *testing.T) {
		raw := newTestSave(3, 4, 5)
		save, err := Parse(raw)
		require.NoError(t, err)
		require.Equal(t, raw, save.Bytes())
	})

	t.Run("trailing bytes are kept", func(t *testing.T) {
		raw := randomBytes(8, MinimumSaveSize+16)
		save, err := Parse(raw)
		require.NoError(t, err)
		require.Equal(t, MinimumSaveSize+16, save.Size())
		require.Equal(t, raw, save.Bytes())
	})
}

func TestParse_CopiesInput(t *testing.T) {
	raw := newTestSave(1, 2, 0)
	save, err := Parse(raw)
	require.NoError(t, err)

	raw[MysteryGiftOffset] = 0xFF
	raw[BlockBOffset] = 0xFF
	require.Equal(t, byte(0), save.MysteryGift()[0])
	require.Equal(t, byte(0), save.B().Sections()[0].Data()[0])
}

func TestSaveImage_CurrentBlock(t *testing.T) {
	testCases := []struct {
		name     string
		indexA   uint32
		indexB   uint32
		expected string
	}{
		{"A newer", 7, 5, "A"},
		{"B newer", 5, 7, "B"},
		{"tie goes to B", 6, 6, "B"},
		{"both zero", 0, 0, "B"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			save, err := Parse(newTestSave(tc.indexA, tc.indexB, 3))
			require.NoError(t, err)
			require.Equal(t, tc.expected, save.CurrentBlock().Name())
			require.NotEqual(t, tc.expected, save.BackupBlock().Name())
		})
	}
}

func TestSaveImage_CurrentBlockUsesLastSlot(t *testing.T) {
	raw := newTestSave(5, 5, 0)
	// Only the final slot dates a block, whatever id it holds.
	putSectionFooter(raw, BlockAOffset, 0, 0, 100)
	putSectionFooter(raw, BlockBOffset, SectionCount-1, 2, 6)

	save, err := Parse(raw)
	require.NoError(t, err)
	require.Equal(t, "B", save.CurrentBlock().Name())
}

func TestSaveImage_OpaqueRegions(t *testing.T) {
	raw := newTestSave(1, 2, 0)
	copy(raw[MysteryGiftOffset:], randomBytes(2, MysteryGiftSize))
	copy(raw[RecordedBattleOffset:], randomBytes(3, RecordedBattleSize))

	save, err := Parse(raw)
	require.NoError(t, err)

	section, ok := save.CurrentBlock().SectionByID(3)
	require.True(t, ok)
	require.NoError(t, section.WriteAt(0x100, []byte{0xDE, 0xAD}))
	section.UpdateChecksum()

	out := save.Bytes()
	require.Equal(t, raw[MysteryGiftOffset:MysteryGiftOffset+MysteryGiftSize], out[MysteryGiftOffset:MysteryGiftOffset+MysteryGiftSize])
	require.Equal(t, raw[RecordedBattleOffset:], out[RecordedBattleOffset:])
}

func TestSaveImage_SetOpaqueRegions(t *testing.T) {
	save, err := Parse(newTestSave(1, 2, 0))
	require.NoError(t, err)

	require.ErrorIs(t, save.SetMysteryGift(make([]byte, 10)), ErrInvalidDataSize)
	require.ErrorIs(t, save.SetRecordedBattle(nil), ErrInvalidDataSize)

	gift := randomBytes(4, MysteryGiftSize)
	battle := randomBytes(5, RecordedBattleSize)
	require.NoError(t, save.SetMysteryGift(gift))
	require.NoError(t, save.SetRecordedBattle(battle))

	out := save.Bytes()
	require.Equal(t, gift, out[MysteryGiftOffset:MysteryGiftOffset+MysteryGiftSize])
	require.Equal(t, battle, out[RecordedBattleOffset:RecordedBattleOffset+RecordedBattleSize])
}

func TestSaveImage_LoadAndWriteFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.sav")
	output := filepath.Join(dir, "out.sav")

	raw := newTestSave(9, 8, 1)
	require.NoError(t, os.WriteFile(input, raw, 0o644))

	save, err := Load(input)
	require.NoError(t, err)
	require.Equal(t, "A", save.CurrentBlock().Name())
	require.NoError(t, save.WriteFile(output))

	written, err := os.ReadFile(output)
	require.NoError(t, err)
	require.Equal(t, raw, written)

	_, err = Load(filepath.Join(dir, "missing.sav"))
	require.Error(t, err)
}
