package pkg

import (
	"bytes"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func testDiffReport() *DiffReport {
	return &DiffReport{
		Old: "before.sav",
		New: "after.sav",
		Sections: []SectionDiffReport{{
			ID:   3,
			Name: "Misc data",
			Changes: []ByteChangeReport{
				{Offset: "0x100", Old: 0x00, New: 0xDE},
			},
		}},
	}
}

func TestSAVFileExporter_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewSAVExporter().Export(&buf, testDiffReport(), FormatText))
	require.Equal(t,
		"Changes identified in Misc data (addresses relative to section start)\n\t0x100: 0x00 => 0xDE\n",
		buf.String())

	buf.Reset()
	require.NoError(t, NewSAVExporter().Export(&buf, &DiffReport{}, ""))
	require.Equal(t, "No differences found.\n", buf.String())
}

func TestSAVFileExporter_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewSAVExporter().Export(&buf, testDiffReport(), FormatYAML))

	var decoded DiffReport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, *testDiffReport(), decoded)
}

func TestSAVFileExporter_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewSAVExporter().Export(&buf, testDiffReport(), FormatJSON))

	var decoded DiffReport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Equal(t, *testDiffReport(), decoded)
	require.Contains(t, buf.String(), `"name": "Misc data"`)
}

func TestSAVFileExporter_BlockText(t *testing.T) {
	block := &BlockReport{
		Name:      "B",
		SaveIndex: 7,
		Current:   true,
		Sections: []SectionReport{
			{Slot: 0, ID: 0, Name: "Trainer info", Checksum: "0x0001", Computed: "0x0002", Window: 3884},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, NewSAVExporter().Export(&buf, block, FormatText))
	require.Contains(t, buf.String(), "Block B (current), save index 7")
	require.Contains(t, buf.String(), "MISMATCH")
}

func TestSAVFileExporter_HallOfFameText(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewSAVExporter().Export(&buf, []HallOfFameEntry(nil), FormatText))
	require.Equal(t, "Hall of Fame is empty.\n", buf.String())

	buf.Reset()
	entries := []HallOfFameEntry{{Index: 7, Team: 1, Nickname: "TREECKO", Species: 280, Level: 55}}
	require.NoError(t, NewSAVExporter().Export(&buf, entries, FormatText))
	require.Contains(t, buf.String(), "TREECKO")
}

func TestSAVFileExporter_Errors(t *testing.T) {
	var buf bytes.Buffer
	require.Error(t, NewSAVExporter().Export(&buf, testDiffReport(), "xml"))
	require.Error(t, NewSAVExporter().Export(&buf, 42, FormatText))
}
