package main

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"

	"github.com/sells-group/leads-cli/internal/model"
)

func TestWriteLeadsXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "leads.xlsx")
	leads := []model.NormalizedLead{
		{
			ID: "7", Title: "Fence quote", Subreddit: "Phoenix",
			Link: "https://reddit.com/x", Priority: "High", Score: 41,
			FoundAt: "2024-04-01T00:00:00.000Z",
		},
		{ID: "8", Title: "Untitled", Priority: "Medium"},
	}

	require.NoError(t, writeLeadsXLSX(path, leads))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 1)

	sheet := f.Sheets[0]
	assert.Equal(t, "Leads", sheet.Name)
	require.Len(t, sheet.Rows, 3)

	assert.Equal(t, "ID", sheet.Rows[0].Cells[0].String())
	assert.Equal(t, "Fence quote", sheet.Rows[1].Cells[1].String())
	assert.Equal(t, "https://reddit.com/x", sheet.Rows[1].Cells[4].String())

	score, err := sheet.Rows[1].Cells[7].Float()
	require.NoError(t, err)
	assert.Equal(t, float64(41), score)

	assert.Equal(t, "Untitled", sheet.Rows[2].Cells[1].String())
}

func TestWriteLeadsXLSX_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, writeLeadsXLSX(path, nil))

	f, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	require.Len(t, f.Sheets, 1)
	assert.Len(t, f.Sheets[0].Rows, 1) // header only
}
