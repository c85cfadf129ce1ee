package ingest

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSheet(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadRulers(t *testing.T) {
	path := writeSheet(t, "rulers_data.tsv",
		"RulerID\tName\tPersonal Name\tWikipedia\tEpithet\tNotes\n"+
			"1\tHenry VIII\tHenry Tudor\thttps://example.org/h8\tDefender of the Faith\tsecond Tudor monarch\n"+
			"2\tAugustus\t\t\t\t\n")

	rows, err := ReadRulers(path, nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "1", rows[0].RulerID)
	assert.Equal(t, "Henry VIII", rows[0].Name)
	assert.Equal(t, "Henry Tudor", rows[0].PersonalName)
	assert.Equal(t, "https://example.org/h8", rows[0].Link)
	assert.Equal(t, "Defender of the Faith", rows[0].Epithet)
	assert.Equal(t, "Augustus", rows[1].Name)
	assert.Empty(t, rows[1].PersonalName)
}

func TestReadRulersReorderedColumns(t *testing.T) {
	// Columns are resolved by header name, not position.
	path := writeSheet(t, "rulers_data.tsv",
		"Name\tRulerID\tNotes\n"+
			"Henry VIII\t1\tsecond Tudor monarch\n")

	rows, err := ReadRulers(path, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "1", rows[0].RulerID)
	assert.Equal(t, "Henry VIII", rows[0].Name)
	assert.Empty(t, rows[0].Link)
}

func TestReadReigns(t *testing.T) {
	path := writeSheet(t, "periods_data.tsv",
		"Title\tRulerID\tPeriod\tNotes\n"+
			"King of England\t1\t1509-1547\t\n"+
			"\t\t\t\n"+ // blank rows are skipped
			"Roman Emperor\t2\t27BC-14AD\tfirst emperor\n")

	rows, err := ReadReigns(path, nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "1509-1547", rows[0].Period)
	assert.Equal(t, "27BC-14AD", rows[1].Period)
	assert.Equal(t, "first emperor", rows[1].Notes)
}

func TestReadReignsShortRecord(t *testing.T) {
	// Trailing empty fields are often dropped by sheet exports.
	path := writeSheet(t, "periods_data.tsv",
		"Title\tRulerID\tPeriod\tNotes\n"+
			"Pope\t3\t533-535\n")

	rows, err := ReadReigns(path, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "533-535", rows[0].Period)
	assert.Empty(t, rows[0].Notes)
}

func TestReadEvents(t *testing.T) {
	path := writeSheet(t, "events_data.tsv",
		"Name\tPeriod\tNotes\tWikipedia\n"+
			"Council of Trent\t1545-1563\tCounter-Reformation council\thttps://example.org/trent\n")

	rows, err := ReadEvents(path, nil)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Council of Trent", rows[0].Name)
	assert.Equal(t, "1545-1563", rows[0].Period)
}

func TestReadEventsMissingFileIsNotAnError(t *testing.T) {
	rows, err := ReadEvents(filepath.Join(t.TempDir(), "no_such.tsv"), nil)
	require.NoError(t, err)
	assert.Nil(t, rows)
}

func TestReadRulersMissingFile(t *testing.T) {
	_, err := ReadRulers(filepath.Join(t.TempDir(), "no_such.tsv"), nil)
	require.Error(t, err)
}

func TestReadRulersEmptyFile(t *testing.T) {
	path := writeSheet(t, "rulers_data.tsv", "")
	_, err := ReadRulers(path, nil)
	require.Error(t, err)
}
