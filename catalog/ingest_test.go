package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giovannicoppola/alfred-WhoWasWhen/chron"
	"github.com/giovannicoppola/alfred-WhoWasWhen/errors"
)

func testRulerRows() []RulerRow {
	return []RulerRow{
		{RulerID: "1", Name: "Henry VIII", PersonalName: "Henry Tudor", Epithet: "", Notes: "second Tudor monarch"},
		{RulerID: "2", Name: "Julius Caesar", Epithet: "Dictator perpetuo"},
		{RulerID: "3", Name: "Elizabeth I", PersonalName: "Elizabeth Tudor"},
	}
}

func testReignRows() []ReignRow {
	return []ReignRow{
		{Title: "English Monarch", RulerID: "1", Period: "1509-1547"},
		{Title: "Dictator", RulerID: "2", Period: "49BC-44BC"},
		{Title: "English Monarch", RulerID: "3", Period: "1558-1603"},
	}
}

func TestIngest(t *testing.T) {
	c, err := Ingest(testRulerRows(), testReignRows(), nil, Options{})
	require.NoError(t, err)

	require.Len(t, c.Rulers(), 3)
	require.Len(t, c.Reigns(), 3)
	require.Len(t, c.Titles(), 2)

	henry, ok := c.Ruler(1)
	require.True(t, ok)
	assert.Equal(t, "Henry VIII", henry.Name)
	require.Len(t, henry.Reigns, 1)
	assert.Equal(t, chron.Period{Start: 1509, End: 1547}, henry.Reigns[0].Period)

	monarch, ok := c.Title("English Monarch")
	require.True(t, ok)
	assert.Equal(t, 2, monarch.MaxOrdinal)

	// Ordinals follow source order within each title.
	assert.Equal(t, 1, c.Reigns()[0].Ordinal)
	assert.Equal(t, 1, c.Reigns()[1].Ordinal)
	assert.Equal(t, 2, c.Reigns()[2].Ordinal)

	assert.Zero(t, c.Diagnostics().SkippedRulers)
	assert.Zero(t, c.Diagnostics().SkippedReigns)
}

func TestIngestIsDeterministic(t *testing.T) {
	a, err := Ingest(testRulerRows(), testReignRows(), nil, Options{})
	require.NoError(t, err)
	b, err := Ingest(testRulerRows(), testReignRows(), nil, Options{})
	require.NoError(t, err)

	require.Len(t, b.Reigns(), len(a.Reigns()))
	for i := range a.Reigns() {
		assert.Equal(t, a.Reigns()[i].Ordinal, b.Reigns()[i].Ordinal)
		assert.Equal(t, a.Reigns()[i].Period, b.Reigns()[i].Period)
		assert.Equal(t, a.Reigns()[i].Ruler.ID, b.Reigns()[i].Ruler.ID)
	}
}

func TestIngestSkipsInvalidRulerRows(t *testing.T) {
	rulers := append(testRulerRows(),
		RulerRow{RulerID: "", Name: "No ID"},
		RulerRow{RulerID: "abc", Name: "Bad ID"},
		RulerRow{RulerID: " 1 ", Name: "Duplicate of Henry"},
	)

	c, err := Ingest(rulers, testReignRows(), nil, Options{})
	require.NoError(t, err)

	assert.Len(t, c.Rulers(), 3)
	assert.Equal(t, 3, c.Diagnostics().SkippedRulers)
	assert.Len(t, c.Diagnostics().Messages, 3)
}

func TestIngestSkipsBadReignRows(t *testing.T) {
	reigns := append(testReignRows(),
		ReignRow{Title: "Pope", RulerID: "1", Period: "not a period"},
		ReignRow{Title: "Pope", RulerID: "99", Period: "800-810"},
		ReignRow{Title: "Pope", RulerID: "x", Period: "800-810"},
	)

	c, err := Ingest(testRulerRows(), reigns, nil, Options{})
	require.NoError(t, err)

	assert.Len(t, c.Reigns(), 3)
	assert.Equal(t, 3, c.Diagnostics().SkippedReigns)

	// A title referenced only by skipped rows is never created.
	_, ok := c.Title("Pope")
	assert.False(t, ok)
}

func TestIngestFailsOnEmptyCatalog(t *testing.T) {
	_, err := Ingest(nil, nil, nil, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrEmptyCatalog))

	// All rows invalid is just as empty.
	_, err = Ingest(
		[]RulerRow{{RulerID: "x", Name: "Bad"}},
		[]ReignRow{{Title: "Pope", RulerID: "1", Period: "bad"}},
		nil, Options{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrEmptyCatalog))
}

func TestIngestEvents(t *testing.T) {
	events := []EventRow{
		{Name: "Fall of Constantinople", Period: "1453", Notes: "end of the Byzantine Empire"},
		{Name: "Bad event", Period: ""},
	}

	c, err := Ingest(testRulerRows(), testReignRows(), events, Options{})
	require.NoError(t, err)

	require.Len(t, c.Events(), 1)
	assert.Equal(t, chron.Period{Start: 1453, End: 1453}, c.Events()[0].Period)
	assert.Equal(t, 1, c.Diagnostics().SkippedEvents)
}

func TestPluralLabel(t *testing.T) {
	c, err := Ingest(testRulerRows(), testReignRows(), nil, Options{})
	require.NoError(t, err)

	monarch, _ := c.Title("English Monarch")
	assert.Equal(t, "English Monarchs", monarch.PluralLabel())

	// No registered plural: the title displays as itself, with no
	// automatic "+s" inference.
	dictator, _ := c.Title("Dictator")
	assert.Equal(t, "Dictators", dictator.PluralLabel())

	custom := &Title{Name: "Shogun"}
	assert.Equal(t, "Shogun", custom.PluralLabel())
}
