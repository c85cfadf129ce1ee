package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giovannicoppola/alfred-WhoWasWhen/catalog"
	dbtest "github.com/giovannicoppola/alfred-WhoWasWhen/internal/testing"
	"github.com/giovannicoppola/alfred-WhoWasWhen/yearindex"
)

func newTestStore(t *testing.T) *SQLStore {
	t.Helper()
	return NewSQLStore(dbtest.CreateTestDB(t), nil)
}

func buildTestCatalog(t *testing.T) (*catalog.Catalog, *yearindex.Index) {
	t.Helper()
	c, err := catalog.Ingest(
		[]catalog.RulerRow{
			{RulerID: "1", Name: "Henry VII", PersonalName: "Henry Tudor", Link: "https://example.org/h7"},
			{RulerID: "2", Name: "Henry VIII", Epithet: "Defender of the Faith"},
			{RulerID: "3", Name: "Augustus", Notes: "first Roman emperor"},
		},
		[]catalog.ReignRow{
			{Title: "King of England", RulerID: "1", Period: "1485-1509"},
			{Title: "King of England", RulerID: "2", Period: "1509-1547"},
			{Title: "Roman Emperor", RulerID: "3", Period: "27BC-14AD"},
		},
		[]catalog.EventRow{
			{Name: "Battle of Bosworth", Period: "1485"},
		},
		catalog.Options{},
	)
	require.NoError(t, err)
	return c, yearindex.Build(c)
}

func TestSaveSnapshotRoundTrip(t *testing.T) {
	s := newTestStore(t)
	c, idx := buildTestCatalog(t)

	require.NoError(t, s.SaveSnapshot(c, idx))

	rulerRows, reignRows, eventRows, err := s.LoadRows()
	require.NoError(t, err)
	require.Len(t, rulerRows, 3)
	require.Len(t, reignRows, 3)
	require.Len(t, eventRows, 1)

	// The raw period notation survives the round trip, so re-ingesting
	// reproduces the catalog exactly.
	assert.Equal(t, "27BC-14AD", reignRows[2].Period)
	reloaded, err := catalog.Ingest(rulerRows, reignRows, eventRows, catalog.Options{})
	require.NoError(t, err)
	assert.Equal(t, len(c.Reigns()), len(reloaded.Reigns()))
	for i, reign := range reloaded.Reigns() {
		assert.Equal(t, c.Reigns()[i].Period, reign.Period)
		assert.Equal(t, c.Reigns()[i].Ordinal, reign.Ordinal)
	}
}

func TestLoadRowsPreservesRulerSheetOrder(t *testing.T) {
	s := newTestStore(t)

	// Sheet order deliberately disagrees with id order; reloading must
	// follow the sheet, not the ids.
	c, err := catalog.Ingest(
		[]catalog.RulerRow{
			{RulerID: "30", Name: "Augustus"},
			{RulerID: "10", Name: "Henry VII"},
			{RulerID: "20", Name: "Henry VIII"},
		},
		[]catalog.ReignRow{
			{Title: "Roman Emperor", RulerID: "30", Period: "27BC-14AD"},
			{Title: "King of England", RulerID: "10", Period: "1485-1509"},
			{Title: "King of England", RulerID: "20", Period: "1509-1547"},
		},
		nil,
		catalog.Options{},
	)
	require.NoError(t, err)
	require.NoError(t, s.SaveSnapshot(c, yearindex.Build(c)))

	rulerRows, reignRows, eventRows, err := s.LoadRows()
	require.NoError(t, err)
	require.Len(t, rulerRows, 3)
	assert.Equal(t, []string{"30", "10", "20"},
		[]string{rulerRows[0].RulerID, rulerRows[1].RulerID, rulerRows[2].RulerID})

	reloaded, err := catalog.Ingest(rulerRows, reignRows, eventRows, catalog.Options{})
	require.NoError(t, err)
	for i, ruler := range reloaded.Rulers() {
		assert.Equal(t, c.Rulers()[i].ID, ruler.ID)
	}
}

func TestSaveSnapshotReplacesPrevious(t *testing.T) {
	s := newTestStore(t)
	c, idx := buildTestCatalog(t)

	require.NoError(t, s.SaveSnapshot(c, idx))
	require.NoError(t, s.SaveSnapshot(c, idx))

	stats, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Rulers, "second save must not duplicate rows")
	assert.Equal(t, 3, stats.Reigns)
}

func TestStats(t *testing.T) {
	s := newTestStore(t)
	c, idx := buildTestCatalog(t)
	require.NoError(t, s.SaveSnapshot(c, idx))

	stats, err := s.Stats()
	require.NoError(t, err)
	assert.Equal(t, 3, stats.Rulers)
	assert.Equal(t, 2, stats.Titles)
	assert.Equal(t, 3, stats.Reigns)
	assert.Equal(t, 1, stats.Events)
	assert.Equal(t, -27, stats.EarliestYear)
	assert.Equal(t, 1547, stats.LatestYear)
	// 27 BC through AD 14 skips year zero: 27+14 = 41 years, plus 1485-1547.
	assert.Equal(t, 41+63, stats.Years)
}

func TestStatsEmptyStore(t *testing.T) {
	s := newTestStore(t)

	stats, err := s.Stats()
	require.NoError(t, err)
	assert.Zero(t, stats.Rulers)
	assert.Zero(t, stats.EarliestYear)
	assert.Zero(t, stats.LatestYear)
}

func TestSearchRulers(t *testing.T) {
	s := newTestStore(t)
	c, idx := buildTestCatalog(t)
	require.NoError(t, s.SaveSnapshot(c, idx))

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"single term", "henry", []string{"Henry VII", "Henry VIII"}},
		{"term and across fields", "henry faith", []string{"Henry VIII"}},
		{"title is searchable", "emperor", []string{"Augustus"}},
		{"terms on different rulers do not combine", "augustus faith", nil},
		{"link is not searchable", "example.org", nil},
		{"empty input", "   ", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := s.SearchRulers(tt.input, 0)
			require.NoError(t, err)
			var got []string
			for _, r := range rows {
				got = append(got, r.Name)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearchRulersLimit(t *testing.T) {
	s := newTestStore(t)
	c, idx := buildTestCatalog(t)
	require.NoError(t, s.SaveSnapshot(c, idx))

	rows, err := s.SearchRulers("henry", 1)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestSearchRulersEscapesWildcards(t *testing.T) {
	s := newTestStore(t)
	c, idx := buildTestCatalog(t)
	require.NoError(t, s.SaveSnapshot(c, idx))

	// LIKE metacharacters in the input must match literally, not as
	// wildcards.
	rows, err := s.SearchRulers("%", 0)
	require.NoError(t, err)
	assert.Empty(t, rows)

	rows, err = s.SearchRulers("_", 0)
	require.NoError(t, err)
	assert.Empty(t, rows)
}
