package watcher

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/giovannicoppola/alfred-WhoWasWhen/catalog"
	"github.com/giovannicoppola/alfred-WhoWasWhen/query"
	"github.com/giovannicoppola/alfred-WhoWasWhen/yearindex"
)

func TestHolderSwap(t *testing.T) {
	h := &Holder{}
	assert.Nil(t, h.Load())

	c, err := catalog.Ingest(
		[]catalog.RulerRow{{RulerID: "1", Name: "Augustus"}},
		[]catalog.ReignRow{{Title: "Roman Emperor", RulerID: "1", Period: "27BC-14AD"}},
		nil, catalog.Options{},
	)
	require.NoError(t, err)
	idx := yearindex.Build(c)

	first := &Snapshot{Catalog: c, Index: idx, Engine: query.New(c, idx, query.Options{})}
	h.Store(first)
	assert.Same(t, first, h.Load())

	second := &Snapshot{Catalog: c, Index: idx, Engine: query.New(c, idx, query.Options{})}
	h.Store(second)
	assert.Same(t, second, h.Load())
}

func TestNewSheetWatcherRequiresAnExistingSheet(t *testing.T) {
	dir := t.TempDir()
	_, err := NewSheetWatcher(filepath.Join(dir, "missing.tsv"))
	require.Error(t, err)
}

func TestNewSheetWatcherSkipsMissingSheets(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "rulers_data.tsv")
	require.NoError(t, os.WriteFile(existing, []byte("RulerID\tName\n"), 0644))

	sw, err := NewSheetWatcher(existing, filepath.Join(dir, "events_data.tsv"))
	require.NoError(t, err)
	defer sw.Stop()
}

func TestWatcherDebouncesRapidWrites(t *testing.T) {
	dir := t.TempDir()
	sheet := filepath.Join(dir, "rulers_data.tsv")
	require.NoError(t, os.WriteFile(sheet, []byte("RulerID\tName\n"), 0644))

	sw, err := NewSheetWatcher(sheet)
	require.NoError(t, err)
	defer sw.Stop()
	sw.debouncePeriod = 50 * time.Millisecond

	var reloads atomic.Int32
	sw.OnReload(func() error {
		reloads.Add(1)
		return nil
	})
	sw.Start()

	// A burst of writes inside the debounce window collapses into one
	// reload.
	for i := 0; i < 5; i++ {
		require.NoError(t, os.WriteFile(sheet, []byte("RulerID\tName\n1\tAugustus\n"), 0644))
		time.Sleep(5 * time.Millisecond)
	}

	assert.Eventually(t, func() bool {
		return reloads.Load() >= 1
	}, 2*time.Second, 10*time.Millisecond)

	time.Sleep(100 * time.Millisecond)
	assert.LessOrEqual(t, reloads.Load(), int32(2), "rapid writes should be debounced")
}
