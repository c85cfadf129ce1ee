// Package watcher keeps a long-running process in sync with the source
// sheets: it watches the TSV files, rebuilds the catalog on change, and
// swaps the result in atomically so readers never see a partial build.
package watcher

import (
	"sync/atomic"

	"github.com/giovannicoppola/alfred-WhoWasWhen/catalog"
	"github.com/giovannicoppola/alfred-WhoWasWhen/query"
	"github.com/giovannicoppola/alfred-WhoWasWhen/yearindex"
)

// Snapshot is one consistent build: a catalog, its year index, and a
// query engine over them. Snapshots are immutable; a rebuild produces a
// fresh one.
type Snapshot struct {
	Catalog *catalog.Catalog
	Index   *yearindex.Index
	Engine  *query.Engine
}

// Holder publishes the current snapshot to concurrent readers. Queries
// in flight keep the snapshot they started with.
type Holder struct {
	current atomic.Pointer[Snapshot]
}

// Load returns the current snapshot, nil before the first Store.
func (h *Holder) Load() *Snapshot {
	return h.current.Load()
}

// Store replaces the current snapshot.
func (h *Holder) Store(s *Snapshot) {
	h.current.Store(s)
}
