package catalog

// Source row shapes, as handed over by the ingestion layer. Field names
// follow the source sheet columns.

// RulerRow is one row of the rulers sheet.
type RulerRow struct {
	RulerID      string
	Name         string
	PersonalName string
	Epithet      string
	Link         string
	Notes        string
}

// ReignRow is one row of the periods sheet.
type ReignRow struct {
	Title   string
	RulerID string
	Period  string
	Notes   string
}

// EventRow is one row of the events sheet.
type EventRow struct {
	Name   string
	Period string
	Notes  string
	Link   string
}
