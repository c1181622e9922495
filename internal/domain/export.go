package domain

// ExportRow is a single row in the trip export: one row per trip, flattened
// to strings so the handler can emit CSV or JSON without further lookups.
type ExportRow struct {
	TripID        int64
	Destination   string
	DepartureDate string // "2006-01-02" formatted date
	ReturnDate    string
	Days          int // inclusive day count, both endpoints counted
	Notes         string
	CreatedAt     string // RFC3339
}
