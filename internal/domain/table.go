package domain

type TableLocation string

const (
	TableLocationIndoor  TableLocation = "indoor"
	TableLocationOutdoor TableLocation = "outdoor"
	TableLocationTerrace TableLocation = "terrace"
)

// Table is restaurant configuration: created at setup time and immutable
// except for the Available flag.
type Table struct {
	ID        int64         `json:"id"`
	Capacity  int           `json:"capacity"`
	Location  TableLocation `json:"location"`
	Available bool          `json:"available"`
}

type TableFilter struct {
	MinCapacity   int
	AvailableOnly bool
}

// SlotSummary is the restaurant-wide utilisation of a (date, slot) pair,
// independent of any party size.
type SlotSummary struct {
	TotalTables     int `json:"total_tables"`
	OccupiedTables  int `json:"occupied_tables"`
	AvailableTables int `json:"available_tables"`
}

// Availability is what a front-of-house availability check returns: the
// tables that could host the party, smallest fit first, plus the
// party-size-independent slot summary.
type Availability struct {
	CandidateTables []*Table    `json:"candidate_tables"`
	Summary         SlotSummary `json:"slot_summary"`
}
