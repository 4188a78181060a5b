// Package store persists carbon footprint calculation history, the active
// reduction goal, and user settings as a single JSON document.
//
// Every mutation performs a full read-modify-write of the backing file.
// Access within a process is serialized by the store's mutex, and a
// cross-process advisory lockfile guards concurrent invocations; beyond
// that, concurrent writers are last-writer-wins: intermediate appends can
// be lost. This is acceptable for a single local user and must be
// reconsidered before any multi-writer use.
package store

// Calculation is a single saved footprint calculation: the computed
// emission breakdown together with the original inputs. Records are
// immutable once saved and the log is append-only; the only destructive
// operation is a full history clear.
type Calculation struct {
	// ID is a ULID assigned at save time if absent.
	ID string `json:"id,omitempty"`

	// Timestamp is an ISO-8601 string assigned at save time if absent.
	// The fixed-width UTC layout makes lexicographic order chronological.
	Timestamp string `json:"timestamp"`

	Country string `json:"country"`

	// Emission breakdown in tonnes CO2e per year.
	Total          float64 `json:"total_emissions"`
	Transportation float64 `json:"transportation"`
	Electricity    float64 `json:"electricity"`
	Diet           float64 `json:"diet"`
	Waste          float64 `json:"waste"`

	// Original calculation inputs.
	TransportMode      string  `json:"transport_mode"`
	DailyDistanceKm    float64 `json:"daily_distance"`
	MonthlyElectricity float64 `json:"monthly_electricity"`
	DietType           string  `json:"diet_type"`
	WeeklyWasteKg      float64 `json:"weekly_waste"`
	RecyclingPercent   int     `json:"recycling_pct"`
}

// Goal is a user-defined emission reduction target. At most one goal is
// active at a time; saving a new goal replaces the prior one.
type Goal struct {
	// TargetEmissions is the target annual footprint in tonnes CO2e.
	TargetEmissions float64 `json:"target_emissions"`

	// TargetDate is the date the user aims to reach the target by.
	TargetDate string `json:"target_date"`

	// Timestamp is assigned at save time if absent.
	Timestamp string `json:"timestamp"`
}

// IsZero reports whether the goal is the empty sentinel used to clear the
// active goal slot.
func (g Goal) IsZero() bool {
	return g.TargetEmissions == 0 && g.TargetDate == "" && g.Timestamp == ""
}

// Document is the persisted aggregate: the append-ordered calculation log,
// a zero-or-one element goal slot, and the open settings map. The whole
// document is read and rewritten on every mutation.
type Document struct {
	Calculations []Calculation  `json:"calculations"`
	Goals        []Goal         `json:"goals"`
	Settings     map[string]any `json:"settings"`
}

// emptyDocument returns a Document with all three containers present but
// empty, the shape returned when the backing file is absent or unreadable.
func emptyDocument() Document {
	return Document{
		Calculations: []Calculation{},
		Goals:        []Goal{},
		Settings:     map[string]any{},
	}
}
