// Package export provides pure projections of calculation records for
// consumption by external render layers: a flat key/value record for a
// single calculation, and a tabular row-per-calculation structure with a
// CSV writer.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rshade/carbontrack/internal/store"
)

// FlatRecord projects a calculation to a flat, JSON-serializable
// key/value map using the persisted field names.
func FlatRecord(c store.Calculation) map[string]any {
	return map[string]any{
		"id":                  c.ID,
		"timestamp":           c.Timestamp,
		"country":             c.Country,
		"total_emissions":     c.Total,
		"transportation":      c.Transportation,
		"electricity":         c.Electricity,
		"diet":                c.Diet,
		"waste":               c.Waste,
		"transport_mode":      c.TransportMode,
		"daily_distance":      c.DailyDistanceKm,
		"monthly_electricity": c.MonthlyElectricity,
		"diet_type":           c.DietType,
		"weekly_waste":        c.WeeklyWasteKg,
		"recycling_pct":       c.RecyclingPercent,
	}
}

// Header is the column order of the tabular projection.
//
//nolint:gochecknoglobals // Constant column layout.
var Header = []string{"Date", "Total", "Transport", "Electricity", "Diet", "Waste", "Country"}

// Rows projects calculations to the tabular row-per-calculation structure.
// Rows come out in the order given; callers pass store ordering
// (most-recent-first) or re-sort as needed.
func Rows(calcs []store.Calculation) [][]string {
	rows := make([][]string, 0, len(calcs))
	for _, c := range calcs {
		rows = append(rows, []string{
			c.Timestamp,
			formatTonnes(c.Total),
			formatTonnes(c.Transportation),
			formatTonnes(c.Electricity),
			formatTonnes(c.Diet),
			formatTonnes(c.Waste),
			c.Country,
		})
	}
	return rows
}

// WriteCSV writes the header and calculation rows to w.
func WriteCSV(w io.Writer, calcs []store.Calculation) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, row := range Rows(calcs) {
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row: %w", err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("flushing csv: %w", err)
	}
	return nil
}

// WriteJSON writes the calculations as a JSON array of flat records.
func WriteJSON(w io.Writer, calcs []store.Calculation) error {
	records := make([]map[string]any, 0, len(calcs))
	for _, c := range calcs {
		records = append(records, FlatRecord(c))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("encoding history json: %w", err)
	}
	return nil
}

// formatTonnes renders a tonnes value with 2 decimal places for the table.
func formatTonnes(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
