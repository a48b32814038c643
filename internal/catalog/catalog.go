// Package catalog deterministically generates the attendee and table universe
// for the dinner. Generation is a pure function of the name corpora and the
// configured sizes: running it twice yields identical sequences, which is what
// lets the rest of the system treat the catalog as a stable population without
// any persistence.
package catalog

import (
	"strconv"
	"time"

	"github.com/galaevents/seating-service/internal/config"
	"github.com/galaevents/seating-service/internal/model"
	"github.com/galaevents/seating-service/internal/normalize"
)

const emailDomain = "@email.com"

// GenerateAttendees produces cfg.Attendees records by walking the first-name ×
// surname cross product in fixed order (first names outer), ids starting at 1.
// Counts beyond the corpora product are clamped to it.
func GenerateAttendees(cfg config.CatalogConfig, now time.Time) []model.Attendee {
	target := cfg.Attendees
	if max := MaxAttendees(); target > max {
		target = max
	}
	attendees := make([]model.Attendee, 0, target)
	id := 1
	for n := 0; n < len(firstNames) && id <= target; n++ {
		for a := 0; a < len(lastNames) && id <= target; a++ {
			first, last := firstNames[n], lastNames[a]
			attendees = append(attendees, model.Attendee{
				ID:        id,
				FirstName: first,
				LastName:  last,
				Email:     Email(first, last, id),
				CreatedAt: now,
			})
			id++
		}
	}
	return attendees
}

// Email synthesizes the unique, accent-free address for a generated attendee:
// first.last<id>@email.com, all lower case.
func Email(first, last string, id int) string {
	return normalize.Fold(first) + "." + normalize.Fold(last) + strconv.Itoa(id) + emailDomain
}

// GenerateTables lays cfg.Tables tables of cfg.Capacity seats on a
// cfg.Columns-wide grid, row by row.
func GenerateTables(cfg config.CatalogConfig) []model.Table {
	tables := make([]model.Table, 0, cfg.Tables)
	for i := 1; i <= cfg.Tables; i++ {
		tables = append(tables, model.Table{
			ID:         i,
			Number:     i,
			Capacity:   cfg.Capacity,
			GridColumn: (i-1)%cfg.Columns + 1,
			GridRow:    (i-1)/cfg.Columns + 1,
		})
	}
	return tables
}
