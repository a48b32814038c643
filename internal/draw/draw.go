// Package draw performs the one-shot randomized seating of attendees.
package draw

import (
	"errors"
	"math/rand"

	"github.com/galaevents/seating-service/internal/model"
)

// ErrCapacityExceeded is returned when the tables cannot seat every attendee.
// The draw refuses to run rather than leave anyone unassigned.
var ErrCapacityExceeded = errors.New("total table capacity is less than attendee count")

// Assign shuffles the attendees with a Fisher–Yates permutation over rng and
// seats them in lockstep table order: seats 1..capacity of table 1, then
// table 2, and so on. The input slice is not modified; the result holds the
// same attendee ids with TableID and Seat populated.
//
// Assign is deliberately not idempotent — each call produces a fresh random
// seating. The directory store is responsible for running it at most once.
func Assign(rng *rand.Rand, attendees []model.Attendee, tables []model.Table) ([]model.Attendee, error) {
	total := 0
	for _, t := range tables {
		total += t.Capacity
	}
	if total < len(attendees) {
		return nil, ErrCapacityExceeded
	}

	shuffled := make([]model.Attendee, len(attendees))
	copy(shuffled, attendees)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}

	tableIdx := 0
	seat := 1
	for i := range shuffled {
		for seat > tables[tableIdx].Capacity {
			tableIdx++
			seat = 1
		}
		tableID := tables[tableIdx].ID
		seatNo := seat
		shuffled[i].TableID = &tableID
		shuffled[i].Seat = &seatNo
		seat++
	}
	return shuffled, nil
}
