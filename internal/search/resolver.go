// Package search resolves a guest-supplied (name, email) pair against the
// attendee collection. Email must match exactly after folding; the name only
// needs to be a folded substring of the first name, the last name, or the
// full "First Last" form, so partial and accent-free queries still resolve.
package search

import (
	"strings"

	"github.com/galaevents/seating-service/internal/model"
	"github.com/galaevents/seating-service/internal/normalize"
)

// Find returns the first attendee, in collection order, whose email equals the
// folded query email and whose name contains the folded query name. A nil
// result means no match, which is a normal outcome rather than an error.
func Find(attendees []model.Attendee, name, email string) *model.Attendee {
	wantName := normalize.Fold(name)
	wantEmail := normalize.Fold(email)

	for i := range attendees {
		a := &attendees[i]
		if normalize.Fold(a.Email) != wantEmail {
			continue
		}
		first := normalize.Fold(a.FirstName)
		last := normalize.Fold(a.LastName)
		full := first + " " + last
		if strings.Contains(full, wantName) ||
			strings.Contains(first, wantName) ||
			strings.Contains(last, wantName) {
			found := *a
			return &found
		}
	}
	return nil
}
