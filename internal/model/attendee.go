package model

import "time"

// Attendee is one guest of the dinner. TableID and Seat stay nil until the
// draw has run; they are always nil or non-nil together.
type Attendee struct {
	ID        int       `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	TableID   *int      `json:"tableId"`
	Seat      *int      `json:"seat"`
	CreatedAt time.Time `json:"createdAt"`
}

// FullName returns "First Last" as shown to guests.
func (a Attendee) FullName() string {
	return a.FirstName + " " + a.LastName
}

// Assigned reports whether the attendee already has a seat.
func (a Attendee) Assigned() bool {
	return a.TableID != nil && a.Seat != nil
}
