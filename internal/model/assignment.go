package model

import "time"

// Assignment is the resolved answer for one attendee: their table and the
// other guests seated with them, sorted by seat number.
type Assignment struct {
	Attendee   Attendee   `json:"attendee"`
	Table      Table      `json:"table"`
	Tablemates []Attendee `json:"tablemates"`
}

// BatchReport summarizes one bulk-notification run. Errors keeps at most the
// first few failure messages; Failed carries the full count.
type BatchReport struct {
	BatchID string    `json:"batchId"`
	Sent    int       `json:"sent"`
	Skipped int       `json:"skipped"`
	Failed  int       `json:"failed"`
	Total   int       `json:"total"`
	Errors  []string  `json:"errors,omitempty"`
	SentAt  time.Time `json:"sentAt"`
}

// maxReportedErrors caps the error strings carried in a BatchReport; the
// Failed counter still reflects every failure.
const maxReportedErrors = 10

// RecordError appends msg unless the report already carries its limit.
func (r *BatchReport) RecordError(msg string) {
	if len(r.Errors) < maxReportedErrors {
		r.Errors = append(r.Errors, msg)
	}
}

// Stats describes the directory for the status endpoint.
type Stats struct {
	Attendees int `json:"attendees"`
	Assigned  int `json:"assigned"`
	Tables    int `json:"tables"`
	Notified  int `json:"notified"`
}
