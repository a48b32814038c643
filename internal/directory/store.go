// Package directory holds the process-wide seating state: the generated
// attendee and table collections, the drawn/undrawn flag, and the ledger of
// notified emails. One Store is constructed at startup and injected into every
// consumer; all access is serialized behind a single mutex, and callers only
// ever receive copies of the backing slices.
package directory

import (
	"math/rand"
	"sync"
	"time"

	"github.com/galaevents/seating-service/internal/catalog"
	"github.com/galaevents/seating-service/internal/config"
	"github.com/galaevents/seating-service/internal/draw"
	"github.com/galaevents/seating-service/internal/model"
	"github.com/galaevents/seating-service/internal/normalize"
)

type notifyState int

const (
	notifyPending notifyState = iota + 1
	notifySent
)

// Store owns the attendee/table collections and the notification ledger.
type Store struct {
	mu        sync.Mutex
	cfg       config.CatalogConfig
	rng       *rand.Rand
	attendees []model.Attendee
	tables    []model.Table
	drawn     bool
	ledger    map[string]notifyState
}

// New builds an empty store. rng is the random source for the draw; pass a
// seeded one in tests to get reproducible seatings.
func New(cfg config.CatalogConfig, rng *rand.Rand) *Store {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Store{
		cfg:    cfg,
		rng:    rng,
		ledger: make(map[string]notifyState),
	}
}

// ensureCatalog generates the collections on first touch. Caller holds mu.
func (s *Store) ensureCatalog() {
	if s.attendees == nil {
		s.attendees = catalog.GenerateAttendees(s.cfg, time.Now())
	}
	if s.tables == nil {
		s.tables = catalog.GenerateTables(s.cfg)
	}
}

// Attendees returns a copy of the current attendee collection, generating it
// on first call.
func (s *Store) Attendees() []model.Attendee {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureCatalog()
	out := make([]model.Attendee, len(s.attendees))
	copy(out, s.attendees)
	return out
}

// Tables returns a copy of the table collection.
func (s *Store) Tables() []model.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureCatalog()
	out := make([]model.Table, len(s.tables))
	copy(out, s.tables)
	return out
}

// TableByID resolves one table. ok is false when the id is unknown.
func (s *Store) TableByID(id int) (model.Table, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureCatalog()
	for _, t := range s.tables {
		if t.ID == id {
			return t, true
		}
	}
	return model.Table{}, false
}

// EnsureDrawn runs the draw if it has not run yet. The drawn flag and the
// collection swap happen under the store mutex, so concurrent first requests
// trigger exactly one draw.
func (s *Store) EnsureDrawn() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.drawn {
		return nil
	}
	return s.runDrawLocked()
}

// RunDraw always re-runs the draw, replacing the stored assignment. Attendees
// already notified keep their ledger entries; re-drawing after notifications
// have gone out is an operator decision, not something the store second-guesses.
func (s *Store) RunDraw() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.runDrawLocked(); err != nil {
		return 0, err
	}
	return len(s.attendees), nil
}

func (s *Store) runDrawLocked() error {
	s.ensureCatalog()
	assigned, err := draw.Assign(s.rng, s.attendees, s.tables)
	if err != nil {
		return err
	}
	s.attendees = assigned
	s.drawn = true
	return nil
}

// Drawn reports whether the draw has run.
func (s *Store) Drawn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drawn
}

// Tablemates returns every attendee seated at tableID except excludeID, in
// storage order. Seat ordering is the consumer's concern.
func (s *Store) Tablemates(tableID, excludeID int) []model.Attendee {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureCatalog()
	var mates []model.Attendee
	for _, a := range s.attendees {
		if a.TableID != nil && *a.TableID == tableID && a.ID != excludeID {
			mates = append(mates, a)
		}
	}
	return mates
}

// BeginNotify atomically reserves email for notification. It returns false if
// the address was already notified or another notification for it is in
// flight; on true the caller must follow up with ConfirmNotify or AbortNotify.
func (s *Store) BeginNotify(email string) bool {
	key := normalize.Fold(email)
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.ledger[key]; exists {
		return false
	}
	s.ledger[key] = notifyPending
	return true
}

// ConfirmNotify marks a reserved email as successfully notified.
func (s *Store) ConfirmNotify(email string) {
	key := normalize.Fold(email)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ledger[key] = notifySent
}

// AbortNotify releases a reservation after a failed send, so the address can
// be retried later.
func (s *Store) AbortNotify(email string) {
	key := normalize.Fold(email)
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ledger[key] == notifyPending {
		delete(s.ledger, key)
	}
}

// WasNotified reports whether email has been successfully notified.
func (s *Store) WasNotified(email string) bool {
	key := normalize.Fold(email)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger[key] == notifySent
}

// Stats summarizes the directory for the status endpoint.
func (s *Store) Stats() model.Stats {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureCatalog()
	st := model.Stats{
		Attendees: len(s.attendees),
		Tables:    len(s.tables),
	}
	for _, a := range s.attendees {
		if a.Assigned() {
			st.Assigned++
		}
	}
	for _, state := range s.ledger {
		if state == notifySent {
			st.Notified++
		}
	}
	return st
}
