package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/galaevents/seating-service/internal/directory"
	"github.com/galaevents/seating-service/internal/mailer"
	"github.com/galaevents/seating-service/internal/model"
	"github.com/galaevents/seating-service/internal/render"
	"github.com/galaevents/seating-service/internal/search"
)

// Typed negative outcomes for Lookup; handlers map these to status codes.
var (
	ErrMissingQuery   = errors.New("name and email are required")
	ErrNotFound       = errors.New("no attendee matches that name and email")
	ErrNotDrawn       = errors.New("the seating draw has not been performed yet")
	ErrTableIntegrity = errors.New("attendee references a table that does not exist")
)

// SeatingService glues the directory store, the search resolver and the mail
// dispatcher together.
type SeatingService struct {
	store     *directory.Store
	mail      mailer.Mailer
	from      string
	sendDelay time.Duration
	log       *zap.SugaredLogger
}

// NewSeatingService returns SeatingService. sendDelay paces the bulk loop.
func NewSeatingService(store *directory.Store, mail mailer.Mailer, from string, sendDelay time.Duration, log *zap.SugaredLogger) *SeatingService {
	return &SeatingService{store: store, mail: mail, from: from, sendDelay: sendDelay, log: log}
}

// LookupResult is everything a search response needs: the resolved assignment,
// the full table collection for the hall sketch, and whether the attendee's
// notification has gone out (now or earlier).
type LookupResult struct {
	Assignment model.Assignment
	AllTables  []model.Table
	EmailSent  bool
}

// Lookup resolves one attendee by name and email. The first lookup of the
// process triggers the draw; a successful resolution triggers a first-time
// notification, whose failure is logged but never fails the lookup.
func (s *SeatingService) Lookup(ctx context.Context, name, email string) (*LookupResult, error) {
	if name == "" || email == "" {
		return nil, ErrMissingQuery
	}

	if err := s.store.EnsureDrawn(); err != nil {
		return nil, err
	}

	attendee := search.Find(s.store.Attendees(), name, email)
	if attendee == nil {
		return nil, ErrNotFound
	}
	if !attendee.Assigned() {
		return nil, ErrNotDrawn
	}

	asg, err := s.resolveAssignment(*attendee)
	if err != nil {
		return nil, err
	}

	if delivered, err := s.NotifyOne(ctx, asg); err != nil {
		s.log.Warnf("notification for %s failed: %v", attendee.Email, err)
	} else if delivered {
		s.log.Infof("notified %s", attendee.Email)
	}

	return &LookupResult{
		Assignment: asg,
		AllTables:  s.store.Tables(),
		EmailSent:  s.store.WasNotified(attendee.Email),
	}, nil
}

// resolveAssignment builds the (attendee, table, tablemates) triple with
// tablemates sorted by seat.
func (s *SeatingService) resolveAssignment(a model.Attendee) (model.Assignment, error) {
	table, ok := s.store.TableByID(*a.TableID)
	if !ok {
		return model.Assignment{}, ErrTableIntegrity
	}
	mates := s.store.Tablemates(table.ID, a.ID)
	sort.Slice(mates, func(i, j int) bool {
		si, sj := 0, 0
		if mates[i].Seat != nil {
			si = *mates[i].Seat
		}
		if mates[j].Seat != nil {
			sj = *mates[j].Seat
		}
		return si < sj
	})
	return model.Assignment{Attendee: a, Table: table, Tablemates: mates}, nil
}

// RunDraw reshuffles the whole seating and returns the assigned count.
func (s *SeatingService) RunDraw(_ context.Context) (int, error) {
	n, err := s.store.RunDraw()
	if err != nil {
		return 0, err
	}
	s.log.Infof("draw complete, %d attendees assigned", n)
	return n, nil
}

// NotifyOne sends the assignment email unless the ledger says it already went
// out. It returns whether a delivery actually happened on this call; the
// ledger entry is only kept on success, so a failed send can be retried.
func (s *SeatingService) NotifyOne(ctx context.Context, asg model.Assignment) (bool, error) {
	email := asg.Attendee.Email
	if !s.store.BeginNotify(email) {
		return false, nil
	}
	msg := mailer.Message{
		From:    s.from,
		To:      email,
		Subject: render.Subject(asg),
		Text:    render.Body(asg, s.store.Tables()),
	}
	if err := s.mail.Send(ctx, msg); err != nil {
		s.store.AbortNotify(email)
		return false, err
	}
	s.store.ConfirmNotify(email)
	return true, nil
}

// NotifyAll walks the whole directory and sends every pending notification,
// paced by the configured delay. Individual failures are recorded and never
// abort the batch; attendees without a seat and already-notified addresses are
// counted separately. Context cancellation stops the loop between sends.
func (s *SeatingService) NotifyAll(ctx context.Context) (model.BatchReport, error) {
	attendees := s.store.Attendees()
	report := model.BatchReport{
		BatchID: uuid.NewString(),
		Total:   len(attendees),
		SentAt:  time.Now(),
	}
	limiter := rate.NewLimiter(rate.Every(s.sendDelay), 1)

	for _, a := range attendees {
		if err := limiter.Wait(ctx); err != nil {
			s.log.Warnf("bulk notification %s interrupted: %v", report.BatchID, err)
			return report, err
		}
		if !a.Assigned() {
			report.Failed++
			report.RecordError(a.Email + ": no seat assigned")
			continue
		}
		asg, err := s.resolveAssignment(a)
		if err != nil {
			report.Failed++
			report.RecordError(a.Email + ": " + err.Error())
			continue
		}
		delivered, err := s.NotifyOne(ctx, asg)
		switch {
		case err != nil:
			report.Failed++
			report.RecordError(a.Email + ": " + err.Error())
		case delivered:
			report.Sent++
		default:
			report.Skipped++
		}
	}

	s.log.Infof("bulk notification %s: %d sent, %d skipped, %d failed of %d",
		report.BatchID, report.Sent, report.Skipped, report.Failed, report.Total)
	return report, nil
}

// Stats exposes directory totals for the status endpoint.
func (s *SeatingService) Stats() model.Stats {
	return s.store.Stats()
}
