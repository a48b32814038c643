// Package mailer delivers notification emails. The core never depends on a
// concrete transport: it hands a Message to a Mailer and records the outcome.
package mailer

import (
	"context"

	"go.uber.org/zap"
)

// Message is one outbound email, plain text only.
type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

// Mailer attempts delivery of a single message. Implementations do not retry;
// the caller decides whether a failure is fatal or just recorded.
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// Simulator logs instead of sending. It is selected when no API key is
// configured, so local runs behave like production minus the delivery.
type Simulator struct {
	log *zap.SugaredLogger
}

// NewSimulator returns a Mailer that always succeeds.
func NewSimulator(log *zap.SugaredLogger) *Simulator {
	return &Simulator{log: log}
}

func (s *Simulator) Send(_ context.Context, msg Message) error {
	s.log.Infof("simulated email to %s: %s", msg.To, msg.Subject)
	return nil
}
