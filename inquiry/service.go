package inquiry

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/luxeestate/luxeestate_site/models"
)

// Service accepts inquiry submissions. No message ever leaves the process;
// acceptance is reported after a fixed artificial delay that stands in for
// transmission latency.
type Service struct {
	delay time.Duration
}

func NewService(delay time.Duration) *Service {
	return &Service{delay: delay}
}

// Receipt confirms an accepted submission.
type Receipt struct {
	Reference    string    `json:"reference"`
	ReceivedAt   time.Time `json:"receivedAt"`
	MessageChars int       `json:"messageChars"`
}

// Submit validates the form and, after the simulated delay, accepts it.
// On acceptance the form is reset to empty fields and a receipt is returned.
// A validation failure returns a *FieldError and leaves the form intact so the
// visitor can correct it. If ctx is cancelled mid-delay the pending acceptance
// is discarded and ctx's error is returned; nothing else observes the attempt.
func (s *Service) Submit(ctx context.Context, form *models.InquiryForm) (*Receipt, error) {
	if ferr := ValidateForm(form); ferr != nil {
		return nil, ferr
	}

	messageChars := len([]rune(form.Message))

	if s.delay > 0 {
		timer := time.NewTimer(s.delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	receipt := &Receipt{
		Reference:    uuid.NewString(),
		ReceivedAt:   time.Now(),
		MessageChars: messageChars,
	}
	form.Reset()
	return receipt, nil
}
