package service

import (
	"context"
	"time"

	"aquaseal/internal/logging"
	"aquaseal/internal/model"

	"github.com/google/uuid"
)

// SubmissionLog records delivered submissions. Optional: a nil log disables
// persistence without changing delivery behavior.
type SubmissionLog interface {
	InsertSubmission(ctx context.Context, sub *model.ContactSubmission) error
}

// ContactService validates contact form submissions and forwards them to the
// outbound sender
type ContactService struct {
	sender Sender
	log    SubmissionLog
}

// NewContactService creates a new contact service. log may be nil.
func NewContactService(sender Sender, log SubmissionLog) *ContactService {
	return &ContactService{sender: sender, log: log}
}

// Submit validates and delivers one submission. Required fields missing
// yields MissingFieldsError without touching the sender; a sender failure
// surfaces as ErrDeliveryFailed. Persistence is best-effort: once the
// notification is out, a logging failure is not reported to the visitor.
func (s *ContactService) Submit(ctx context.Context, req *model.ContactRequest) error {
	if missing := req.MissingFields(); len(missing) > 0 {
		return &model.MissingFieldsError{Fields: missing}
	}

	if err := s.sender.Send(ctx, req); err != nil {
		return err
	}

	if s.log != nil {
		sub := &model.ContactSubmission{
			ID:         uuid.NewString(),
			Name:       req.Name,
			Phone:      req.Phone,
			Email:      req.Email,
			Service:    req.Service,
			AreaSqm:    req.AreaSqm,
			Message:    req.Message,
			ReceivedAt: time.Now().UTC(),
		}
		if err := s.log.InsertSubmission(ctx, sub); err != nil {
			logging.Sugar.Warnf("Failed to persist contact submission %s: %v", sub.ID, err)
		}
	}

	return nil
}
