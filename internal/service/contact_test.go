package service

import (
	"context"
	"errors"
	"testing"

	"aquaseal/internal/model"
)

// fakeSender records deliveries and can be told to fail
type fakeSender struct {
	calls int
	err   error
}

func (f *fakeSender) Send(ctx context.Context, req *model.ContactRequest) error {
	f.calls++
	return f.err
}

// fakeLog records persisted submissions
type fakeLog struct {
	subs []model.ContactSubmission
	err  error
}

func (f *fakeLog) InsertSubmission(ctx context.Context, sub *model.ContactSubmission) error {
	if f.err != nil {
		return f.err
	}
	f.subs = append(f.subs, *sub)
	return nil
}

func validRequest() *model.ContactRequest {
	return &model.ContactRequest{
		Name:    "Maria Ivanova",
		Phone:   "+359 88 123 4567",
		Email:   "maria@example.com",
		Service: "flat-roof",
		Message: "Leaking roof after the storm",
	}
}

func TestSubmit_MissingFieldsNeverReachSender(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.ContactRequest)
		fields []string
	}{
		{"empty phone", func(r *model.ContactRequest) { r.Phone = "" }, []string{"phone"}},
		{"whitespace name", func(r *model.ContactRequest) { r.Name = "   " }, []string{"name"}},
		{"empty service", func(r *model.ContactRequest) { r.Service = "" }, []string{"service"}},
		{"everything empty", func(r *model.ContactRequest) { *r = model.ContactRequest{} }, []string{"name", "phone", "service"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sender := &fakeSender{}
			svc := NewContactService(sender, nil)

			req := validRequest()
			tt.mutate(req)

			err := svc.Submit(context.Background(), req)

			var missing *model.MissingFieldsError
			if !errors.As(err, &missing) {
				t.Fatalf("error = %v, want MissingFieldsError", err)
			}
			if len(missing.Fields) != len(tt.fields) {
				t.Fatalf("fields = %v, want %v", missing.Fields, tt.fields)
			}
			for i, f := range tt.fields {
				if missing.Fields[i] != f {
					t.Errorf("fields = %v, want %v", missing.Fields, tt.fields)
				}
			}
			if sender.calls != 0 {
				t.Errorf("sender invoked %d times for an invalid submission, want 0", sender.calls)
			}
		})
	}
}

func TestSubmit_DeliveryFailureSurfaces(t *testing.T) {
	sender := &fakeSender{err: ErrDeliveryFailed}
	log := &fakeLog{}
	svc := NewContactService(sender, log)

	err := svc.Submit(context.Background(), validRequest())
	if !errors.Is(err, ErrDeliveryFailed) {
		t.Fatalf("error = %v, want ErrDeliveryFailed", err)
	}
	if len(log.subs) != 0 {
		t.Error("failed deliveries must not be persisted")
	}
}

func TestSubmit_SuccessPersistsSubmission(t *testing.T) {
	sender := &fakeSender{}
	log := &fakeLog{}
	svc := NewContactService(sender, log)

	if err := svc.Submit(context.Background(), validRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sender.calls != 1 {
		t.Errorf("sender invoked %d times, want 1", sender.calls)
	}
	if len(log.subs) != 1 {
		t.Fatalf("persisted %d submissions, want 1", len(log.subs))
	}
	sub := log.subs[0]
	if sub.ID == "" || sub.ReceivedAt.IsZero() {
		t.Errorf("submission missing identity or timestamp: %+v", sub)
	}
	if sub.Name != "Maria Ivanova" || sub.Phone != "+359 88 123 4567" || sub.Service != "flat-roof" {
		t.Errorf("submission fields not carried over: %+v", sub)
	}
}

func TestSubmit_PersistenceFailureIsNotSurfaced(t *testing.T) {
	sender := &fakeSender{}
	log := &fakeLog{err: errors.New("db down")}
	svc := NewContactService(sender, log)

	// The visitor's message is already out the door; a broken audit log
	// must not turn the submission into an error.
	if err := svc.Submit(context.Background(), validRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sender.calls != 1 {
		t.Errorf("sender invoked %d times, want 1", sender.calls)
	}
}

func TestSubmit_NilLogDisablesPersistence(t *testing.T) {
	sender := &fakeSender{}
	svc := NewContactService(sender, nil)

	if err := svc.Submit(context.Background(), validRequest()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sender.calls != 1 {
		t.Errorf("sender invoked %d times, want 1", sender.calls)
	}
}
