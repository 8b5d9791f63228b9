package advent

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/miasteczkole/backend/core"
)

// Store collection identifiers.
const (
	RegistrationCollection = "adventregistration"
	SubmissionCollection   = "adventsubmission"
)

// User-facing response texts (Polish, the frontend shows them verbatim).
const (
	msgRegistrationSaved = "Zapisano zgłoszenie. "
	msgEmailSent         = "Wysłano potwierdzenie e-mail."
	msgEmailNotSent      = "Wiadomość e-mail nie została wysłana automatycznie. " +
		"Skonfiguruj EmailJS (template: advent_registration)."
	msgSubmissionSaved = "Dziękujemy! Zapisano odpowiedź."
)

type (
	// Result is the workflow outcome surfaced to the caller. Status stays "ok"
	// even when notification delivery failed; only Message reflects it.
	Result struct {
		Status  string `json:"status"`
		Message string `json:"message"`
	}

	// Service runs the advent calendar workflows.
	Service struct {
		store    core.DocumentStore
		notifier core.Notifier
		conf     *core.Config
		now      func() time.Time
	}
)

func NewService(store core.DocumentStore, notifier core.Notifier, conf *core.Config) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		conf:     conf,
		now:      time.Now,
	}
}

// NewServiceMock returns a Service pinned to a fixed clock; tests only.
func NewServiceMock(store core.DocumentStore, notifier core.Notifier, conf *core.Config, now func() time.Time) *Service {
	svc := NewService(store, notifier, conf)
	svc.now = now
	return svc
}

// Register persists the registration and notifies the parent and the school.
// Persistence failure is the only error path; failed notifications degrade to
// an alternate response message.
func (svc *Service) Register(ctx context.Context, reg Registration) (Result, error) {
	if _, err := svc.store.Insert(ctx, RegistrationCollection, reg); err != nil {
		return Result{}, errors.Wrap(err, "saving registration")
	}

	subject := svc.conf.SchoolName + " – Potwierdzenie zgłoszenia do Kalendarza Adwentowego"
	parentRes := svc.notifier.Send(svc.conf.Email.TemplateReg, core.TemplateParams{
		"to_email":    reg.Email,
		"to_name":     reg.ParentName,
		"child_name":  reg.ChildName,
		"subject":     subject,
		"school_name": svc.conf.SchoolName,
	})

	schoolRes := svc.notifier.Send(svc.conf.Email.TemplateReg, core.TemplateParams{
		"to_email":    svc.conf.SchoolEmail,
		"to_name":     "Sekretariat",
		"parent_name": reg.ParentName,
		"child_name":  reg.ChildName,
		"phone":       reg.Phone,
		"email":       reg.Email,
		"subject":     "Nowa rejestracja – " + reg.ChildName,
		"school_name": svc.conf.SchoolName,
	})

	msg := msgRegistrationSaved
	if parentRes.Sent && schoolRes.Sent {
		msg += msgEmailSent
	} else {
		msg += msgEmailNotSent
	}
	return Result{Status: "ok", Message: msg}, nil
}

// Submit persists a day's answer; no notification is sent for submissions.
// Handlers validate the day at the boundary, but the service refuses an
// out-of-range day on its own so it is safe from any caller.
func (svc *Service) Submit(ctx context.Context, sub Submission) (Result, error) {
	if sub.Day < FirstDay || sub.Day > LastDay {
		err := errors.Errorf("day must be between %d and %d", FirstDay, LastDay)
		return Result{}, core.NewValidationError(err, core.FieldError{Field: "day", Error: err.Error()})
	}
	if _, err := svc.store.Insert(ctx, SubmissionCollection, sub); err != nil {
		return Result{}, errors.Wrap(err, "saving submission")
	}
	return Result{Status: "ok", Message: msgSubmissionSaved}, nil
}

// Days returns the calendar state at the service clock's current time.
func (svc *Service) Days() ([]Day, int) {
	return Days(svc.now())
}
