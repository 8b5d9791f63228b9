package advent

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"

	"github.com/miasteczkole/backend/core"
	emailsvc "github.com/miasteczkole/backend/services/email"
	docstore "github.com/miasteczkole/backend/storage/document"
)

func testConfig() *core.Config {
	return &core.Config{
		TestMode:    true,
		SchoolName:  "Przedszkole Miasteczkole",
		SchoolEmail: "info@miasteczkole.pl",
		Email:       core.EmailConfig{TemplateReg: "advent_registration"},
	}
}

// failingStore simulates an unreachable document store.
type failingStore struct{}

var errStoreDown = errors.New("store unreachable")

func (failingStore) Insert(context.Context, string, interface{}) (string, error) {
	return "", errStoreDown
}
func (failingStore) List(context.Context, string) ([]core.Document, error) { return nil, errStoreDown }
func (failingStore) Collections(context.Context) ([]string, error)         { return nil, errStoreDown }
func (failingStore) Ping(context.Context) error                            { return errStoreDown }

func TestService_Register(t *testing.T) {
	ctx := context.Background()
	reg := validRegistration()

	t.Run("both notifications sent", func(t *testing.T) {
		store := docstore.NewInMemStore()
		notifier := emailsvc.NewMockService()
		svc := NewService(store, notifier, testConfig())

		res, err := svc.Register(ctx, reg)
		if err != nil {
			t.Fatalf("Register(): %v", err)
		}
		if res.Status != "ok" {
			t.Errorf("Status = %q; want %q", res.Status, "ok")
		}
		if !strings.Contains(res.Message, "Wysłano potwierdzenie e-mail.") {
			t.Errorf("Message = %q; want email-sent confirmation", res.Message)
		}

		docs, err := store.List(ctx, RegistrationCollection)
		if err != nil {
			t.Fatalf("List(): %v", err)
		}
		if len(docs) != 1 {
			t.Fatalf("len(docs) = %v; want 1", len(docs))
		}
		if got := docs[0].Data["parent_name"]; got != reg.ParentName {
			t.Errorf("stored parent_name = %v; want %v", got, reg.ParentName)
		}

		if len(notifier.Sent) != 2 {
			t.Fatalf("len(notifier.Sent) = %v; want 2", len(notifier.Sent))
		}
		parent, school := notifier.Sent[0], notifier.Sent[1]
		if parent.Template != "advent_registration" {
			t.Errorf("parent template = %q; want %q", parent.Template, "advent_registration")
		}
		if got := parent.Params["to_email"]; got != reg.Email {
			t.Errorf("parent to_email = %v; want %v", got, reg.Email)
		}
		if got := school.Params["to_email"]; got != "info@miasteczkole.pl" {
			t.Errorf("school to_email = %v; want school mailbox", got)
		}
		if got, _ := school.Params["subject"].(string); !strings.Contains(got, reg.ChildName) {
			t.Errorf("school subject = %q; want child name in it", got)
		}
	})

	t.Run("notification failure degrades message only", func(t *testing.T) {
		store := docstore.NewInMemStore()
		notifier := emailsvc.NewMockService()
		notifier.Fail = true
		svc := NewService(store, notifier, testConfig())

		res, err := svc.Register(ctx, reg)
		if err != nil {
			t.Fatalf("Register(): %v", err)
		}
		if res.Status != "ok" {
			t.Errorf("Status = %q; want %q even on failed sends", res.Status, "ok")
		}
		if !strings.Contains(res.Message, "nie została wysłana automatycznie") {
			t.Errorf("Message = %q; want degraded notice", res.Message)
		}

		// the registration must still be persisted
		docs, _ := store.List(ctx, RegistrationCollection)
		if len(docs) != 1 {
			t.Errorf("len(docs) = %v; want 1", len(docs))
		}
	})

	t.Run("persistence failure propagates", func(t *testing.T) {
		notifier := emailsvc.NewMockService()
		svc := NewService(failingStore{}, notifier, testConfig())

		if _, err := svc.Register(ctx, reg); errors.Cause(err) != errStoreDown {
			t.Errorf("Register() error = %v; want %v", err, errStoreDown)
		}
		if len(notifier.Sent) != 0 {
			t.Errorf("len(notifier.Sent) = %v; want 0 when persistence fails", len(notifier.Sent))
		}
	})
}

func TestService_Submit(t *testing.T) {
	ctx := context.Background()
	store := docstore.NewInMemStore()
	notifier := emailsvc.NewMockService()
	svc := NewService(store, notifier, testConfig())

	sub := Submission{Email: "anna@test.pl", Day: 5, Answer: "5 choinek", ChildName: "Jaś"}
	res, err := svc.Submit(ctx, sub)
	if err != nil {
		t.Fatalf("Submit(): %v", err)
	}
	if res.Status != "ok" || res.Message != "Dziękujemy! Zapisano odpowiedź." {
		t.Errorf("Result = %+v; want ok + fixed confirmation", res)
	}

	docs, err := store.List(ctx, SubmissionCollection)
	if err != nil {
		t.Fatalf("List(): %v", err)
	}
	if len(docs) != 1 {
		t.Fatalf("len(docs) = %v; want 1", len(docs))
	}
	if got := docs[0].Data["day"]; got != float64(5) {
		t.Errorf("stored day = %v; want 5", got)
	}

	// no notification for submissions
	if len(notifier.Sent) != 0 {
		t.Errorf("len(notifier.Sent) = %v; want 0", len(notifier.Sent))
	}

	if _, err = NewService(failingStore{}, notifier, testConfig()).Submit(ctx, sub); err == nil {
		t.Error("Submit() = nil; want error on persistence failure")
	}

	// the service refuses an out-of-range day even without handler validation
	for _, day := range []int{0, 25} {
		_, err = svc.Submit(ctx, Submission{Email: "anna@test.pl", Day: day})
		vErr, ok := errors.Cause(err).(*core.ValidationError)
		if !ok {
			t.Fatalf("Submit(day=%d) error = %v; want *core.ValidationError", day, err)
		}
		if len(vErr.Fields) != 1 || vErr.Fields[0].Field != "day" {
			t.Errorf("Submit(day=%d) fields = %+v; want day field error", day, vErr.Fields)
		}
	}
	if docs, _ := store.List(ctx, SubmissionCollection); len(docs) != 1 {
		t.Errorf("len(docs) = %v; want rejected submissions unsaved", len(docs))
	}
}

func TestService_Days(t *testing.T) {
	svc := NewServiceMock(docstore.NewInMemStore(), emailsvc.NewMockService(), testConfig(), func() time.Time {
		return date(2025, time.December, 10)
	})

	days, unlocked := svc.Days()
	if unlocked != 10 {
		t.Errorf("unlocked = %v; want 10", unlocked)
	}
	if len(days) != LastDay {
		t.Errorf("len(days) = %v; want %v", len(days), LastDay)
	}
}
