package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/miasteczkole/backend/core"
	"github.com/miasteczkole/backend/core/advent"
	emailsvc "github.com/miasteczkole/backend/services/email"
	docstore "github.com/miasteczkole/backend/storage/document"
)

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

// testClock pins the calendar to December 10.
func testClock() time.Time {
	return time.Date(2025, time.December, 10, 9, 0, 0, 0, time.UTC)
}

func testConfig() *core.Config {
	return &core.Config{
		TestMode:    true,
		AppName:     "Przedszkole Miasteczkole API",
		SchoolName:  "Przedszkole Miasteczkole",
		SchoolEmail: "info@miasteczkole.pl",
		FromEmail:   "no-reply@miasteczkole.pl",
		Server:      core.ServerConfig{Addr: ":0"},
		Email: core.EmailConfig{
			Timeout:     time.Second,
			ServiceID:   "miasteczkole",
			TemplateReg: "advent_registration",
		},
	}
}

func setup(t *testing.T) (*Server, *docstore.InMemStore, *emailsvc.MockService) {
	t.Helper()

	conf := testConfig()
	store := docstore.NewInMemStore()
	notifier := emailsvc.NewMockService()
	adventSvc := advent.NewServiceMock(store, notifier, conf, testClock)

	validate := validator.New()
	translator := newTranslator()
	core.InitValidators(validate, translator)

	server := NewServer(ServerDeps{
		Conf:       conf,
		Logger:     nopLogger{},
		AdventSvc:  adventSvc,
		Store:      store,
		Validate:   validate,
		Translator: translator,
	})
	return server, store, notifier
}

func newTranslator() ut.Translator {
	_en := en.New()
	uni := ut.New(_en, _en)
	translator, _ := uni.GetTranslator("en")
	return translator
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	return req, rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj(): %v", err)
	}
	return data
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("decoding body %q: %v", rec.Body.String(), err)
	}
}
