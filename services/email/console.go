package emailsvc

import (
	"fmt"
	"log"
	"sort"
	"strings"
	"sync"

	"github.com/miasteczkole/backend/core"
)

// Notification is a recorded Send call.
type Notification struct {
	Template string
	Params   core.TemplateParams
}

// consoleService prints notifications instead of delivering them; DEV only.
type consoleService struct {
	schoolName string
}

var _ core.Notifier = (*consoleService)(nil)

func NewConsoleService(conf *core.Config) *consoleService {
	return &consoleService{schoolName: conf.SchoolName}
}

func (svc *consoleService) Send(template string, params core.TemplateParams) core.SendResult {
	body := new(strings.Builder)
	_, _ = fmt.Fprintf(body, "email notification [%s] - template: %s\r\n", svc.schoolName, template)

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		_, _ = fmt.Fprintf(body, "  %s: %v\r\n", k, params[k])
	}

	log.Print(body.String())
	return core.SendResult{Sent: true}
}

// MockService records notifications synchronously; tests only.
// Set Fail to simulate a provider that rejects every send.
type MockService struct {
	mu   sync.Mutex
	Fail bool
	Sent []Notification
}

var _ core.Notifier = (*MockService)(nil)

func NewMockService() *MockService {
	return &MockService{Sent: make([]Notification, 0)}
}

func (svc *MockService) Send(template string, params core.TemplateParams) core.SendResult {
	svc.mu.Lock()
	defer svc.mu.Unlock()
	if svc.Fail {
		return core.SendResult{}
	}
	svc.Sent = append(svc.Sent, Notification{Template: template, Params: params})
	return core.SendResult{Sent: true}
}
