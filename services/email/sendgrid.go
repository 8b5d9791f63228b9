package emailsvc

import (
	"fmt"
	"net/http"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/miasteczkole/backend/core"
)

var (
	sendgridHost     = "https://api.sendgrid.com"
	sendgridEndpoint = "/v3/mail/send"
)

// sendgridService is an alternative Notifier backend using sendgrid dynamic
// templates; the template parameter carries the dynamic template id.
type sendgridService struct {
	key    string
	from   *sgmail.Email
	logger core.Logger
}

var _ core.Notifier = (*sendgridService)(nil)

func NewSendgridService(conf *core.Config, logger core.Logger) *sendgridService {
	return &sendgridService{
		key:    conf.Email.SendgridKey,
		from:   sgmail.NewEmail(conf.SchoolName, conf.FromEmail),
		logger: logger,
	}
}

func (svc *sendgridService) Send(template string, params core.TemplateParams) core.SendResult {
	if svc.key == "" {
		return core.SendResult{}
	}

	p := sgmail.NewPersonalization()
	for k, v := range params {
		p.SetDynamicTemplateData(k, v)
	}
	to, _ := params["to_email"].(string)
	if to == "" {
		return core.SendResult{}
	}
	name, _ := params["to_name"].(string)
	p.AddTos(sgmail.NewEmail(name, to))

	m := sgmail.NewV3Mail()
	m.SetFrom(svc.from)
	m.SetTemplateID(template)
	m.AddPersonalizations(p)

	req := sendgrid.GetRequest(svc.key, sendgridEndpoint, sendgridHost)
	req.Method = http.MethodPost
	req.Body = sgmail.GetRequestBody(m)

	res, err := sendgrid.API(req)
	if err != nil {
		svc.logger.Error(fmt.Sprintf("sending email: %v", err), err)
		return core.SendResult{}
	}
	if res.StatusCode >= http.StatusBadRequest {
		svc.logger.Error(fmt.Sprintf("sending email - status: %d - body: %s", res.StatusCode, res.Body))
		return core.SendResult{}
	}
	return core.SendResult{Sent: true}
}
