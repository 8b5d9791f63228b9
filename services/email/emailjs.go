package emailsvc

import (
	"fmt"
	"net/http"

	"github.com/go-resty/resty/v2"

	"github.com/miasteczkole/backend/core"
)

var (
	emailjsHost     = "https://api.emailjs.com"
	emailjsEndpoint = "/api/v1.0/email/send"
)

type emailjsService struct {
	client     *resty.Client
	serviceID  string
	publicKey  string
	privateKey string
	logger     core.Logger
}

var _ core.Notifier = (*emailjsService)(nil)

func NewEmailJSService(conf *core.Config, logger core.Logger) *emailjsService {
	return &emailjsService{
		client:     resty.New().SetBaseURL(emailjsHost).SetTimeout(conf.Email.Timeout),
		serviceID:  conf.Email.ServiceID,
		publicKey:  conf.Email.PublicKey,
		privateKey: conf.Email.PrivateKey,
		logger:     logger,
	}
}

type emailjsRequest struct {
	ServiceID      string              `json:"service_id"`
	TemplateID     string              `json:"template_id"`
	UserID         string              `json:"user_id"`
	AccessToken    string              `json:"accessToken"`
	TemplateParams core.TemplateParams `json:"template_params"`
}

// Send posts a single templated notification to the provider. Transport
// failures, timeouts and non 200/202 statuses all degrade to Sent == false;
// so does a missing private key, without attempting the call.
func (svc *emailjsService) Send(template string, params core.TemplateParams) core.SendResult {
	if svc.privateKey == "" {
		return core.SendResult{}
	}

	res, err := svc.client.R().
		SetBody(emailjsRequest{
			ServiceID:      svc.serviceID,
			TemplateID:     template,
			UserID:         svc.publicKey,
			AccessToken:    svc.privateKey,
			TemplateParams: params,
		}).
		Post(emailjsEndpoint)
	if err != nil {
		svc.logger.Error(fmt.Sprintf("sending email: %v", err), err)
		return core.SendResult{}
	}
	if code := res.StatusCode(); code != http.StatusOK && code != http.StatusAccepted {
		svc.logger.Error(fmt.Sprintf("sending email - status: %d - body: %s", code, res.Body()))
		return core.SendResult{}
	}
	return core.SendResult{Sent: true}
}
