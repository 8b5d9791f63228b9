package core

// TemplateParams maps template variable names to their values; the notification
// provider renders them into a pre-defined email layout.
type TemplateParams map[string]interface{}

// SendResult is the explicit outcome of a notification attempt. Delivery
// failures never surface as errors; they degrade to Sent == false so callers
// are forced to handle the failure path in their response composition.
type SendResult struct {
	Sent bool
}

// Notifier is any service that can deliver a templated email notification.
// Implementations must never panic or block past their configured timeout;
// a missing configuration counts as a failed send.
type Notifier interface {
	Send(template string, params TemplateParams) SendResult
}
