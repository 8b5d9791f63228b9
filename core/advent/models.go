package advent

import (
	"github.com/go-playground/validator/v10"

	"github.com/miasteczkole/backend/core"
)

type (
	// Registration is a parent's advent calendar sign-up. Immutable once stored.
	Registration struct {
		ParentName string `json:"parent_name" validate:"required"`
		ChildName  string `json:"child_name" validate:"required"`
		// free-form; any non-empty value is accepted
		Phone string `json:"phone" validate:"required"`
		Email      string `json:"email" validate:"required,email"`
		Consent    *bool  `json:"consent"`
		Source     string `json:"source"`
	}

	// Submission is a per-day answer. The email is only checked for syntax;
	// it is not matched against an existing Registration.
	Submission struct {
		Email     string `json:"email" validate:"required,email"`
		Day       int    `json:"day" validate:"required,min=1,max=24"`
		Answer    string `json:"answer,omitempty"`
		ChildName string `json:"child_name,omitempty"`
	}
)

func (r *Registration) Validate(validate *validator.Validate) error {
	r.ParentName = core.CleanString(r.ParentName)
	r.ChildName = core.CleanString(r.ChildName)
	r.Phone = core.CleanString(r.Phone)
	r.Email = core.CleanString(r.Email, true /* lower */)
	if r.Consent == nil {
		consent := true
		r.Consent = &consent
	}
	if r.Source == "" {
		r.Source = "web"
	}
	return validate.Struct(r)
}

func (s *Submission) Validate(validate *validator.Validate) error {
	s.Email = core.CleanString(s.Email, true /* lower */)
	s.Answer = core.CleanString(s.Answer)
	s.ChildName = core.CleanString(s.ChildName)
	return validate.Struct(s)
}
