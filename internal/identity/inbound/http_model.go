package inbound

import (
	"github.com/samber/lo"
	"github.com/shandysiswandi/formguard/internal/identity/entity"
)

type FieldResponse struct {
	Valid     bool   `json:"valid"`
	Violation string `json:"violation,omitempty"`
	Message   string `json:"message,omitempty"`
}

type ValidateResponse struct {
	Form   string                   `json:"form"`
	Valid  bool                     `json:"valid"`
	Fields map[string]FieldResponse `json:"fields"`
}

func (ValidateResponse) Message() string {
	return "Form has been validated"
}

func newValidateResponse(res entity.Result) ValidateResponse {
	return ValidateResponse{
		Form:  res.Form().String(),
		Valid: res.OK(),
		Fields: lo.MapValues(res.All(), func(fr entity.FieldResult, _ string) FieldResponse {
			if fr.IsValid() {
				return FieldResponse{Valid: true}
			}
			return FieldResponse{Violation: fr.Violation.String(), Message: fr.Message}
		}),
	}
}

type RegisterResponse struct{}

func (RegisterResponse) Message() string {
	return "Registration form is valid."
}

type LoginResponse struct{}

func (LoginResponse) Message() string {
	return "Login form is valid."
}
