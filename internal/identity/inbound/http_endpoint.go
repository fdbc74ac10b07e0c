package inbound

import (
	"log/slog"

	"github.com/shandysiswandi/formguard/internal/identity/entity"
	"github.com/shandysiswandi/formguard/internal/identity/usecase"
	"github.com/shandysiswandi/formguard/internal/pkg/goerror"
	"github.com/shandysiswandi/formguard/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for form validation.
type HTTPEndpoint struct {
	uc uc
}

// Validate runs every validator of a form and reports each field.
// @Summary Validate a form submission
// @Description Runs the validators of the named form (registration or login) and reports every field, valid ones included. Accepts a JSON object of strings or a URL-encoded form.
// @Tags Identity, Forms
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Param form path string true "Form name" Enums(registration, register, login)
// @Success 200 {object} router.successResponse{data=ValidateResponse} "Per-field outcome"
// @Failure 400 {object} router.errorResponse "Unknown form or invalid request body"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/forms/{form}/validate [post]
func (h *HTTPEndpoint) Validate(r *router.Request) (any, error) {
	form, err := entity.FormNameFromString(r.GetParam("form"))
	if err != nil {
		slog.WarnContext(r.Context(), "unknown form requested", "form", r.GetParam("form"))
		return nil, goerror.NewInvalidFormat("Unknown form")
	}

	fields, err := r.DecodeFields()
	if err != nil {
		return nil, err
	}

	res, err := h.uc.Validate(r.Context(), form, fields)
	if err != nil {
		return nil, err
	}

	return newValidateResponse(res), nil
}

// Register validates a registration submission.
// @Summary Validate a registration form
// @Description Validates email, names, phone, password, confirm_password and pin_key.
// @Tags Identity, Forms
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Success 200 {object} router.successResponse{data=RegisterResponse} "Registration form is valid."
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/register [post]
func (h *HTTPEndpoint) Register(r *router.Request) (any, error) {
	fields, err := r.DecodeFields()
	if err != nil {
		return nil, err
	}

	res, err := h.uc.Register(r.Context(), usecase.RegistrationInput{
		Email:           fields["email"],
		Firstname:       fields["firstname"],
		Lastname:        fields["lastname"],
		Phone:           fields["phone"],
		Password:        fields["password"],
		ConfirmPassword: fields["confirm_password"],
		PinKey:          fields["pin_key"],
	})
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return nil, goerror.NewInvalidFields(res.Errors())
	}

	return RegisterResponse{}, nil
}

// Login validates a login submission.
// @Summary Validate a login form
// @Description Validates email, password and pin_key presence and email syntax.
// @Tags Identity, Forms
// @Accept json,x-www-form-urlencoded
// @Produce json
// @Success 200 {object} router.successResponse{data=LoginResponse} "Login form is valid."
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 500 {object} router.errorResponse "Internal server error"
// @Router /api/v1/identity/login [post]
func (h *HTTPEndpoint) Login(r *router.Request) (any, error) {
	fields, err := r.DecodeFields()
	if err != nil {
		return nil, err
	}

	res, err := h.uc.Login(r.Context(), usecase.LoginInput{
		Email:    fields["email"],
		Password: fields["password"],
		PinKey:   fields["pin_key"],
	})
	if err != nil {
		return nil, err
	}
	if !res.OK() {
		return nil, goerror.NewInvalidFields(res.Errors())
	}

	return LoginResponse{}, nil
}
