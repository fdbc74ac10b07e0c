package validator

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/samber/lo"
	"github.com/shandysiswandi/formguard/internal/pkg/strcase"
)

// ErrTranslatorNotFound indicates the requested translator is unavailable.
var ErrTranslatorNotFound = errors.New("translator not found")

// V10Validator implements Validator using go-playground/validator v10.
type V10Validator struct {
	validate   *validator.Validate
	translator ut.Translator
	renderers  map[string]renderFunc
}

// V10FieldError describes one failed rule.
type V10FieldError struct {
	// Field is the snake_case field key.
	Field string `json:"field"`
	// Tag is the rule that failed, e.g. "required" or "phone".
	Tag string `json:"tag"`
	// Param is the rule parameter, if any.
	Param string `json:"param,omitempty"`
	// Message is the translated, user-facing message.
	Message string `json:"message"`
}

// V10ValidationError is the list of failed fields returned when validation fails.
//
// Field keys are in snake_case to match typical JSON conventions.
type V10ValidationError []V10FieldError

// Error implements the error interface.
func (vs V10ValidationError) Error() string {
	if len(vs) == 0 {
		return "validation error"
	}

	b, err := json.Marshal(vs.Values())
	if err != nil {
		return fmt.Sprintf("validation error (failed to marshal: %v)", err)
	}
	return string(b)
}

// Values returns the field error map.
func (vs V10ValidationError) Values() map[string]string {
	return lo.SliceToMap(vs, func(fe V10FieldError) (string, string) {
		return fe.Field, fe.Message
	})
}

// NewV10Validator constructs a V10Validator with English translations and custom rules.
func NewV10Validator() (*V10Validator, error) {
	validate := validator.New(validator.WithRequiredStructEnabled())

	enLang := en.New()
	uni := ut.New(enLang, enLang)
	enTrans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, ErrTranslatorNotFound
	}

	if err := enTranslations.RegisterDefaultTranslations(validate, enTrans); err != nil {
		return nil, err
	}

	renderers, err := v10CustomValidation(validate, enTrans)
	if err != nil {
		return nil, err
	}

	return &V10Validator{
		validate:   validate,
		translator: enTrans,
		renderers:  renderers,
	}, nil
}

// Validate validates a struct and returns a V10ValidationError on failure.
func (v *V10Validator) Validate(data any) error {
	if err := v.validate.Struct(data); err != nil {
		var validateErrs validator.ValidationErrors
		if !errors.As(err, &validateErrs) {
			return err
		}

		errV10 := make(V10ValidationError, 0, len(validateErrs))
		for _, fe := range validateErrs {
			errV10 = append(errV10, V10FieldError{
				Field:   strcase.ToLowerSnake(fe.Field()),
				Tag:     fe.Tag(),
				Param:   fe.Param(),
				Message: fe.Translate(v.translator),
			})
		}

		return errV10
	}

	return nil
}

// ValidateField validates a single value and returns a V10ValidationError
// holding exactly one entry on failure.
func (v *V10Validator) ValidateField(f Field) error {
	var err error
	if f.Other != nil {
		err = v.validate.VarWithValue(f.Value, f.Other, f.Rules)
	} else {
		err = v.validate.Var(f.Value, f.Rules)
	}
	if err == nil {
		return nil
	}

	var validateErrs validator.ValidationErrors
	if !errors.As(err, &validateErrs) {
		return err
	}

	// Var stops at the first failing tag, so there is only one error.
	fe := validateErrs[0]
	param := fe.Param()
	if f.OtherName != "" {
		param = f.OtherName
	}

	return V10ValidationError{{
		Field:   f.Name,
		Tag:     fe.Tag(),
		Param:   fe.Param(),
		Message: v.render(fe.Tag(), f.Label, param, fe.Value()),
	}}
}

func (v *V10Validator) render(tag, label, param string, value any) string {
	if r, ok := v.renderers[tag]; ok {
		msg, err := r(v.translator, label, param, value)
		if err == nil {
			return msg
		}
		slog.Warn("warning: error translating", "tag", tag, "error", err)
	}

	msg, err := v.translator.T(tag, label, param)
	if err != nil {
		slog.Warn("warning: error translating", "tag", tag, "error", err)
		return fmt.Sprintf("%s failed on the '%s' rule", label, tag)
	}

	return msg
}
