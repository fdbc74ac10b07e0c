package usecase

import (
	"context"

	"github.com/shandysiswandi/formguard/internal/identity/entity"
)

type RegistrationInput struct {
	Email           string
	Firstname       string
	Lastname        string
	Phone           string
	Password        string
	ConfirmPassword string
	PinKey          string
}

func (in RegistrationInput) values() map[string]string {
	return map[string]string{
		"email":            in.Email,
		"firstname":        in.Firstname,
		"lastname":         in.Lastname,
		"phone":            in.Phone,
		"password":         in.Password,
		"confirm_password": in.ConfirmPassword,
		"pin_key":          in.PinKey,
	}
}

// Register validates a registration submission.
func (s *Usecase) Register(ctx context.Context, in RegistrationInput) (entity.Result, error) {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	return s.validate(ctx, entity.FormRegistration, in.values())
}
