package usecase

import (
	"context"

	"github.com/shandysiswandi/formguard/internal/identity/entity"
)

type LoginInput struct {
	Email    string
	Password string
	PinKey   string
}

func (in LoginInput) values() map[string]string {
	return map[string]string{
		"email":    in.Email,
		"password": in.Password,
		"pin_key":  in.PinKey,
	}
}

// Login validates a login submission.
func (s *Usecase) Login(ctx context.Context, in LoginInput) (entity.Result, error) {
	ctx, span := s.startSpan(ctx, "Login")
	defer span.End()

	return s.validate(ctx, entity.FormLogin, in.values())
}
