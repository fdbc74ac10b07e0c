package inbound

import (
	"context"

	"github.com/shandysiswandi/formguard/internal/identity/entity"
	"github.com/shandysiswandi/formguard/internal/identity/usecase"
	"github.com/shandysiswandi/formguard/internal/pkg/router"
)

type uc interface {
	Validate(ctx context.Context, form entity.FormName, in map[string]string) (entity.Result, error)
	Register(ctx context.Context, in usecase.RegistrationInput) (entity.Result, error)
	Login(ctx context.Context, in usecase.LoginInput) (entity.Result, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	r.POST("/api/v1/identity/forms/:form/validate", end.Validate)
	r.POST("/api/v1/identity/register", end.Register)
	r.POST("/api/v1/identity/login", end.Login)
}
