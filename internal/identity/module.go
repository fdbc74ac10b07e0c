package identity

import (
	"github.com/shandysiswandi/formguard/internal/identity/inbound"
	"github.com/shandysiswandi/formguard/internal/identity/outbound/mq"
	"github.com/shandysiswandi/formguard/internal/identity/usecase"
	"github.com/shandysiswandi/formguard/internal/pkg/clock"
	"github.com/shandysiswandi/formguard/internal/pkg/config"
	"github.com/shandysiswandi/formguard/internal/pkg/goroutine"
	"github.com/shandysiswandi/formguard/internal/pkg/instrument"
	"github.com/shandysiswandi/formguard/internal/pkg/messaging"
	"github.com/shandysiswandi/formguard/internal/pkg/router"
	"github.com/shandysiswandi/formguard/internal/pkg/validator"
)

type Dependency struct {
	Goroutine  *goroutine.Manager         `validate:"required"`
	Router     *router.Router             `validate:"required"`
	Messaging  messaging.Messaging        `validate:"required"`
	Config     config.Config              `validate:"required"`
	Instrument instrument.Instrumentation `validate:"required"`
	Clock      clock.Clocker              `validate:"required"`
	Validator  validator.Validator        `validate:"required"`
}

func New(dep Dependency) error {
	if err := dep.Validator.Validate(dep); err != nil {
		return err
	}

	repoMsg := mq.NewMessaging(dep.Messaging, dep.Instrument, dep.Config.GetString("modules.identity.event_destination"))

	uc := usecase.New(usecase.Dependency{
		RepoMessaging: repoMsg,
		Validator:     dep.Validator,
		Config:        dep.Config,
		Clock:         dep.Clock,
		Instrument:    dep.Instrument,
		Goroutine:     dep.Goroutine,
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc)

	return nil
}
