package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/shandysiswandi/formguard/internal/identity/entity"
	"github.com/shandysiswandi/formguard/internal/pkg/clock"
	"github.com/shandysiswandi/formguard/internal/pkg/config"
	"github.com/shandysiswandi/formguard/internal/pkg/goroutine"
	"github.com/shandysiswandi/formguard/internal/pkg/instrument"
	"github.com/shandysiswandi/formguard/internal/pkg/validator"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// FormValidatedEvent summarises one submission. It never carries field values.
type FormValidatedEvent struct {
	Form        entity.FormName
	Valid       bool
	Violations  map[string]entity.Violation
	ValidatedAt time.Time
}

type repoMessaging interface {
	PublishFormValidated(ctx context.Context, msg FormValidatedEvent) error
}

type Usecase struct {
	repoMessaging repoMessaging
	validator     validator.Validator
	clock         clock.Clocker
	ins           instrument.Instrumentation
	goroutine     *goroutine.Manager
	forms         formTable

	submissions metric.Int64Counter
	violations  metric.Int64Counter
}

type Dependency struct {
	RepoMessaging repoMessaging
	Validator     validator.Validator
	Config        config.Config
	Clock         clock.Clocker
	Instrument    instrument.Instrumentation
	Goroutine     *goroutine.Manager
}

func New(dep Dependency) *Usecase {
	uc := &Usecase{
		repoMessaging: dep.RepoMessaging,
		validator:     dep.Validator,
		clock:         dep.Clock,
		ins:           dep.Instrument,
		goroutine:     dep.Goroutine,
		forms:         newFormTable(dep.Config),
	}

	meter := dep.Instrument.Meter("identity.usecase")

	var err error
	uc.submissions, err = meter.Int64Counter("identity.form.submissions",
		metric.WithDescription("Number of form submissions validated"))
	if err != nil {
		slog.Error("failed to create form submissions counter", "error", err)
	}

	uc.violations, err = meter.Int64Counter("identity.form.violations",
		metric.WithDescription("Number of rejected fields by violation"))
	if err != nil {
		slog.Error("failed to create form violations counter", "error", err)
	}

	return uc
}

func (s *Usecase) startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	return s.ins.Tracer("identity.usecase").Start(ctx, name)
}
