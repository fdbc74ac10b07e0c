package usecase

import (
	"context"
	"errors"
	"log/slog"
	"strconv"

	"github.com/shandysiswandi/formguard/internal/identity/entity"
	"github.com/shandysiswandi/formguard/internal/pkg/goerror"
	"github.com/shandysiswandi/formguard/internal/pkg/validator"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Validate runs every validator of form against in. A field missing from in
// is validated as the empty string. in is never modified.
func (s *Usecase) Validate(ctx context.Context, form entity.FormName, in map[string]string) (entity.Result, error) {
	ctx, span := s.startSpan(ctx, "Validate")
	defer span.End()

	if _, ok := s.forms[form]; !ok {
		slog.WarnContext(ctx, "unknown form submitted", "form", form)
		return entity.Result{}, goerror.NewInvalidFormat("Unknown form")
	}

	return s.validate(ctx, form, in)
}

func (s *Usecase) validate(ctx context.Context, form entity.FormName, in map[string]string) (entity.Result, error) {
	res := entity.NewResult(form, s.forms.fieldNames(form))

	for _, f := range s.forms[form] {
		vf := validator.Field{
			Name:  f.name,
			Label: f.label,
			Value: in[f.name],
			Rules: f.rules,
		}
		if f.same != "" {
			vf.Other = in[f.same]
			vf.OtherName = f.same
		}

		err := s.validator.ValidateField(vf)
		if err == nil {
			continue
		}

		var verr validator.V10ValidationError
		if !errors.As(err, &verr) || len(verr) == 0 {
			slog.ErrorContext(ctx, "failed to run field validators", "form", form, "field", f.name, "error", err)
			return entity.Result{}, goerror.NewServer(err)
		}

		res.Set(f.name, entity.Invalid(entity.ViolationFromRule(verr[0].Tag), verr[0].Message))
	}

	s.record(ctx, res)
	s.publish(ctx, res)

	return res, nil
}

func (s *Usecase) record(ctx context.Context, res entity.Result) {
	formAttr := attribute.String("form", res.Form().String())

	if s.submissions != nil {
		s.submissions.Add(ctx, 1, metric.WithAttributes(formAttr, attribute.String("valid", strconv.FormatBool(res.OK()))))
	}

	violations := res.Violations()
	if len(violations) == 0 {
		return
	}

	slog.InfoContext(ctx, "form rejected", "form", res.Form(), "violations", violations)

	if s.violations == nil {
		return
	}
	for name, v := range violations {
		s.violations.Add(ctx, 1, metric.WithAttributes(
			formAttr,
			attribute.String("field", name),
			attribute.String("violation", v.String()),
		))
	}
}

func (s *Usecase) publish(ctx context.Context, res entity.Result) {
	if s.repoMessaging == nil {
		return
	}

	msg := FormValidatedEvent{
		Form:        res.Form(),
		Valid:       res.OK(),
		Violations:  res.Violations(),
		ValidatedAt: s.clock.Now(),
	}

	s.goroutine.Go(context.WithoutCancel(ctx), func(ctx context.Context) error {
		if err := s.repoMessaging.PublishFormValidated(ctx, msg); err != nil {
			slog.ErrorContext(ctx, "failed to publish form validated", "form", msg.Form, "error", err)
			return err
		}
		return nil
	})
}
