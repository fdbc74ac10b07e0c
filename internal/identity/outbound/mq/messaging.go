package mq

import (
	"context"
	"encoding/json"

	"github.com/samber/lo"
	"github.com/shandysiswandi/formguard/internal/identity/entity"
	"github.com/shandysiswandi/formguard/internal/identity/usecase"
	"github.com/shandysiswandi/formguard/internal/pkg/instrument"
	"github.com/shandysiswandi/formguard/internal/pkg/messaging"
	"github.com/shandysiswandi/formguard/internal/shared/event"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const keyOfCorrelationID string = "cID"

type Messaging struct {
	client      messaging.Publisher
	ins         instrument.Instrumentation
	destination string
}

// NewMessaging publishes to destination, or to event.FormValidatedDestination
// when destination is empty.
func NewMessaging(client messaging.Publisher, ins instrument.Instrumentation, destination string) *Messaging {
	if destination == "" {
		destination = event.FormValidatedDestination
	}

	return &Messaging{client: client, ins: ins, destination: destination}
}

func (m *Messaging) PublishFormValidated(ctx context.Context, msg usecase.FormValidatedEvent) error {
	ctx, span := m.ins.Tracer("identity.outbound.mq").Start(ctx, "PublishFormValidated")
	defer span.End()

	span.SetAttributes(
		attribute.String("form", msg.Form.String()),
		attribute.Bool("valid", msg.Valid),
	)

	body, err := json.Marshal(event.FormValidatedMessage{
		Form:  msg.Form.String(),
		Valid: msg.Valid,
		Violations: lo.MapValues(msg.Violations, func(v entity.Violation, _ string) string {
			return v.String()
		}),
		ValidatedAt: msg.ValidatedAt.UTC(),
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	cID := instrument.GetCorrelationID(ctx)
	if _, err := m.client.Publish(ctx, m.destination, messaging.OutgoingMessage{
		Body:    body,
		Headers: []messaging.Header{{Key: keyOfCorrelationID, Value: []byte(cID)}},
	}); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
