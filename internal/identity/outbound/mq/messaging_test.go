package mq

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shandysiswandi/formguard/internal/identity/entity"
	"github.com/shandysiswandi/formguard/internal/identity/usecase"
	"github.com/shandysiswandi/formguard/internal/pkg/instrument"
	"github.com/shandysiswandi/formguard/internal/pkg/messaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordPublisher struct {
	destination string
	msg         messaging.OutgoingMessage
	err         error
}

func (r *recordPublisher) Publish(_ context.Context, destination string, msg messaging.OutgoingMessage) (messaging.PublishResult, error) {
	r.destination = destination
	r.msg = msg
	return messaging.PublishResult{Destination: destination}, r.err
}

func TestMessaging_PublishFormValidated(t *testing.T) {
	pub := &recordPublisher{}
	m := NewMessaging(pub, instrument.NewNoop(), "")

	ctx := instrument.SetCorrelationID(context.Background(), "0192b6f0-cid")
	err := m.PublishFormValidated(ctx, usecase.FormValidatedEvent{
		Form:  entity.FormRegistration,
		Valid: false,
		Violations: map[string]entity.Violation{
			"phone":   entity.ViolationFormatMismatch,
			"pin_key": entity.ViolationLengthOutOfRange,
		},
		ValidatedAt: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.Equal(t, "identity.form_validated", pub.destination)
	assert.JSONEq(t, `{
		"form": "Registration",
		"valid": false,
		"violations": {"phone": "FormatMismatch", "pin_key": "LengthOutOfRange"},
		"validated_at": "2026-10-19T09:00:00Z"
	}`, string(pub.msg.Body))
	assert.Equal(t, []messaging.Header{{Key: "cID", Value: []byte("0192b6f0-cid")}}, pub.msg.Headers)
}

func TestMessaging_PublishFormValidated_CustomDestinationAndError(t *testing.T) {
	cause := errors.New("no responders")
	pub := &recordPublisher{err: cause}
	m := NewMessaging(pub, instrument.NewNoop(), "audit.forms")

	err := m.PublishFormValidated(context.Background(), usecase.FormValidatedEvent{
		Form:  entity.FormLogin,
		Valid: true,
	})

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "audit.forms", pub.destination)
	assert.JSONEq(t, `{"form":"Login","valid":true,"violations":{},"validated_at":"0001-01-01T00:00:00Z"}`, string(pub.msg.Body))
}
