package mq

import (
	"context"
	"strconv"

	"github.com/shandysiswandi/venture/internal/identity/usecase"
	"github.com/shandysiswandi/venture/internal/pkg/instrument"
	"github.com/shandysiswandi/venture/internal/pkg/messaging"
	"github.com/shandysiswandi/venture/internal/shared/event"
	"go.opentelemetry.io/otel/codes"
)

type Messaging struct {
	client messaging.Publisher
	ins    instrument.Instrumentation
}

func NewMessaging(client messaging.Publisher, ins instrument.Instrumentation) *Messaging {
	return &Messaging{client: client, ins: ins}
}

func (m *Messaging) PublishUserRegistered(ctx context.Context, msg usecase.UserRegisteredEvent) error {
	ctx, span := m.ins.Tracer("identity.outbound.mq").Start(ctx, "PublishUserRegistered")
	defer span.End()

	err := messaging.PublishJSON(ctx, m.client, event.UserRegisteredDestination,
		strconv.FormatInt(msg.UserID, 10),
		event.UserRegisteredMessage{
			UserID: msg.UserID,
			Email:  msg.Email,
			Name:   msg.Name,
		},
		messaging.Header{Key: event.HeaderCorrelationID, Value: []byte(instrument.GetCorrelationID(ctx))},
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	return nil
}
