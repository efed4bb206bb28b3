package mq

import (
	"context"
	"strconv"

	"github.com/shandysiswandi/venture/internal/blog/usecase"
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

// PublishBlogCommentCreated keys the message by blog so one blog's comments stay ordered.
func (m *Messaging) PublishBlogCommentCreated(ctx context.Context, msg usecase.BlogCommentCreatedEvent) error {
	ctx, span := m.ins.Tracer("blog.outbound.mq").Start(ctx, "PublishBlogCommentCreated")
	defer span.End()

	err := messaging.PublishJSON(ctx, m.client, event.BlogCommentCreatedDestination,
		strconv.FormatInt(msg.BlogID, 10),
		event.BlogCommentCreatedMessage{
			CommentID:     msg.CommentID,
			BlogID:        msg.BlogID,
			BlogTitle:     msg.BlogTitle,
			AuthorID:      msg.AuthorID,
			AuthorEmail:   msg.AuthorEmail,
			CommenterID:   msg.CommenterID,
			CommenterName: msg.CommenterName,
			Content:       msg.Content,
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
