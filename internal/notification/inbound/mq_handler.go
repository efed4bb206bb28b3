package inbound

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/shandysiswandi/venture/internal/notification/usecase"
	"github.com/shandysiswandi/venture/internal/pkg/instrument"
	"github.com/shandysiswandi/venture/internal/pkg/messaging"
	"github.com/shandysiswandi/venture/internal/pkg/uid"
	"github.com/shandysiswandi/venture/internal/shared/event"
	"go.opentelemetry.io/otel/attribute"
)

type MQHandler struct {
	uc   uc
	uuid uid.StringID
	ins  instrument.Instrumentation
}

func (h *MQHandler) ensureCorrelationID(ctx context.Context, msg messaging.Message) context.Context {
	if cID := messaging.HeaderValue(msg, event.HeaderCorrelationID); cID != "" {
		return instrument.SetCorrelationID(ctx, cID)
	}
	return instrument.SetCorrelationID(ctx, h.uuid.Generate())
}

func (h *MQHandler) UserRegisteredNotification(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg)

	ctx, span := h.ins.Tracer("notification.inbound.mq").Start(ctx, "UserRegisteredNotification")
	defer span.End()
	span.SetAttributes(attribute.String("messaging.destination.name", msg.Topic()))

	body := msg.Body()
	slog.InfoContext(ctx, "consume: user registered notification", "msg_body", string(body))

	var payload event.UserRegisteredMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of user registered notification", "msg_body", string(body), "error", err)
		return nil
	}

	if err := h.uc.ConsumeUserRegistered(ctx, usecase.ConsumeUserRegisteredInput{
		UserID: payload.UserID,
		Email:  payload.Email,
		Name:   payload.Name,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume user registered", "msg_body", string(body), "error", err)
		return err
	}

	return nil
}

func (h *MQHandler) BlogCommentCreatedNotification(ctx context.Context, msg messaging.Message) error {
	ctx = h.ensureCorrelationID(ctx, msg)

	ctx, span := h.ins.Tracer("notification.inbound.mq").Start(ctx, "BlogCommentCreatedNotification")
	defer span.End()
	span.SetAttributes(attribute.String("messaging.destination.name", msg.Topic()))

	body := msg.Body()
	slog.InfoContext(ctx, "consume: blog comment created notification", "msg_body", string(body))

	var payload event.BlogCommentCreatedMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		slog.ErrorContext(ctx, "failed to parse message body of blog comment created notification", "msg_body", string(body), "error", err)
		return nil
	}

	if err := h.uc.ConsumeBlogCommentCreated(ctx, usecase.ConsumeBlogCommentCreatedInput{
		CommentID:     payload.CommentID,
		BlogID:        payload.BlogID,
		BlogTitle:     payload.BlogTitle,
		AuthorID:      payload.AuthorID,
		AuthorEmail:   payload.AuthorEmail,
		CommenterID:   payload.CommenterID,
		CommenterName: payload.CommenterName,
		Content:       payload.Content,
	}); err != nil {
		slog.ErrorContext(ctx, "failed to consume blog comment created", "msg_body", string(body), "error", err)
		return err
	}

	return nil
}
