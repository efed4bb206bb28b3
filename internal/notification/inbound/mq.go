package inbound

import (
	"context"
	"log/slog"
	"slices"

	"github.com/shandysiswandi/venture/internal/pkg/config"
	"github.com/shandysiswandi/venture/internal/pkg/goroutine"
	"github.com/shandysiswandi/venture/internal/pkg/instrument"
	"github.com/shandysiswandi/venture/internal/pkg/messaging"
	"github.com/shandysiswandi/venture/internal/pkg/uid"
	"github.com/shandysiswandi/venture/internal/shared/event"
)

const defaultConsumerConcurrency = 10

type consumer struct {
	name    string
	topic   string // destination where publisher sent message
	group   string // kafka consumer group and nats queue group
	handler messaging.Handler
}

func consumers(h *MQHandler) []consumer {
	return []consumer{
		{
			name:    event.UserRegisteredConsumerNotification,
			topic:   event.UserRegisteredDestination,
			group:   event.UserRegisteredConsumerNotification,
			handler: h.UserRegisteredNotification,
		},
		{
			name:    event.BlogCommentCreatedConsumerNotification,
			topic:   event.BlogCommentCreatedDestination,
			group:   event.BlogCommentCreatedConsumerNotification,
			handler: h.BlogCommentCreatedNotification,
		},
	}
}

// RegisterMQConsumer starts the consumers listed in modules.notification.consumer_names.
// It returns the names that were started.
func RegisterMQConsumer(
	ctx context.Context,
	cfg config.Config,
	routine *goroutine.Manager,
	messenger messaging.Consumer,
	uuid uid.StringID,
	uc uc,
	ins instrument.Instrumentation,
) []string {
	mqHandler := &MQHandler{uc: uc, uuid: uuid, ins: ins}

	enabled := cfg.GetArray("modules.notification.consumer_names")
	concurrency := cfg.GetInt("modules.notification.concurrency")
	if concurrency <= 0 {
		concurrency = defaultConsumerConcurrency
	}

	var started []string
	for _, c := range consumers(mqHandler) {
		if !slices.Contains(enabled, c.name) {
			continue
		}

		ok := routine.Go(ctx, c.name, func(pCtx context.Context) error {
			slog.InfoContext(pCtx, "Running job for handling consumer", "consumer", c.name)
			return messenger.Consume(pCtx,
				c.topic,
				c.handler,
				messaging.WithQueueGroup(c.group),
				messaging.WithGroup(c.group),
				messaging.WithAutoAck(true),
				messaging.WithConcurrency(concurrency),
			)
		})
		if !ok {
			slog.WarnContext(ctx, "consumer not started", "consumer", c.name)
			continue
		}
		started = append(started, c.name)
	}

	return started
}
