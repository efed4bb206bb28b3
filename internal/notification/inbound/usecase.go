package inbound

import (
	"context"

	"github.com/shandysiswandi/venture/internal/notification/usecase"
)

type uc interface {
	ConsumeUserRegistered(ctx context.Context, in usecase.ConsumeUserRegisteredInput) error
	ConsumeBlogCommentCreated(ctx context.Context, in usecase.ConsumeBlogCommentCreatedInput) error
}
