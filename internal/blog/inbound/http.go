package inbound

import (
	"context"

	"github.com/shandysiswandi/venture/internal/blog/usecase"
	"github.com/shandysiswandi/venture/internal/pkg/router"
)

type uc interface {
	BlogList(ctx context.Context, in usecase.BlogListInput) (*usecase.BlogListOutput, error)
	BlogDetail(ctx context.Context, id int64) (*usecase.BlogDetailOutput, error)
	BlogCreate(ctx context.Context, in usecase.BlogCreateInput) (*usecase.BlogCreateOutput, error)
	BlogUpdate(ctx context.Context, in usecase.BlogUpdateInput) error
	BlogDelete(ctx context.Context, id int64) error
	BlogUpdateCover(ctx context.Context, in usecase.BlogUpdateCoverInput) (*usecase.BlogUpdateCoverOutput, error)
	BlogGenerate(ctx context.Context, in usecase.BlogGenerateInput) (*usecase.BlogCreateOutput, error)
	UserBlogs(ctx context.Context, in usecase.BlogListInput) (*usecase.BlogListOutput, error)

	VoteGet(ctx context.Context, blogID int64) (*usecase.VoteOutput, error)
	VoteAdd(ctx context.Context, blogID int64) (*usecase.VoteOutput, error)
	VoteRemove(ctx context.Context, blogID int64) (*usecase.VoteOutput, error)

	CommentList(ctx context.Context, in usecase.CommentListInput) (*usecase.CommentListOutput, error)
	CommentCreate(ctx context.Context, in usecase.CommentCreateInput) (*usecase.CommentItem, error)
}

func RegisterHTTPEndpoint(r *router.Router, uc uc) {
	end := &HTTPEndpoint{uc: uc}

	// public
	r.GET("/api/v1/blogs", end.BlogList)
	r.GET("/api/v1/blogs/:id", end.BlogDetail)
	r.GET("/api/v1/blogs/:id/comments", end.CommentList)

	r.POST("/api/v1/blogs", end.BlogCreate)
	r.PUT("/api/v1/blogs/:id", end.BlogUpdate)
	r.DELETE("/api/v1/blogs/:id", end.BlogDelete)
	r.PUT("/api/v1/blogs/:id/cover", end.BlogUpdateCover)
	r.POST("/api/v1/ai/blogs", end.BlogGenerate)
	r.GET("/api/v1/users/me/blogs", end.UserBlogs)

	r.GET("/api/v1/blogs/:id/votes", end.VoteGet)
	r.POST("/api/v1/blogs/:id/votes", end.VoteAdd)
	r.DELETE("/api/v1/blogs/:id/votes", end.VoteRemove)

	r.POST("/api/v1/blogs/:id/comments", end.CommentCreate)
}
