package inbound

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/samber/lo"
	"github.com/shandysiswandi/venture/internal/blog/usecase"
	"github.com/shandysiswandi/venture/internal/pkg/goerror"
	"github.com/shandysiswandi/venture/internal/pkg/router"
)

// HTTPEndpoint exposes HTTP handlers for blogs, votes and comments.
type HTTPEndpoint struct {
	uc uc
}

func pagination(r *router.Request) (usecase.Pagination, error) {
	page, err := r.GetQueryInt32("page")
	if err != nil {
		return usecase.Pagination{}, err
	}
	size, err := r.GetQueryInt32("size")
	if err != nil {
		return usecase.Pagination{}, err
	}
	return usecase.Pagination{Page: page, Size: size}, nil
}

func blogsResponse(out *usecase.BlogListOutput) BlogsResponse {
	return BlogsResponse{
		Blogs: lo.Map(out.Blogs, func(b usecase.BlogItem, _ int) BlogItemResponse {
			return BlogItemResponse{
				ID:         b.ID,
				AuthorID:   b.AuthorID,
				AuthorName: b.AuthorName,
				Title:      b.Title,
				Content:    b.Content,
				CoverURL:   b.CoverURL,
				Votes:      b.Votes,
				UpdatedAt:  b.UpdatedAt,
			}
		}),
		total: out.Total,
		size:  out.Size,
		page:  out.Page,
	}
}

func commentResponse(c usecase.CommentItem) CommentResponse {
	return CommentResponse{
		ID:        c.ID,
		UserID:    c.UserID,
		UserName:  c.UserName,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

// BlogList lists blogs, most recently updated first.
// @Summary List blogs
// @Tags Blog
// @Produce json
// @Param page query int false "Page number, default 1"
// @Param size query int false "Page size, default 10, max 100"
// @Success 200 {object} router.successResponse{data=BlogsResponse} "Blogs"
// @Failure 400 {object} router.errorResponse "Invalid query"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/blogs [get]
func (h *HTTPEndpoint) BlogList(r *router.Request) (any, error) {
	page, err := pagination(r)
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.BlogList(r.Context(), usecase.BlogListInput{Pagination: page})
	if err != nil {
		return nil, err
	}

	return blogsResponse(resp), nil
}

// BlogDetail returns one blog with its author and vote count.
// @Summary Get blog
// @Tags Blog
// @Produce json
// @Param id path string true "Blog ID"
// @Success 200 {object} router.successResponse{data=BlogDetailResponse} "Blog"
// @Failure 404 {object} router.errorResponse "Blog not found"
// @Router /api/v1/blogs/{id} [get]
func (h *HTTPEndpoint) BlogDetail(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.BlogDetail(r.Context(), id)
	if err != nil {
		return nil, err
	}

	return BlogDetailResponse{
		ID:          resp.ID,
		AuthorID:    resp.AuthorID,
		AuthorName:  resp.AuthorName,
		AuthorEmail: resp.AuthorEmail,
		Title:       resp.Title,
		Content:     resp.Content,
		CoverURL:    resp.CoverURL,
		Votes:       resp.Votes,
		CreatedAt:   resp.CreatedAt,
		UpdatedAt:   resp.UpdatedAt,
	}, nil
}

// BlogCreate publishes a blog written by the caller.
// @Summary Create blog
// @Tags Blog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body BlogCreateRequest true "Blog payload"
// @Success 201 {object} router.successResponse{data=BlogCreateResponse} "Blog created"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/blogs [post]
func (h *HTTPEndpoint) BlogCreate(r *router.Request) (any, error) {
	var req BlogCreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.BlogCreate(r.Context(), usecase.BlogCreateInput{Title: req.Title, Content: req.Content})
	if err != nil {
		return nil, err
	}

	return BlogCreateResponse{ID: resp.ID}, nil
}

// BlogUpdate edits the title or content of the caller's blog.
// @Summary Update blog
// @Tags Blog
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blog ID"
// @Param request body BlogUpdateRequest true "Fields to change"
// @Success 200 {object} router.successResponse{data=BlogUpdateResponse} "Blog updated"
// @Failure 404 {object} router.errorResponse "Blog not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/blogs/{id} [put]
func (h *HTTPEndpoint) BlogUpdate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req BlogUpdateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	err = h.uc.BlogUpdate(r.Context(), usecase.BlogUpdateInput{ID: id, Title: req.Title, Content: req.Content})
	if err != nil {
		return nil, err
	}

	return BlogUpdateResponse{}, nil
}

// BlogDelete removes the caller's blog.
// @Summary Delete blog
// @Tags Blog
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blog ID"
// @Success 200 {object} router.successResponse{data=BlogDeleteResponse} "Blog deleted"
// @Failure 404 {object} router.errorResponse "Blog not found"
// @Router /api/v1/blogs/{id} [delete]
func (h *HTTPEndpoint) BlogDelete(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	if err := h.uc.BlogDelete(r.Context(), id); err != nil {
		return nil, err
	}

	return BlogDeleteResponse{}, nil
}

// BlogUpdateCover replaces the cover image of the caller's blog.
// @Summary Update blog cover
// @Tags Blog
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Blog ID"
// @Param cover formData file true "Cover image (jpeg, png or webp)"
// @Success 200 {object} router.successResponse{data=BlogCoverResponse} "Cover updated"
// @Failure 400 {object} router.errorResponse "Invalid request body"
// @Failure 404 {object} router.errorResponse "Blog not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 503 {object} router.errorResponse "Storage unavailable"
// @Router /api/v1/blogs/{id}/cover [put]
func (h *HTTPEndpoint) BlogUpdateCover(r *router.Request) (any, error) {
	ctx := r.Context()

	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	file, err := r.StreamSingleFile("cover")
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			slog.ErrorContext(ctx, "failed to close file", "error", err)
		}
	}()

	head := make([]byte, 512)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, goerror.NewInvalidFormat()
	}

	resp, err := h.uc.BlogUpdateCover(ctx, usecase.BlogUpdateCoverInput{
		ID:          id,
		File:        io.MultiReader(bytes.NewReader(head[:n]), file),
		ContentType: http.DetectContentType(head[:n]),
	})
	if err != nil {
		return nil, err
	}

	return BlogCoverResponse{CoverURL: resp.CoverURL}, nil
}

// BlogGenerate writes a blog on a topic with the AI provider.
// @Summary Generate blog
// @Description Requires an Idempotency-Key header. A key yields at most one blog.
// @Tags Blog, AI
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param Idempotency-Key header string true "Client generated key"
// @Param request body BlogGenerateRequest true "Topic"
// @Success 201 {object} router.successResponse{data=BlogGenerateResponse} "Blog generated"
// @Failure 409 {object} router.errorResponse "Idempotency-Key reused"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Failure 503 {object} router.errorResponse "AI provider unavailable"
// @Router /api/v1/ai/blogs [post]
func (h *HTTPEndpoint) BlogGenerate(r *router.Request) (any, error) {
	var req BlogGenerateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.BlogGenerate(r.Context(), usecase.BlogGenerateInput{
		Topic:          req.Topic,
		IdempotencyKey: r.GetHeader("Idempotency-Key"),
	})
	if err != nil {
		return nil, err
	}

	return BlogGenerateResponse{ID: resp.ID}, nil
}

// UserBlogs lists the caller's own blogs.
// @Summary List my blogs
// @Tags Blog, Profile
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number, default 1"
// @Param size query int false "Page size, default 10, max 100"
// @Success 200 {object} router.successResponse{data=BlogsResponse} "Blogs"
// @Failure 401 {object} router.errorResponse "Authentication required"
// @Router /api/v1/users/me/blogs [get]
func (h *HTTPEndpoint) UserBlogs(r *router.Request) (any, error) {
	page, err := pagination(r)
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.UserBlogs(r.Context(), usecase.BlogListInput{Pagination: page})
	if err != nil {
		return nil, err
	}

	return blogsResponse(resp), nil
}

// VoteGet reports the vote count and whether the caller voted.
// @Summary Get votes
// @Tags Blog, Vote
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blog ID"
// @Success 200 {object} router.successResponse{data=VoteResponse} "Votes"
// @Failure 404 {object} router.errorResponse "Blog not found"
// @Router /api/v1/blogs/{id}/votes [get]
func (h *HTTPEndpoint) VoteGet(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.VoteGet(r.Context(), id)
	if err != nil {
		return nil, err
	}

	return VoteResponse{Count: resp.Count, Voted: resp.Voted}, nil
}

// VoteAdd votes for a blog. Voting again changes nothing.
// @Summary Add vote
// @Tags Blog, Vote
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blog ID"
// @Success 200 {object} router.successResponse{data=VoteResponse} "Votes"
// @Failure 404 {object} router.errorResponse "Blog not found"
// @Router /api/v1/blogs/{id}/votes [post]
func (h *HTTPEndpoint) VoteAdd(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.VoteAdd(r.Context(), id)
	if err != nil {
		return nil, err
	}

	return VoteResponse{Count: resp.Count, Voted: resp.Voted}, nil
}

// VoteRemove withdraws the caller's vote.
// @Summary Remove vote
// @Tags Blog, Vote
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blog ID"
// @Success 200 {object} router.successResponse{data=VoteResponse} "Votes"
// @Failure 404 {object} router.errorResponse "Blog not found"
// @Router /api/v1/blogs/{id}/votes [delete]
func (h *HTTPEndpoint) VoteRemove(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.VoteRemove(r.Context(), id)
	if err != nil {
		return nil, err
	}

	return VoteResponse{Count: resp.Count, Voted: resp.Voted}, nil
}

// CommentList lists the comments of a blog, newest first.
// @Summary List comments
// @Tags Blog, Comment
// @Produce json
// @Param id path string true "Blog ID"
// @Param page query int false "Page number, default 1"
// @Param size query int false "Page size, default 10, max 100"
// @Success 200 {object} router.successResponse{data=CommentsResponse} "Comments"
// @Failure 404 {object} router.errorResponse "Blog not found"
// @Router /api/v1/blogs/{id}/comments [get]
func (h *HTTPEndpoint) CommentList(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	page, err := pagination(r)
	if err != nil {
		return nil, err
	}

	resp, err := h.uc.CommentList(r.Context(), usecase.CommentListInput{BlogID: id, Pagination: page})
	if err != nil {
		return nil, err
	}

	return CommentsResponse{
		Comments: lo.Map(resp.Comments, func(c usecase.CommentItem, _ int) CommentResponse { return commentResponse(c) }),
		total:    resp.Total,
		size:     resp.Size,
		page:     resp.Page,
	}, nil
}

// CommentCreate comments on a blog as the caller.
// @Summary Create comment
// @Tags Blog, Comment
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Blog ID"
// @Param request body CommentCreateRequest true "Comment payload"
// @Success 201 {object} router.successResponse{data=CommentCreateResponse} "Comment created"
// @Failure 404 {object} router.errorResponse "Blog not found"
// @Failure 422 {object} router.errorResponse "Validation error"
// @Router /api/v1/blogs/{id}/comments [post]
func (h *HTTPEndpoint) CommentCreate(r *router.Request) (any, error) {
	id, err := r.GetParamInt64("id")
	if err != nil {
		return nil, err
	}

	var req CommentCreateRequest
	if err := r.DecodeBody(&req); err != nil {
		return nil, err
	}

	resp, err := h.uc.CommentCreate(r.Context(), usecase.CommentCreateInput{BlogID: id, Content: req.Content})
	if err != nil {
		return nil, err
	}

	return CommentCreateResponse{CommentResponse: commentResponse(*resp)}, nil
}
