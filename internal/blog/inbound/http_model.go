package inbound

import (
	"net/http"
	"time"
)

type BlogItemResponse struct {
	ID         int64     `json:"id,string"`
	AuthorID   int64     `json:"author_id,string"`
	AuthorName string    `json:"author_name"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	CoverURL   string    `json:"cover_url,omitempty"`
	Votes      int64     `json:"votes"`
	UpdatedAt  time.Time `json:"updated_at"`
}

type BlogsResponse struct {
	Blogs []BlogItemResponse `json:"blogs"`
	// meta
	total int64
	size  int32
	page  int32
}

func (r BlogsResponse) Meta() map[string]any {
	return map[string]any{
		"total": r.total,
		"size":  r.size,
		"page":  r.page,
	}
}

type BlogDetailResponse struct {
	ID          int64     `json:"id,string"`
	AuthorID    int64     `json:"author_id,string"`
	AuthorName  string    `json:"author_name"`
	AuthorEmail string    `json:"author_email"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	CoverURL    string    `json:"cover_url,omitempty"`
	Votes       int64     `json:"votes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BlogCreateRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type BlogCreateResponse struct {
	ID int64 `json:"id,string"`
}

func (BlogCreateResponse) StatusCode() int {
	return http.StatusCreated
}

func (BlogCreateResponse) Message() string {
	return "Blog created"
}

type BlogUpdateRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type BlogUpdateResponse struct{}

func (BlogUpdateResponse) Message() string {
	return "Blog updated"
}

type BlogDeleteResponse struct{}

func (BlogDeleteResponse) Message() string {
	return "Blog deleted"
}

type BlogCoverResponse struct {
	CoverURL string `json:"cover_url"`
}

func (BlogCoverResponse) Message() string {
	return "Cover updated"
}

type BlogGenerateRequest struct {
	Topic string `json:"topic"`
}

type BlogGenerateResponse struct {
	ID int64 `json:"id,string"`
}

func (BlogGenerateResponse) StatusCode() int {
	return http.StatusCreated
}

func (BlogGenerateResponse) Message() string {
	return "Blog generated"
}

type VoteResponse struct {
	Count int64 `json:"count"`
	Voted bool  `json:"voted"`
}

type CommentResponse struct {
	ID        int64     `json:"id,string"`
	UserID    int64     `json:"user_id,string"`
	UserName  string    `json:"user_name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

type CommentsResponse struct {
	Comments []CommentResponse `json:"comments"`
	// meta
	total int64
	size  int32
	page  int32
}

func (r CommentsResponse) Meta() map[string]any {
	return map[string]any{
		"total": r.total,
		"size":  r.size,
		"page":  r.page,
	}
}

type CommentCreateRequest struct {
	Content string `json:"content"`
}

type CommentCreateResponse struct {
	CommentResponse
}

func (CommentCreateResponse) StatusCode() int {
	return http.StatusCreated
}

func (CommentCreateResponse) Message() string {
	return "Comment created"
}
