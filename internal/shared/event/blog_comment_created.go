package event

const BlogCommentCreatedDestination string = "blog_comment_created"
const BlogCommentCreatedConsumerNotification string = "blog_comment_created_notification"

type BlogCommentCreatedMessage struct {
	CommentID     int64  `json:"comment_id"`
	BlogID        int64  `json:"blog_id"`
	BlogTitle     string `json:"blog_title"`
	AuthorID      int64  `json:"author_id"`
	AuthorEmail   string `json:"author_email"`
	CommenterID   int64  `json:"commenter_id"`
	CommenterName string `json:"commenter_name"`
	Content       string `json:"content"`
}
