package entity

import "time"

type Blog struct {
	ID        int64
	AuthorID  int64
	Title     string
	Content   string
	CoverKey  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BlogSummary is a list row: the blog plus its author name and vote count.
type BlogSummary struct {
	ID         int64
	AuthorID   int64
	AuthorName string
	Title      string
	Content    string
	CoverKey   string
	Votes      int64
	UpdatedAt  time.Time
}

type BlogDetail struct {
	Blog
	AuthorName  string
	AuthorEmail string
	Votes       int64
}

type NewBlog struct {
	ID       int64
	AuthorID int64
	Title    string
	Content  string
}

// BlogPatch holds the fields to change. A nil field is left as is.
type BlogPatch struct {
	Title   *string
	Content *string
}

// Draft is an AI-written blog that has not been saved yet.
type Draft struct {
	Title   string
	Content string
}
