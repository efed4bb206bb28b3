package entity

import "time"

type VoteState struct {
	Count int64
	Voted bool
}

type Comment struct {
	ID        int64
	BlogID    int64
	UserID    int64
	UserName  string
	Content   string
	CreatedAt time.Time
}

type NewComment struct {
	ID      int64
	BlogID  int64
	UserID  int64
	Content string
}
