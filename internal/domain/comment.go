package domain

import (
	"time"

	internal_errors "github.com/syndx/forum-api/internal/errors"
)

// RegisterComment is the validated payload for comment creation.
type RegisterComment struct {
	Content string
}

func NewRegisterComment(content string) (RegisterComment, error) {
	if content == "" {
		return RegisterComment{}, internal_errors.NewValidation("comment needs content")
	}
	return RegisterComment{Content: content}, nil
}

// RegisteredComment is what storage hands back after a successful insert.
type RegisteredComment struct {
	Id      CommentId `json:"id"`
	Content string    `json:"content"`
	Owner   UserId    `json:"owner"`
}

func NewRegisteredComment(id, content, owner string) (RegisteredComment, error) {
	if id == "" || content == "" || owner == "" {
		return RegisteredComment{}, internal_errors.NewValidation("registered comment needs id, content and owner")
	}
	return RegisteredComment{Id: id, Content: content, Owner: owner}, nil
}

// Comment is the persisted row. Parents is nil for top-level comments and
// holds the parent comment id for replies; nesting never goes deeper than
// one level. IsDeleted is a soft-delete flag: the row stays so replies and
// like history keep their referential integrity.
type Comment struct {
	Id        CommentId
	ThreadId  ThreadId
	Owner     UserId
	Content   string
	Parents   *CommentId
	IsDeleted bool
	Date      time.Time
}

// CommentRow is a thread-scoped flat row with the author resolved to a
// username and the like tally attached. Input shape of MapComments.
type CommentRow struct {
	Id        CommentId
	Username  Username
	Date      time.Time
	Parents   *CommentId
	Content   string
	IsDeleted bool
	LikeCount int
}
