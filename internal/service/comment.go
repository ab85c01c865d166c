package service

import (
	"github.com/syndx/forum-api/internal/domain"
	internal_errors "github.com/syndx/forum-api/internal/errors"
	"github.com/syndx/forum-api/internal/service/utils"
)

type CommentService interface {
	Create(threadId domain.ThreadId, owner domain.UserId, content string, parents *domain.CommentId) (domain.RegisteredComment, error)
	Delete(id domain.CommentId, threadId domain.ThreadId, owner domain.UserId, replyId *domain.CommentId) error
}

type Comment struct {
	threads ThreadStorage
	storage CommentStorage
}

type CommentStorage interface {
	AddComment(threadId domain.ThreadId, owner domain.UserId, comment domain.RegisterComment, parents *domain.CommentId) (domain.RegisteredComment, error)
	GetCommentById(id domain.CommentId) (domain.Comment, error)
	VerifyCommentAvailability(id domain.CommentId) error
	VerifyOwner(id domain.CommentId, owner domain.UserId) error
	GetCommentsByThreadId(threadId domain.ThreadId) ([]domain.CommentRow, error)
	DeleteComment(id domain.CommentId) error
}

func NewComment(threads ThreadStorage, storage CommentStorage) CommentService {
	return &Comment{threads: threads, storage: storage}
}

// Create adds a top-level comment, or a reply when parents is set. The
// parent must exist and must itself be a top-level comment; one level of
// nesting is a hard limit of the data model.
func (c *Comment) Create(threadId domain.ThreadId, owner domain.UserId, content string, parents *domain.CommentId) (domain.RegisteredComment, error) {
	if threadId == "" || owner == "" {
		return domain.RegisteredComment{}, internal_errors.NewValidation("comment needs threadId and owner")
	}

	if err := c.threads.VerifyThreadAvailability(threadId); err != nil {
		return domain.RegisteredComment{}, err
	}

	registerComment, err := domain.NewRegisterComment(utils.SanitizeContent(content))
	if err != nil {
		return domain.RegisteredComment{}, err
	}

	if parents != nil && *parents != "" {
		parent, err := c.storage.GetCommentById(*parents)
		if err != nil {
			return domain.RegisteredComment{}, err
		}
		if parent.Parents != nil {
			return domain.RegisteredComment{}, internal_errors.NewValidation("cannot reply to a reply")
		}
	} else {
		parents = nil
	}

	return c.storage.AddComment(threadId, owner, registerComment, parents)
}

// Delete soft-deletes a comment or, when replyId is set, a reply anchored
// under the comment. Ownership is checked against the row actually being
// deleted, and only after its existence is confirmed.
func (c *Comment) Delete(id domain.CommentId, threadId domain.ThreadId, owner domain.UserId, replyId *domain.CommentId) error {
	if id == "" || threadId == "" {
		return internal_errors.NewValidation("delete needs comment id and threadId")
	}

	if err := c.threads.VerifyThreadAvailability(threadId); err != nil {
		return err
	}
	if err := c.storage.VerifyCommentAvailability(id); err != nil {
		return err
	}

	if replyId != nil && *replyId != "" {
		if err := c.storage.VerifyCommentAvailability(*replyId); err != nil {
			return err
		}
		if err := c.storage.VerifyOwner(*replyId, owner); err != nil {
			return err
		}
		return c.storage.DeleteComment(*replyId)
	}

	if err := c.storage.VerifyOwner(id, owner); err != nil {
		return err
	}
	return c.storage.DeleteComment(id)
}
