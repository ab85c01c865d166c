package service

import (
	"github.com/syndx/forum-api/internal/domain"
	internal_errors "github.com/syndx/forum-api/internal/errors"
)

type LikeService interface {
	Toggle(threadId domain.ThreadId, owner domain.UserId, commentId domain.CommentId) error
}

type Like struct {
	threads  ThreadStorage
	comments CommentStorage
	storage  LikeStorage
}

type LikeStorage interface {
	CheckCommentHasLike(owner domain.UserId, commentId domain.CommentId) (bool, error)
	AddLike(owner domain.UserId, commentId domain.CommentId) error
	RemoveLike(owner domain.UserId, commentId domain.CommentId) error
	GetLikeCountByCommentId(commentId domain.CommentId) (int, error)
}

func NewLike(threads ThreadStorage, comments CommentStorage, storage LikeStorage) LikeService {
	return &Like{threads: threads, comments: comments, storage: storage}
}

// Toggle flips the acting user's like on a comment: remove it when present,
// add it otherwise. Two calls in a row restore the original state. The
// check-then-act pair is not atomic; the likes table's composite primary
// key keeps concurrent toggles from ever producing duplicate rows.
func (l *Like) Toggle(threadId domain.ThreadId, owner domain.UserId, commentId domain.CommentId) error {
	if threadId == "" || owner == "" || commentId == "" {
		return internal_errors.NewValidation("like needs threadId, owner and commentId")
	}

	if err := l.threads.VerifyThreadAvailability(threadId); err != nil {
		return err
	}
	if err := l.comments.VerifyCommentAvailability(commentId); err != nil {
		return err
	}

	hasLike, err := l.storage.CheckCommentHasLike(owner, commentId)
	if err != nil {
		return err
	}

	if hasLike {
		return l.storage.RemoveLike(owner, commentId)
	}
	return l.storage.AddLike(owner, commentId)
}
