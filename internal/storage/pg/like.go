package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/syndx/forum-api/internal/domain"
)

const uniqueViolation = "23505"

func (s *Storage) CheckCommentHasLike(owner domain.UserId, commentId domain.CommentId) (bool, error) {
	var one int
	err := s.db.QueryRow(
		"SELECT 1 FROM likes WHERE owner = $1 AND comment_id = $2",
		owner, commentId,
	).Scan(&one)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to check like: %w", err)
	}
	return true, nil
}

// AddLike inserts the like row. A concurrent toggle may have inserted it
// between check and insert; the composite primary key turns that into a
// unique violation, which is absorbed since the like already exists.
func (s *Storage) AddLike(owner domain.UserId, commentId domain.CommentId) error {
	_, err := s.db.Exec(
		"INSERT INTO likes (owner, comment_id) VALUES ($1, $2)",
		owner, commentId,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return nil
		}
		return fmt.Errorf("failed to insert like: %w", err)
	}
	return nil
}

func (s *Storage) RemoveLike(owner domain.UserId, commentId domain.CommentId) error {
	_, err := s.db.Exec(
		"DELETE FROM likes WHERE owner = $1 AND comment_id = $2",
		owner, commentId,
	)
	if err != nil {
		return fmt.Errorf("failed to delete like: %w", err)
	}
	return nil
}

func (s *Storage) GetLikeCountByCommentId(commentId domain.CommentId) (int, error) {
	var count int
	err := s.db.QueryRow(
		"SELECT COUNT(*) FROM likes WHERE comment_id = $1",
		commentId,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count likes: %w", err)
	}
	return count, nil
}
