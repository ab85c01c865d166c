package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/syndx/forum-api/internal/domain"
	internal_errors "github.com/syndx/forum-api/internal/errors"
)

func (s *Storage) AddComment(threadId domain.ThreadId, owner domain.UserId, comment domain.RegisterComment, parents *domain.CommentId) (domain.RegisteredComment, error) {
	prefix := "comment"
	if parents != nil {
		prefix = "reply"
	}
	id := s.newId(prefix)

	var registered domain.RegisteredComment
	err := s.db.QueryRow(`
        INSERT INTO comments (id, content, owner, thread_id, parents)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, content, owner
    `, id, comment.Content, owner, threadId, parents).Scan(
		&registered.Id, &registered.Content, &registered.Owner,
	)
	if err != nil {
		return domain.RegisteredComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}

	return registered, nil
}

func (s *Storage) GetCommentById(id domain.CommentId) (domain.Comment, error) {
	var comment domain.Comment
	err := s.db.QueryRow(`
        SELECT id, thread_id, owner, content, parents, is_deleted, created_at
        FROM comments
        WHERE id = $1
    `, id).Scan(
		&comment.Id, &comment.ThreadId, &comment.Owner,
		&comment.Content, &comment.Parents, &comment.IsDeleted, &comment.Date,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Comment{}, internal_errors.NewNotFound("komentar tidak ditemukan")
		}
		return domain.Comment{}, fmt.Errorf("failed to fetch comment: %w", err)
	}

	return comment, nil
}

// VerifyCommentAvailability checks the row exists. Soft-deleted comments
// still count: the row persists so replies anchored under it stay
// deletable and likeable.
func (s *Storage) VerifyCommentAvailability(id domain.CommentId) error {
	var found domain.CommentId
	err := s.db.QueryRow("SELECT id FROM comments WHERE id = $1", id).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NewNotFound("komentar tidak ditemukan")
		}
		return fmt.Errorf("failed to verify comment: %w", err)
	}
	return nil
}

func (s *Storage) VerifyOwner(id domain.CommentId, owner domain.UserId) error {
	var actual domain.UserId
	err := s.db.QueryRow("SELECT owner FROM comments WHERE id = $1", id).Scan(&actual)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NewNotFound("komentar tidak ditemukan")
		}
		return fmt.Errorf("failed to fetch comment owner: %w", err)
	}
	if actual != owner {
		return internal_errors.NewAuthorization("anda tidak berhak mengakses resource ini")
	}
	return nil
}

// GetCommentsByThreadId returns every comment of the thread, deleted ones
// included, with the author username resolved and the like tally attached.
// Ordered ascending by creation time.
func (s *Storage) GetCommentsByThreadId(threadId domain.ThreadId) ([]domain.CommentRow, error) {
	rows, err := s.db.Query(`
        SELECT c.id, u.username, c.created_at, c.parents, c.content, c.is_deleted,
               COUNT(l.comment_id) AS like_count
        FROM comments c
        JOIN users u ON c.owner = u.id
        LEFT JOIN likes l ON l.comment_id = c.id
        WHERE c.thread_id = $1
        GROUP BY c.id, u.username
        ORDER BY c.created_at ASC
    `, threadId)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.CommentRow{}
	for rows.Next() {
		var row domain.CommentRow
		if err := rows.Scan(
			&row.Id, &row.Username, &row.Date, &row.Parents,
			&row.Content, &row.IsDeleted, &row.LikeCount,
		); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return comments, nil
}

func (s *Storage) DeleteComment(id domain.CommentId) error {
	result, err := s.db.Exec("UPDATE comments SET is_deleted = TRUE WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return internal_errors.NewNotFound("komentar tidak ditemukan")
	}
	return nil
}
