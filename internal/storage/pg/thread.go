package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/syndx/forum-api/internal/domain"
	internal_errors "github.com/syndx/forum-api/internal/errors"
)

func (s *Storage) AddThread(registerThread domain.RegisterThread, owner domain.UserId) (domain.RegisteredThread, error) {
	id := s.newId("thread")

	var registered domain.RegisteredThread
	err := s.db.QueryRow(`
        INSERT INTO threads (id, title, body, owner)
        VALUES ($1, $2, $3, $4)
        RETURNING id, title, owner
    `, id, registerThread.Title, registerThread.Body, owner).Scan(
		&registered.Id, &registered.Title, &registered.Owner,
	)
	if err != nil {
		return domain.RegisteredThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}

	return registered, nil
}

func (s *Storage) GetThreadById(id domain.ThreadId) (domain.Thread, error) {
	var thread domain.Thread
	err := s.db.QueryRow(`
        SELECT t.id, t.title, t.body, t.created_at, u.username
        FROM threads t
        JOIN users u ON t.owner = u.id
        WHERE t.id = $1
    `, id).Scan(&thread.Id, &thread.Title, &thread.Body, &thread.Date, &thread.Username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Thread{}, internal_errors.NewNotFound("thread tidak ditemukan")
		}
		return domain.Thread{}, fmt.Errorf("failed to fetch thread: %w", err)
	}

	return thread, nil
}

func (s *Storage) VerifyThreadAvailability(id domain.ThreadId) error {
	var found domain.ThreadId
	err := s.db.QueryRow("SELECT id FROM threads WHERE id = $1", id).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NewNotFound("thread tidak ditemukan")
		}
		return fmt.Errorf("failed to verify thread: %w", err)
	}
	return nil
}
