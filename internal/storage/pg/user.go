package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/syndx/forum-api/internal/domain"
	internal_errors "github.com/syndx/forum-api/internal/errors"
)

func (s *Storage) AddUser(username domain.Username, passHash, fullname string) (domain.RegisteredUser, error) {
	id := s.newId("user")

	var registered domain.RegisteredUser
	err := s.db.QueryRow(`
        INSERT INTO users (id, username, password, fullname)
        VALUES ($1, $2, $3, $4)
        RETURNING id, username, fullname
    `, id, username, passHash, fullname).Scan(
		&registered.Id, &registered.Username, &registered.Fullname,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolation {
			return domain.RegisteredUser{}, internal_errors.NewValidation("username tidak tersedia")
		}
		return domain.RegisteredUser{}, fmt.Errorf("failed to insert user: %w", err)
	}

	return registered, nil
}

func (s *Storage) GetUserByUsername(username domain.Username) (domain.User, error) {
	var user domain.User
	err := s.db.QueryRow(`
        SELECT id, username, password, fullname, created_at
        FROM users
        WHERE username = $1
    `, username).Scan(&user.Id, &user.Username, &user.PassHash, &user.Fullname, &user.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.User{}, internal_errors.NewNotFound("user tidak ditemukan")
		}
		return domain.User{}, fmt.Errorf("failed to fetch user: %w", err)
	}

	return user, nil
}
