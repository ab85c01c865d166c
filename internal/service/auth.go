package service

import (
	"regexp"

	"github.com/syndx/forum-api/internal/domain"
	internal_errors "github.com/syndx/forum-api/internal/errors"
	"github.com/syndx/forum-api/internal/logger"
	"golang.org/x/crypto/bcrypt"
)

type AuthService interface {
	Register(username, password, fullname string) (domain.RegisteredUser, error)
	Login(username, password string) (string, error)
}

type Auth struct {
	storage    AuthStorage
	jwt        Jwt
	bcryptCost int
}

type AuthStorage interface {
	AddUser(username domain.Username, passHash, fullname string) (domain.RegisteredUser, error)
	GetUserByUsername(username domain.Username) (domain.User, error)
}

type Jwt interface {
	NewToken(user domain.User) (string, error)
}

var usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

func NewAuth(storage AuthStorage, jwt Jwt, bcryptCost int) AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &Auth{storage: storage, jwt: jwt, bcryptCost: bcryptCost}
}

func (a *Auth) Register(username, password, fullname string) (domain.RegisteredUser, error) {
	if username == "" || password == "" || fullname == "" {
		return domain.RegisteredUser{}, internal_errors.NewValidation("user needs username, password and fullname")
	}
	if len(username) > 50 {
		return domain.RegisteredUser{}, internal_errors.NewValidation("username must be at most 50 characters")
	}
	if !usernameRe.MatchString(username) {
		return domain.RegisteredUser{}, internal_errors.NewValidation("username contains restricted characters")
	}

	passHash, err := bcrypt.GenerateFromPassword([]byte(password), a.bcryptCost)
	if err != nil {
		logger.Log.Error("failed to hash password", "error", err)
		return domain.RegisteredUser{}, err
	}

	return a.storage.AddUser(username, string(passHash), fullname)
}

// Login verifies credentials and hands back a signed access token. A
// missing user and a wrong password surface as the same error so the
// endpoint does not leak which usernames exist.
func (a *Auth) Login(username, password string) (string, error) {
	if username == "" || password == "" {
		return "", internal_errors.NewValidation("login needs username and password")
	}

	user, err := a.storage.GetUserByUsername(username)
	if err != nil {
		if internal_errors.IsNotFound(err) {
			return "", internal_errors.NewUnauthenticated("Wrong username or password")
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PassHash), []byte(password)); err != nil {
		return "", internal_errors.NewUnauthenticated("Wrong username or password")
	}

	return a.jwt.NewToken(user)
}
