package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/syndx/forum-api/internal/config"
	"github.com/syndx/forum-api/internal/domain"
	"github.com/syndx/forum-api/internal/middleware"
)

type MockAuthService struct {
	MockRegister func(username, password, fullname string) (domain.RegisteredUser, error)
	MockLogin    func(username, password string) (string, error)
}

func (m *MockAuthService) Register(username, password, fullname string) (domain.RegisteredUser, error) {
	if m.MockRegister != nil {
		return m.MockRegister(username, password, fullname)
	}
	return domain.RegisteredUser{Id: "user-123", Username: username, Fullname: fullname}, nil
}

func (m *MockAuthService) Login(username, password string) (string, error) {
	if m.MockLogin != nil {
		return m.MockLogin(username, password)
	}
	return "token", nil
}

type MockThreadService struct {
	MockCreate func(title, body string, owner domain.UserId) (domain.RegisteredThread, error)
	MockGet    func(id domain.ThreadId) (domain.ThreadDetail, error)
}

func (m *MockThreadService) Create(title, body string, owner domain.UserId) (domain.RegisteredThread, error) {
	if m.MockCreate != nil {
		return m.MockCreate(title, body, owner)
	}
	return domain.RegisteredThread{Id: "thread-123", Title: title, Owner: owner}, nil
}

func (m *MockThreadService) Get(id domain.ThreadId) (domain.ThreadDetail, error) {
	if m.MockGet != nil {
		return m.MockGet(id)
	}
	return domain.ThreadDetail{
		Thread:   domain.Thread{Id: id, Title: "judul", Body: "isi", Username: "dicoding"},
		Comments: []domain.MappedComment{},
	}, nil
}

type MockCommentService struct {
	MockCreate func(threadId domain.ThreadId, owner domain.UserId, content string, parents *domain.CommentId) (domain.RegisteredComment, error)
	MockDelete func(id domain.CommentId, threadId domain.ThreadId, owner domain.UserId, replyId *domain.CommentId) error
}

func (m *MockCommentService) Create(threadId domain.ThreadId, owner domain.UserId, content string, parents *domain.CommentId) (domain.RegisteredComment, error) {
	if m.MockCreate != nil {
		return m.MockCreate(threadId, owner, content, parents)
	}
	return domain.RegisteredComment{Id: "comment-123", Content: content, Owner: owner}, nil
}

func (m *MockCommentService) Delete(id domain.CommentId, threadId domain.ThreadId, owner domain.UserId, replyId *domain.CommentId) error {
	if m.MockDelete != nil {
		return m.MockDelete(id, threadId, owner, replyId)
	}
	return nil
}

type MockLikeService struct {
	MockToggle func(threadId domain.ThreadId, owner domain.UserId, commentId domain.CommentId) error
}

func (m *MockLikeService) Toggle(threadId domain.ThreadId, owner domain.UserId, commentId domain.CommentId) error {
	if m.MockToggle != nil {
		return m.MockToggle(threadId, owner, commentId)
	}
	return nil
}

type MockPinger struct {
	MockPing func(ctx context.Context) error
}

func (m *MockPinger) Ping(ctx context.Context) error {
	if m.MockPing != nil {
		return m.MockPing(ctx)
	}
	return nil
}

// --- Test plumbing ---

func testConfig() *config.Config {
	return &config.Config{Public: config.Public{JwtTTL: config.Duration(15 * time.Minute)}}
}

func newTestHandler() (*Handler, *MockAuthService, *MockThreadService, *MockCommentService, *MockLikeService) {
	auth := &MockAuthService{}
	thread := &MockThreadService{}
	comment := &MockCommentService{}
	like := &MockLikeService{}
	h := New(auth, thread, comment, like, &MockPinger{}, testConfig())
	return h, auth, thread, comment, like
}

// newTestRouter mounts the handler on the real route patterns so
// chi.URLParam resolves the same way it does in production.
func newTestRouter(h *Handler) *chi.Mux {
	r := chi.NewRouter()
	r.Get("/health", h.Health)
	r.Get("/ready", h.Ready)
	r.Post("/users", h.RegisterUser)
	r.Post("/authentications", h.Login)
	r.Post("/threads", h.CreateThread)
	r.Get("/threads/{threadId}", h.GetThread)
	r.Post("/threads/{threadId}/comments", h.CreateComment)
	r.Delete("/threads/{threadId}/comments/{commentId}", h.DeleteComment)
	r.Post("/threads/{threadId}/comments/{commentId}/replies", h.CreateReply)
	r.Delete("/threads/{threadId}/comments/{commentId}/replies/{replyId}", h.DeleteReply)
	r.Put("/threads/{threadId}/comments/{commentId}/likes", h.ToggleLike)
	return r
}

func doRequest(r http.Handler, method, target string, body []byte, user *domain.User) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, bytes.NewBuffer(body))
	if user != nil {
		req = req.WithContext(context.WithValue(req.Context(), middleware.UserClaimsKey, user))
	}
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

type envelope struct {
	Status  string                     `json:"status"`
	Message string                     `json:"message"`
	Data    map[string]json.RawMessage `json:"data"`
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

var testUser = &domain.User{Id: "user-123", Username: "dicoding"}
