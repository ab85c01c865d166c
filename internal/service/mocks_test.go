package service

import (
	"strings"

	"github.com/syndx/forum-api/internal/domain"
)

// --- Mocks ---
// Hand-rolled mocks with overridable function fields. Defaults succeed;
// tests override just the calls they care about and inspect the recorded
// arguments afterwards.

type MockThreadStorage struct {
	addThreadFunc               func(rt domain.RegisterThread, owner domain.UserId) (domain.RegisteredThread, error)
	getThreadByIdFunc           func(id domain.ThreadId) (domain.Thread, error)
	verifyThreadFunc            func(id domain.ThreadId) error
	verifyThreadAvailabilityIds []domain.ThreadId
	addThreadCalled             bool
}

func (m *MockThreadStorage) AddThread(rt domain.RegisterThread, owner domain.UserId) (domain.RegisteredThread, error) {
	m.addThreadCalled = true
	if m.addThreadFunc != nil {
		return m.addThreadFunc(rt, owner)
	}
	return domain.RegisteredThread{Id: "thread-123", Title: rt.Title, Owner: owner}, nil
}

func (m *MockThreadStorage) GetThreadById(id domain.ThreadId) (domain.Thread, error) {
	if m.getThreadByIdFunc != nil {
		return m.getThreadByIdFunc(id)
	}
	return domain.Thread{Id: id, Title: "thread title", Username: "dicoding"}, nil
}

func (m *MockThreadStorage) VerifyThreadAvailability(id domain.ThreadId) error {
	m.verifyThreadAvailabilityIds = append(m.verifyThreadAvailabilityIds, id)
	if m.verifyThreadFunc != nil {
		return m.verifyThreadFunc(id)
	}
	return nil
}

type MockCommentStorage struct {
	addCommentFunc            func(threadId domain.ThreadId, owner domain.UserId, rc domain.RegisterComment, parents *domain.CommentId) (domain.RegisteredComment, error)
	getCommentByIdFunc        func(id domain.CommentId) (domain.Comment, error)
	verifyAvailabilityFunc    func(id domain.CommentId) error
	verifyOwnerFunc           func(id domain.CommentId, owner domain.UserId) error
	getCommentsByThreadIdFunc func(threadId domain.ThreadId) ([]domain.CommentRow, error)
	deleteCommentFunc         func(id domain.CommentId) error

	getCommentByIdIds     []domain.CommentId
	verifyAvailabilityIds []domain.CommentId
	verifyOwnerIds        []domain.CommentId
	deletedIds            []domain.CommentId
	addCommentCalled      bool
}

func (m *MockCommentStorage) AddComment(threadId domain.ThreadId, owner domain.UserId, rc domain.RegisterComment, parents *domain.CommentId) (domain.RegisteredComment, error) {
	m.addCommentCalled = true
	if m.addCommentFunc != nil {
		return m.addCommentFunc(threadId, owner, rc, parents)
	}
	return domain.RegisteredComment{Id: "comment-123", Content: rc.Content, Owner: owner}, nil
}

func (m *MockCommentStorage) GetCommentById(id domain.CommentId) (domain.Comment, error) {
	m.getCommentByIdIds = append(m.getCommentByIdIds, id)
	if m.getCommentByIdFunc != nil {
		return m.getCommentByIdFunc(id)
	}
	return domain.Comment{Id: id, ThreadId: "thread-123", Owner: "user-123", Content: "content"}, nil
}

func (m *MockCommentStorage) VerifyCommentAvailability(id domain.CommentId) error {
	m.verifyAvailabilityIds = append(m.verifyAvailabilityIds, id)
	if m.verifyAvailabilityFunc != nil {
		return m.verifyAvailabilityFunc(id)
	}
	return nil
}

func (m *MockCommentStorage) VerifyOwner(id domain.CommentId, owner domain.UserId) error {
	m.verifyOwnerIds = append(m.verifyOwnerIds, id)
	if m.verifyOwnerFunc != nil {
		return m.verifyOwnerFunc(id, owner)
	}
	return nil
}

func (m *MockCommentStorage) GetCommentsByThreadId(threadId domain.ThreadId) ([]domain.CommentRow, error) {
	if m.getCommentsByThreadIdFunc != nil {
		return m.getCommentsByThreadIdFunc(threadId)
	}
	return []domain.CommentRow{}, nil
}

func (m *MockCommentStorage) DeleteComment(id domain.CommentId) error {
	m.deletedIds = append(m.deletedIds, id)
	if m.deleteCommentFunc != nil {
		return m.deleteCommentFunc(id)
	}
	return nil
}

// MockLikeStorage keeps an in-memory like set so toggle sequences behave
// like the real table. Function fields still override individual calls.
type MockLikeStorage struct {
	checkFunc  func(owner domain.UserId, commentId domain.CommentId) (bool, error)
	addFunc    func(owner domain.UserId, commentId domain.CommentId) error
	removeFunc func(owner domain.UserId, commentId domain.CommentId) error

	likes       map[string]bool
	addCalls    int
	removeCalls int
}

func newMockLikeStorage() *MockLikeStorage {
	return &MockLikeStorage{likes: make(map[string]bool)}
}

func likeKey(owner domain.UserId, commentId domain.CommentId) string {
	return owner + "|" + commentId
}

func (m *MockLikeStorage) CheckCommentHasLike(owner domain.UserId, commentId domain.CommentId) (bool, error) {
	if m.checkFunc != nil {
		return m.checkFunc(owner, commentId)
	}
	return m.likes[likeKey(owner, commentId)], nil
}

func (m *MockLikeStorage) AddLike(owner domain.UserId, commentId domain.CommentId) error {
	m.addCalls++
	if m.addFunc != nil {
		return m.addFunc(owner, commentId)
	}
	m.likes[likeKey(owner, commentId)] = true
	return nil
}

func (m *MockLikeStorage) RemoveLike(owner domain.UserId, commentId domain.CommentId) error {
	m.removeCalls++
	if m.removeFunc != nil {
		return m.removeFunc(owner, commentId)
	}
	delete(m.likes, likeKey(owner, commentId))
	return nil
}

func (m *MockLikeStorage) GetLikeCountByCommentId(commentId domain.CommentId) (int, error) {
	count := 0
	for key, liked := range m.likes {
		if liked && strings.HasSuffix(key, "|"+commentId) {
			count++
		}
	}
	return count, nil
}

type MockAuthStorage struct {
	addUserFunc           func(username domain.Username, passHash, fullname string) (domain.RegisteredUser, error)
	getUserByUsernameFunc func(username domain.Username) (domain.User, error)
	addUserCalled         bool
	savedPassHash         string
}

func (m *MockAuthStorage) AddUser(username domain.Username, passHash, fullname string) (domain.RegisteredUser, error) {
	m.addUserCalled = true
	m.savedPassHash = passHash
	if m.addUserFunc != nil {
		return m.addUserFunc(username, passHash, fullname)
	}
	return domain.RegisteredUser{Id: "user-123", Username: username, Fullname: fullname}, nil
}

func (m *MockAuthStorage) GetUserByUsername(username domain.Username) (domain.User, error) {
	if m.getUserByUsernameFunc != nil {
		return m.getUserByUsernameFunc(username)
	}
	return domain.User{Id: "user-123", Username: username}, nil
}

type MockJwt struct {
	newTokenFunc func(user domain.User) (string, error)
}

func (m *MockJwt) NewToken(user domain.User) (string, error) {
	if m.newTokenFunc != nil {
		return m.newTokenFunc(user)
	}
	return "token", nil
}
