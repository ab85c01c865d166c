package service

import (
	"sort"

	"github.com/syndx/forum-api/internal/domain"
	"github.com/syndx/forum-api/internal/service/utils"
)

type ThreadService interface {
	Create(title, body string, owner domain.UserId) (domain.RegisteredThread, error)
	Get(id domain.ThreadId) (domain.ThreadDetail, error)
}

type Thread struct {
	storage  ThreadStorage
	comments CommentStorage
}

type ThreadStorage interface {
	AddThread(registerThread domain.RegisterThread, owner domain.UserId) (domain.RegisteredThread, error)
	GetThreadById(id domain.ThreadId) (domain.Thread, error)
	VerifyThreadAvailability(id domain.ThreadId) error
}

func NewThread(storage ThreadStorage, comments CommentStorage) ThreadService {
	return &Thread{storage: storage, comments: comments}
}

func (t *Thread) Create(title, body string, owner domain.UserId) (domain.RegisteredThread, error) {
	registerThread, err := domain.NewRegisterThread(utils.SanitizeContent(title), utils.SanitizeContent(body))
	if err != nil {
		return domain.RegisteredThread{}, err
	}

	return t.storage.AddThread(registerThread, owner)
}

// Get fetches the thread with its comments materialized into the nested
// presentation form. Rows are sorted ascending by date before mapping so
// comments and replies come out in chronological order; ties keep the
// storage retrieval order.
func (t *Thread) Get(id domain.ThreadId) (domain.ThreadDetail, error) {
	thread, err := t.storage.GetThreadById(id)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	rows, err := t.comments.GetCommentsByThreadId(id)
	if err != nil {
		return domain.ThreadDetail{}, err
	}
	if rows == nil {
		rows = []domain.CommentRow{}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].Date.Before(rows[j].Date)
	})

	comments, err := domain.MapComments(rows)
	if err != nil {
		return domain.ThreadDetail{}, err
	}

	return domain.ThreadDetail{Thread: thread, Comments: comments}, nil
}
