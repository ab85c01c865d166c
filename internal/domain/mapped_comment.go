package domain

import (
	"time"

	internal_errors "github.com/syndx/forum-api/internal/errors"
)

// Markers substituted for the content of soft-deleted rows.
const (
	CommentDeletedMark = "**komentar telah dihapus**"
	ReplyDeletedMark   = "**balasan telah dihapus**"
)

// MappedComment is the presentation form of a top-level comment.
// Built fresh on every thread fetch, never persisted.
type MappedComment struct {
	Id        CommentId     `json:"id"`
	Username  Username      `json:"username"`
	Date      time.Time     `json:"date"`
	Content   string        `json:"content"`
	Replies   []MappedReply `json:"replies"`
	LikeCount int           `json:"likeCount"`
}

// MappedReply is the reduced view of a reply nested under its parent.
// Replies carry no like tally and no further nesting.
type MappedReply struct {
	Id       CommentId `json:"id"`
	Content  string    `json:"content"`
	Date     time.Time `json:"date"`
	Username Username  `json:"username"`
}

type node struct {
	comment   MappedComment
	parents   *CommentId
	isDeleted bool
}

// MapComments turns a flat, thread-scoped list of comment rows into the
// nested structure served to clients. Two passes: first an intermediate
// record per row with deleted content masked, then every row with a parent
// gets appended to that parent's replies list. Output keeps the relative
// order of the input, so callers must sort rows by ascending date first;
// replies then land in their parent's list in that same order.
//
// A reply whose parent id matches no row in the input is dropped: there is
// no bucket to join and its non-nil Parents keeps it out of the top level.
func MapComments(rows []CommentRow) ([]MappedComment, error) {
	if rows == nil {
		return nil, internal_errors.NewValidation("comment rows must not be nil")
	}

	nodes := make([]*node, 0, len(rows))
	byId := make(map[CommentId]*node, len(rows))
	for _, row := range rows {
		content := row.Content
		if row.IsDeleted {
			content = CommentDeletedMark
		}
		n := &node{
			comment: MappedComment{
				Id:        row.Id,
				Username:  row.Username,
				Date:      row.Date,
				Content:   content,
				Replies:   []MappedReply{},
				LikeCount: row.LikeCount,
			},
			parents:   row.Parents,
			isDeleted: row.IsDeleted,
		}
		nodes = append(nodes, n)
		byId[row.Id] = n
	}

	for _, row := range rows {
		if row.Parents == nil {
			continue
		}
		parent, ok := byId[*row.Parents]
		if !ok {
			continue
		}
		child := byId[row.Id]
		content := child.comment.Content
		if child.isDeleted {
			content = ReplyDeletedMark
		}
		parent.comment.Replies = append(parent.comment.Replies, MappedReply{
			Id:       child.comment.Id,
			Content:  content,
			Date:     child.comment.Date,
			Username: child.comment.Username,
		})
	}

	result := make([]MappedComment, 0, len(nodes))
	for _, n := range nodes {
		if n.parents == nil {
			result = append(result, n.comment)
		}
	}
	return result, nil
}
