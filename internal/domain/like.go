package domain

// Like is an existence record: one row per (owner, comment) pair means
// that user likes that comment. There is no counter column; tallies are
// computed by counting rows.
type Like struct {
	Owner     UserId
	CommentId CommentId
}
