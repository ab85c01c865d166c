package domain

type (
	UserId   = string
	Username = string
	Password = string

	ThreadId    = string
	ThreadTitle = string

	CommentId = string
)
