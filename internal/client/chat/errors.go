package chat

import "errors"

var (
	// ErrEmptyMessage сообщение пустое после удаления пробелов
	ErrEmptyMessage = errors.New("message cannot be empty")

	// ErrNotStarted чат не открыт
	ErrNotStarted = errors.New("chat is not started")
)
