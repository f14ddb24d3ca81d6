package chat

import (
	"context"

	"github.com/arkfx/BiblioShare/internal/models"
)

//go:generate moq -out api_mock.go . MessageAPI

// MessageAPI определяет вызовы сервера, которые использует Engine
type MessageAPI interface {
	// ListMessages возвращает сообщения транзакции; afterID > 0 включает инкрементальную выборку
	ListMessages(ctx context.Context, transactionID, afterID int64) ([]models.Message, error)

	// SendMessage создает сообщение и возвращает его в виде, сохраненном сервером
	SendMessage(ctx context.Context, transactionID int64, content string) (*models.Message, error)
}
