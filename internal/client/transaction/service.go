package transaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/arkfx/BiblioShare/internal/models"
)

//go:generate moq -out api_mock.go . API

// ErrActionNotAllowed действие недоступно для текущего статуса или пользователя
var ErrActionNotAllowed = errors.New("action is not allowed")

// API определяет вызовы сервера для транзакций
type API interface {
	ListTransactions(ctx context.Context) ([]models.Transaction, error)
	GetTransaction(ctx context.Context, id int64) (*models.Transaction, error)
	PerformAction(ctx context.Context, id int64, action string) (*models.Transaction, error)
}

// Service предоставляет операции над транзакциями
type Service struct {
	api    API
	logger *slog.Logger
}

// NewService создает новый сервис транзакций
func NewService(api API, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{api: api, logger: logger}
}

// List возвращает транзакции текущего пользователя
func (s *Service) List(ctx context.Context) ([]models.Transaction, error) {
	txs, err := s.api.ListTransactions(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txs, nil
}

// Get возвращает транзакцию по ID
func (s *Service) Get(ctx context.Context, id int64) (*models.Transaction, error) {
	tx, err := s.api.GetTransaction(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return tx, nil
}

// Perform выполняет действие над транзакцией и возвращает запись, полученную от сервера.
// Перед запросом повторно проверяет AllowedActions; новый статус клиент не вычисляет
func (s *Service) Perform(ctx context.Context, tx *models.Transaction, actorID int64, action Action) (*models.Transaction, error) {
	if tx == nil {
		return nil, fmt.Errorf("transaction is nil")
	}
	if !AllowedActions(tx, actorID).Has(action) {
		return nil, fmt.Errorf("%w: %s on %s transaction", ErrActionNotAllowed, action, tx.Status.Label())
	}

	updated, err := s.api.PerformAction(ctx, tx.ID, action.Endpoint())
	if err != nil {
		return nil, fmt.Errorf("failed to %s transaction: %w", action, err)
	}

	s.logger.Info("transaction updated",
		"transaction_id", updated.ID,
		"action", string(action),
		"status", string(updated.Status))
	return updated, nil
}
