package auth

import (
	"context"
	"fmt"
	"log/slog"
)

// Refresher обновляет access token по refresh token из SessionStore.
// Закрытие сессии при ошибке остается на вызывающем
type Refresher struct {
	api    TokenAPI
	store  *SessionStore
	logger *slog.Logger
}

// NewRefresher creates a token refresher
func NewRefresher(api TokenAPI, store *SessionStore, logger *slog.Logger) *Refresher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Refresher{
		api:    api,
		store:  store,
		logger: logger,
	}
}

// Refresh получает новый access token и атомарно заменяет его в SessionStore.
// Без refresh token сразу возвращает ErrMissingRefreshToken, не обращаясь к сети
func (r *Refresher) Refresh(ctx context.Context) (string, error) {
	refreshToken := r.store.RefreshToken()
	if refreshToken == "" {
		return "", ErrMissingRefreshToken
	}

	r.logger.Debug("refreshing access token")

	resp, err := r.api.RefreshToken(ctx, refreshToken)
	if err != nil {
		r.logger.Warn("token refresh failed", "error", err)
		return "", fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}

	if err := r.store.UpdateAccessToken(ctx, resp.Access); err != nil {
		return "", fmt.Errorf("%w: %w", ErrRefreshFailed, err)
	}

	r.logger.Info("access token refreshed")
	return resp.Access, nil
}
