package auth

import (
	"errors"
	"fmt"

	"github.com/arkfx/BiblioShare/internal/client/api"
)

var (
	// ErrMissingRefreshToken refresh невозможен: сессия должна быть закрыта без сетевого вызова
	ErrMissingRefreshToken = fmt.Errorf("refresh token is missing: %w", api.ErrUnauthorized)

	// ErrRefreshFailed сервер или сеть не позволили обновить access token
	ErrRefreshFailed = fmt.Errorf("token refresh failed: %w", api.ErrUnauthorized)

	// ErrInvalidCredentials сервер отклонил email или пароль (401 на login)
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNotAuthenticated нет активной сессии
	ErrNotAuthenticated = errors.New("not authenticated")
)
