package storage

import (
	"context"

	"github.com/arkfx/BiblioShare/internal/models"
)

//go:generate moq -out profile_mock.go . ProfileStorage

// ProfileStorage хранит последний известный профиль пользователя.
// Это кэш, а не источник истины: профиль всегда можно получить с сервера заново.
type ProfileStorage interface {
	// SaveProfile сохраняет профиль
	SaveProfile(ctx context.Context, profile *models.Profile) error

	// GetProfile возвращает сохраненный профиль или ErrProfileNotFound
	GetProfile(ctx context.Context) (*models.Profile, error)

	// DeleteProfile удаляет профиль (logout)
	DeleteProfile(ctx context.Context) error
}
