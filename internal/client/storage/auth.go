package storage

import (
	"context"

	"github.com/arkfx/BiblioShare/internal/models"
)

//go:generate moq -out auth_mock.go . AuthStorage

// AuthStorage defines interface for the durable session record on client.
// This is the lowest storage layer: one record under a fixed key holding {access, refresh}.
type AuthStorage interface {
	// SaveAuth stores credentials, replacing the previous record
	SaveAuth(ctx context.Context, creds *models.Credentials) error

	// GetAuth retrieves stored credentials.
	// Returns ErrAuthNotFound if no record exists and ErrAuthCorrupted if it cannot be decoded
	GetAuth(ctx context.Context) (*models.Credentials, error)

	// DeleteAuth removes the record. Deleting a missing record is not an error
	DeleteAuth(ctx context.Context) error
}
