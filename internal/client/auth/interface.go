package auth

import (
	"context"

	"github.com/arkfx/BiblioShare/internal/models"
	pkgapi "github.com/arkfx/BiblioShare/pkg/api"
)

//go:generate moq -out api_mock.go . API TokenAPI

// API defines the server calls used by the authentication service
type API interface {
	// Login выполняет POST /auth/login/
	Login(ctx context.Context, req pkgapi.LoginRequest) (*pkgapi.AuthResponse, error)

	// Register выполняет POST /auth/registro/
	Register(ctx context.Context, req pkgapi.RegisterRequest) (*pkgapi.AuthResponse, error)

	// GetProfile выполняет GET /auth/perfil/
	GetProfile(ctx context.Context) (*models.Profile, error)

	// UpdateProfile выполняет PATCH /auth/perfil/
	UpdateProfile(ctx context.Context, update pkgapi.ProfileUpdate) (*models.Profile, error)
}

// TokenAPI defines the refresh endpoint used by Refresher.
// The call must not go through the auth middleware retry path
type TokenAPI interface {
	RefreshToken(ctx context.Context, refreshToken string) (*pkgapi.RefreshResponse, error)
}
