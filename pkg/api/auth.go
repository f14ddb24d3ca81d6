package api

import "github.com/arkfx/BiblioShare/internal/models"

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Username        string `json:"username"`
	Email           string `json:"email"`
	Password        string `json:"senha"`
	ConfirmPassword string `json:"confirmar_senha"`
}

// TokenPair пара токенов, выданная сервером
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// AuthResponse ответ на login/registro
type AuthResponse struct {
	Tokens TokenPair      `json:"tokens"`
	User   models.Profile `json:"usuario"`
}

// RefreshRequest запрос на обновление access token
type RefreshRequest struct {
	Refresh string `json:"refresh"`
}

// RefreshResponse содержит только новый access token, refresh token не ротируется
type RefreshResponse struct {
	Access string `json:"access"`
}

// ProfileUpdate частичное обновление профиля (PATCH)
type ProfileUpdate struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	City      *string `json:"cidade,omitempty"`
	State     *string `json:"estado,omitempty"`
}

// ErrorResponse представляет ответ с ошибкой в формате DRF
type ErrorResponse struct {
	Detail string `json:"detail"`
}
