package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/arkfx/BiblioShare/internal/client/api"
	"github.com/arkfx/BiblioShare/internal/models"
	"github.com/arkfx/BiblioShare/internal/validation"
	pkgapi "github.com/arkfx/BiblioShare/pkg/api"
)

// Service предоставляет функции авторизации поверх SessionStore
type Service struct {
	api    API
	store  *SessionStore
	logger *slog.Logger
}

// NewService создает новый сервис авторизации
func NewService(api API, store *SessionStore, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		api:    api,
		store:  store,
		logger: logger,
	}
}

// RegisterInput данные для регистрации
type RegisterInput struct {
	Username        string
	Email           string
	Password        string
	ConfirmPassword string
}

// Login выполняет аутентификацию пользователя и сохраняет сессию
func (s *Service) Login(ctx context.Context, email, password string) (*models.Profile, error) {
	// Валидация входных данных
	if err := validation.ValidateEmail(email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePassword(password); err != nil {
		return nil, err
	}

	resp, err := s.api.Login(ctx, pkgapi.LoginRequest{Email: email, Password: password})
	if err != nil {
		// 401 здесь означает неверные данные, а не истекшую сессию
		if errors.Is(err, api.ErrUnauthorized) {
			return nil, fmt.Errorf("login failed: %w", ErrInvalidCredentials)
		}
		return nil, fmt.Errorf("login failed: %w", err)
	}

	if err := s.persist(ctx, resp); err != nil {
		return nil, err
	}

	s.logger.Info("logged in", "user_id", resp.User.ID)
	return &resp.User, nil
}

// Register регистрирует нового пользователя и сразу открывает сессию
func (s *Service) Register(ctx context.Context, in RegisterInput) (*models.Profile, error) {
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, err
	}
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, err
	}
	if err := validation.ValidatePasswordConfirmation(in.Password, in.ConfirmPassword); err != nil {
		return nil, err
	}

	resp, err := s.api.Register(ctx, pkgapi.RegisterRequest{
		Username:        in.Username,
		Email:           in.Email,
		Password:        in.Password,
		ConfirmPassword: in.ConfirmPassword,
	})
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	if err := s.persist(ctx, resp); err != nil {
		return nil, err
	}

	s.logger.Info("registered", "user_id", resp.User.ID)
	return &resp.User, nil
}

// Profile загружает профиль с сервера и обновляет кэш
func (s *Service) Profile(ctx context.Context) (*models.Profile, error) {
	if !s.store.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	profile, err := s.api.GetProfile(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile: %w", err)
	}

	s.store.SetProfile(ctx, profile)
	return profile, nil
}

// CurrentProfile возвращает кэшированный профиль, при его отсутствии загружает с сервера
func (s *Service) CurrentProfile(ctx context.Context) (*models.Profile, error) {
	if profile := s.store.Profile(); profile != nil {
		return profile, nil
	}
	return s.Profile(ctx)
}

// UpdateProfile частично обновляет профиль
func (s *Service) UpdateProfile(ctx context.Context, update pkgapi.ProfileUpdate) (*models.Profile, error) {
	if !s.store.IsAuthenticated() {
		return nil, ErrNotAuthenticated
	}

	profile, err := s.api.UpdateProfile(ctx, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.store.SetProfile(ctx, profile)
	return profile, nil
}

// IsAuthenticated сообщает, есть ли активная сессия
func (s *Service) IsAuthenticated() bool {
	return s.store.IsAuthenticated()
}

// TokenInfo возвращает сведения из текущего access token
func (s *Service) TokenInfo() (*TokenInfo, error) {
	token := s.store.AccessToken()
	if token == "" {
		return nil, ErrNotAuthenticated
	}
	return ParseAccessToken(token)
}

// Logout удаляет локальные данные сессии.
// У сервера нет endpoint для выхода: refresh token просто забывается
func (s *Service) Logout(ctx context.Context) error {
	if err := s.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to delete local session: %w", err)
	}
	return nil
}

func (s *Service) persist(ctx context.Context, resp *pkgapi.AuthResponse) error {
	if resp.Tokens.Access == "" {
		return errors.New("server returned no access token")
	}

	creds := &models.Credentials{
		AccessToken:  resp.Tokens.Access,
		RefreshToken: resp.Tokens.Refresh,
	}
	if err := s.store.Save(ctx, creds); err != nil {
		return err
	}

	s.store.SetProfile(ctx, &resp.User)
	return nil
}
