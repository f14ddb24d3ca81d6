package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/arkfx/BiblioShare/internal/client/storage"
	"github.com/arkfx/BiblioShare/internal/models"
)

// ProfileListener получает текущий профиль при каждом его изменении; nil означает выход из сессии
type ProfileListener func(profile *models.Profile)

// SessionStore хранит текущую пару токенов и последний известный профиль.
// Состояние в памяти обновляется синхронно вместе с записью в хранилище,
// поэтому последующие чтения сразу видят результат Save/Clear.
// Сетевых вызовов не делает.
type SessionStore struct {
	authStorage    storage.AuthStorage
	profileStorage storage.ProfileStorage
	logger         *slog.Logger
	creds          *models.Credentials
	profile        *models.Profile
	listeners      map[uint64]ProfileListener
	mu             sync.RWMutex
	nextListenerID uint64
}

// NewSessionStore creates a session store over durable storage.
// profileStorage may be nil, then the profile is kept in memory only
func NewSessionStore(authStorage storage.AuthStorage, profileStorage storage.ProfileStorage, logger *slog.Logger) *SessionStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &SessionStore{
		authStorage:    authStorage,
		profileStorage: profileStorage,
		logger:         logger,
		listeners:      make(map[uint64]ProfileListener),
	}
}

// Load читает сохраненную сессию при старте.
// Не возвращает ошибок: битая запись удаляется, отсутствие записи означает выход из сессии
func (s *SessionStore) Load(ctx context.Context) *models.Credentials {
	creds, err := s.authStorage.GetAuth(ctx)
	switch {
	case err == nil:
	case errors.Is(err, storage.ErrAuthNotFound):
		creds = nil
	case errors.Is(err, storage.ErrAuthCorrupted):
		s.logger.Warn("stored session is corrupted, clearing", "error", err)
		if delErr := s.authStorage.DeleteAuth(ctx); delErr != nil {
			s.logger.Warn("failed to delete corrupted session", "error", delErr)
		}
		creds = nil
	default:
		s.logger.Warn("failed to load session", "error", err)
		creds = nil
	}

	var profile *models.Profile
	if creds.HasAccess() && s.profileStorage != nil {
		if p, err := s.profileStorage.GetProfile(ctx); err == nil {
			profile = p
		} else if !errors.Is(err, storage.ErrProfileNotFound) {
			s.logger.Debug("failed to load cached profile", "error", err)
		}
	}

	s.mu.Lock()
	s.creds = copyCredentials(creds)
	s.profile = profile
	s.mu.Unlock()

	if profile != nil {
		s.notify(profile)
	}

	return copyCredentials(creds)
}

// Save сохраняет новую пару токенов (login/registro)
func (s *SessionStore) Save(ctx context.Context, creds *models.Credentials) error {
	if creds == nil {
		return fmt.Errorf("credentials are nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.authStorage.SaveAuth(ctx, creds); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	s.creds = copyCredentials(creds)

	s.logger.Debug("session saved")
	return nil
}

// UpdateAccessToken заменяет только access token, сохраняя refresh token
func (s *SessionStore) UpdateAccessToken(ctx context.Context, accessToken string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.creds == nil {
		return ErrNotAuthenticated
	}

	updated := &models.Credentials{
		AccessToken:  accessToken,
		RefreshToken: s.creds.RefreshToken,
	}
	if err := s.authStorage.SaveAuth(ctx, updated); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	s.creds = updated

	s.logger.Debug("access token replaced")
	return nil
}

// Clear удаляет все сохраненные данные сессии и сбрасывает профиль
func (s *SessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.creds = nil
	s.profile = nil
	s.mu.Unlock()

	var errs []error
	if err := s.authStorage.DeleteAuth(ctx); err != nil {
		errs = append(errs, fmt.Errorf("failed to delete session: %w", err))
	}
	if s.profileStorage != nil {
		if err := s.profileStorage.DeleteProfile(ctx); err != nil {
			errs = append(errs, fmt.Errorf("failed to delete profile: %w", err))
		}
	}

	s.notify(nil)

	s.logger.Info("session cleared")
	return errors.Join(errs...)
}

// Credentials возвращает копию текущей пары токенов или nil
func (s *SessionStore) Credentials() *models.Credentials {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyCredentials(s.creds)
}

// AccessToken возвращает текущий access token или пустую строку
func (s *SessionStore) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.creds == nil {
		return ""
	}
	return s.creds.AccessToken
}

// RefreshToken возвращает текущий refresh token или пустую строку
func (s *SessionStore) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.creds == nil {
		return ""
	}
	return s.creds.RefreshToken
}

// IsAuthenticated сообщает, есть ли access token
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.creds.HasAccess()
}

// Profile возвращает последний известный профиль или nil
func (s *SessionStore) Profile() *models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return copyProfile(s.profile)
}

// SetProfile обновляет кэш профиля и уведомляет подписчиков
func (s *SessionStore) SetProfile(ctx context.Context, profile *models.Profile) {
	if profile == nil {
		return
	}

	s.mu.Lock()
	s.profile = copyProfile(profile)
	s.mu.Unlock()

	if s.profileStorage != nil {
		if err := s.profileStorage.SaveProfile(ctx, profile); err != nil {
			// Кэш профиля не критичен
			s.logger.Warn("failed to cache profile", "error", err)
		}
	}

	s.notify(profile)
}

// Subscribe регистрирует подписчика на изменения профиля.
// Возвращает функцию отписки
func (s *SessionStore) Subscribe(listener ProfileListener) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextListenerID
	s.nextListenerID++
	s.listeners[id] = listener
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			delete(s.listeners, id)
			s.mu.Unlock()
		})
	}
}

// notify вызывает подписчиков вне блокировки
func (s *SessionStore) notify(profile *models.Profile) {
	s.mu.RLock()
	listeners := make([]ProfileListener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.RUnlock()

	for _, l := range listeners {
		l(copyProfile(profile))
	}
}

func copyCredentials(c *models.Credentials) *models.Credentials {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

func copyProfile(p *models.Profile) *models.Profile {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}
