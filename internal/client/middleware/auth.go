package middleware

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/sync/singleflight"

	"github.com/arkfx/BiblioShare/internal/client/api"
)

// ErrSessionExpired запрос получил 401, а сессия уже закрыта
var ErrSessionExpired = fmt.Errorf("session expired: %w", api.ErrUnauthorized)

// DefaultAnonymousPaths пути, которые отправляются без токена и без повтора при 401
var DefaultAnonymousPaths = []string{
	api.PathLogin,
	api.PathRegister,
	api.PathRefresh,
}

// Session текущая сессия, из которой берется access token
type Session interface {
	AccessToken() string
	Clear(ctx context.Context) error
}

// Refresher получает новый access token
type Refresher interface {
	Refresh(ctx context.Context) (string, error)
}

// AuthTransport добавляет Bearer токен к запросам и при 401 один раз
// обновляет токен и повторяет запрос.
// Одновременные 401 приводят к одному обновлению: остальные запросы ждут
// его результата и повторяются с тем же новым токеном
type AuthTransport struct {
	next           http.RoundTripper
	session        Session
	refresher      Refresher
	logger         *slog.Logger
	onExpired      func(error)
	anonymousPaths []string
	group          singleflight.Group
}

// AuthOption настраивает AuthTransport
type AuthOption func(*AuthTransport)

// WithSessionExpired задает обработчик закрытия сессии после неудачного обновления токена
func WithSessionExpired(fn func(error)) AuthOption {
	return func(t *AuthTransport) {
		t.onExpired = fn
	}
}

// WithAnonymousPaths заменяет список путей без авторизации
func WithAnonymousPaths(paths ...string) AuthOption {
	return func(t *AuthTransport) {
		t.anonymousPaths = paths
	}
}

// WithAuthLogger задает логгер
func WithAuthLogger(logger *slog.Logger) AuthOption {
	return func(t *AuthTransport) {
		t.logger = logger
	}
}

// NewAuthTransport создает транспорт авторизации поверх next.
// Если next равен nil, используется http.DefaultTransport
func NewAuthTransport(next http.RoundTripper, session Session, refresher Refresher, opts ...AuthOption) *AuthTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	t := &AuthTransport{
		next:           next,
		session:        session,
		refresher:      refresher,
		logger:         slog.Default(),
		anonymousPaths: DefaultAnonymousPaths,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// RoundTrip implements http.RoundTripper
func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.isAnonymous(req.URL.Path) {
		return t.next.RoundTrip(req)
	}

	token := t.session.AccessToken()
	resp, err := t.send(req, token)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		return resp, err
	}

	if !canReplay(req) {
		// тело уже прочитано и не может быть отправлено повторно
		return resp, nil
	}
	drainBody(resp)

	newToken, err := t.refresh(req.Context(), token)
	if err != nil {
		return nil, err
	}

	retry, err := rewind(req)
	if err != nil {
		return nil, err
	}

	t.logger.Debug("retrying request with refreshed token", "method", req.Method, "path", req.URL.Path)

	// повтор только один: повторный 401 возвращается вызывающему как есть
	return t.send(retry, newToken)
}

// refresh возвращает токен для повтора запроса, отправленного с failedToken
func (t *AuthTransport) refresh(ctx context.Context, failedToken string) (string, error) {
	if current, ok := t.replacement(failedToken); ok {
		return current, nil
	}

	ch := t.group.DoChan("refresh", func() (interface{}, error) {
		// обновление могло завершиться, пока этот запрос ждал ответа
		current := t.session.AccessToken()
		if current == "" {
			return "", ErrSessionExpired
		}
		if current != failedToken {
			return current, nil
		}

		// результат нужен всем ожидающим, поэтому отмена одного запроса его не прерывает
		token, err := t.refresher.Refresh(context.WithoutCancel(ctx))
		if err != nil {
			t.expire(ctx, err)
			if !errors.Is(err, api.ErrUnauthorized) {
				err = fmt.Errorf("%w: %w", ErrSessionExpired, err)
			}
			return "", err
		}
		return token, nil
	})

	// ожидающий запрос может уйти по своему ctx, само обновление продолжится
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return "", res.Err
		}
		if res.Shared {
			t.logger.Debug("joined in-flight token refresh")
		}
		return res.Val.(string), nil
	}
}

// replacement сообщает, заменен ли failedToken другим действующим токеном
func (t *AuthTransport) replacement(failedToken string) (string, bool) {
	current := t.session.AccessToken()
	return current, current != "" && current != failedToken
}

func (t *AuthTransport) expire(ctx context.Context, cause error) {
	t.logger.Warn("token refresh failed, closing session", "error", cause)

	if err := t.session.Clear(context.WithoutCancel(ctx)); err != nil {
		t.logger.Error("failed to clear session", "error", err)
	}
	if t.onExpired != nil {
		t.onExpired(cause)
	}
}

func (t *AuthTransport) send(req *http.Request, token string) (*http.Response, error) {
	out := req.Clone(req.Context())
	if token != "" {
		out.Header.Set("Authorization", "Bearer "+token)
	} else {
		out.Header.Del("Authorization")
	}
	return t.next.RoundTrip(out)
}

func (t *AuthTransport) isAnonymous(path string) bool {
	for _, p := range t.anonymousPaths {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}

func hasBody(req *http.Request) bool {
	return req.Body != nil && req.Body != http.NoBody
}

func canReplay(req *http.Request) bool {
	return !hasBody(req) || req.GetBody != nil
}

func rewind(req *http.Request) (*http.Request, error) {
	out := req.Clone(req.Context())
	if !hasBody(req) {
		return out, nil
	}
	body, err := req.GetBody()
	if err != nil {
		return nil, fmt.Errorf("failed to rewind request body: %w", err)
	}
	out.Body = body
	return out, nil
}

func drainBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	_ = resp.Body.Close()
}
