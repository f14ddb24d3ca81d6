package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

// RequestIDHeader заголовок с идентификатором запроса
const RequestIDHeader = "X-Request-ID"

// LoggingTransport логирует исходящие HTTP запросы.
// Логирует метод, путь, статус и время выполнения.
// НЕ логирует заголовки, тела и query (токены, пароли, содержимое сообщений)
type LoggingTransport struct {
	next   http.RoundTripper
	logger *slog.Logger
	quiet  []string
}

// NewLoggingTransport создает транспорт с логированием поверх next.
// Успешные запросы к путям, содержащим quietPaths, логируются только на уровне Debug
// (например, опрос чата каждые несколько секунд)
func NewLoggingTransport(next http.RoundTripper, logger *slog.Logger, quietPaths ...string) *LoggingTransport {
	if next == nil {
		next = http.DefaultTransport
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LoggingTransport{next: next, logger: logger, quiet: quietPaths}
}

// RoundTrip implements http.RoundTripper
func (t *LoggingTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	out := req
	requestID := req.Header.Get(RequestIDHeader)
	if requestID == "" {
		requestID = uuid.NewString()
		out = req.Clone(req.Context())
		out.Header.Set(RequestIDHeader, requestID)
	}

	resp, err := t.next.RoundTrip(out)
	duration := time.Since(start)

	attrs := []any{
		"method", req.Method,
		"path", req.URL.Path,
		"request_id", requestID,
		"duration_ms", duration.Milliseconds(),
	}

	if err != nil {
		t.logger.Log(req.Context(), slog.LevelWarn, "HTTP request failed", append(attrs, "error", err)...)
		return nil, err
	}

	// Определяем уровень логирования на основе статуса
	level := slog.LevelDebug
	switch {
	case resp.StatusCode >= 500:
		level = slog.LevelError
	case resp.StatusCode >= 400:
		level = slog.LevelWarn
	case !t.isQuiet(req.URL.Path):
		level = slog.LevelInfo
	}

	t.logger.Log(req.Context(), level, "HTTP request", append(attrs, "status", resp.StatusCode)...)
	return resp, nil
}

func (t *LoggingTransport) isQuiet(path string) bool {
	for _, p := range t.quiet {
		if strings.Contains(path, p) {
			return true
		}
	}
	return false
}
