package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"

	pkgapi "github.com/arkfx/BiblioShare/pkg/api"
)

// Классы ошибок, которые видят вызывающие. Проверяются через errors.Is
var (
	// ErrUnauthorized ответ 401 или неудачное обновление токена
	ErrUnauthorized = errors.New("unauthorized")

	// ErrValidation любой другой ответ 4xx; сообщение сервера показывается как есть
	ErrValidation = errors.New("request rejected")

	// ErrTransient сетевая ошибка, таймаут или 5xx
	ErrTransient = errors.New("temporary failure")
)

// Error ошибка HTTP ответа сервера
type Error struct {
	Message    string
	StatusCode int
}

func (e *Error) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// Is сопоставляет статус ответа с классом ошибки
func (e *Error) Is(target error) bool {
	switch target {
	case ErrUnauthorized:
		return e.StatusCode == http.StatusUnauthorized
	case ErrValidation:
		return e.StatusCode >= 400 && e.StatusCode < 500 && e.StatusCode != http.StatusUnauthorized
	case ErrTransient:
		return e.StatusCode >= 500
	}
	return false
}

// newResponseError строит ошибку по статусу и телу ответа
func newResponseError(statusCode int, body []byte) *Error {
	msg := parseErrorMessage(body)
	if msg == "" || statusCode >= 500 {
		msg = http.StatusText(statusCode)
	}
	return &Error{StatusCode: statusCode, Message: msg}
}

// classifyTransportError оборачивает ошибку транспорта в класс.
// Ошибки авторизации (неудачный refresh внутри middleware) и отмена контекста проходят без изменений
func classifyTransportError(err error) error {
	switch {
	case errors.Is(err, ErrUnauthorized):
		return err
	case errors.Is(err, context.Canceled):
		return err
	default:
		return fmt.Errorf("%w: %w", ErrTransient, err)
	}
}

// parseErrorMessage извлекает текст ошибки из тела ответа DRF:
// {"detail": "..."}, ["..."] или {"field": ["..."]}
func parseErrorMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}

	var detail pkgapi.ErrorResponse
	if err := json.Unmarshal(body, &detail); err == nil && detail.Detail != "" {
		return detail.Detail
	}

	var list []string
	if err := json.Unmarshal(body, &list); err == nil && len(list) > 0 {
		return strings.Join(list, " ")
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err == nil && len(fields) > 0 {
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			if text := rawText(fields[k]); text != "" {
				parts = append(parts, fmt.Sprintf("%s: %s", k, text))
			}
		}
		return strings.Join(parts, "; ")
	}

	return ""
}

func rawText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, " ")
	}
	return ""
}

// UserMessage возвращает короткое сообщение для пользователя, без сырых деталей транспорта
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var respErr *Error
	switch {
	case errors.Is(err, ErrUnauthorized):
		return "Session expired, please login again."
	case errors.As(err, &respErr) && errors.Is(respErr, ErrValidation):
		return respErr.Message
	case errors.Is(err, ErrTransient):
		return "Server unavailable, please try again later."
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "Request cancelled."
	default:
		// локальные ошибки (валидация ввода и т.п.) уже короткие
		return err.Error()
	}
}
