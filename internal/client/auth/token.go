package auth

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo сведения из payload access token
type TokenInfo struct {
	ExpiresAt time.Time
	UserID    int64
}

// Expired сообщает, истек ли токен на момент now
func (i *TokenInfo) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}

// ParseAccessToken читает claims access token без проверки подписи.
// Используется только для отображения: подпись проверяет сервер
func ParseAccessToken(token string) (*TokenInfo, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("failed to parse access token: %w", err)
	}

	info := &TokenInfo{}

	exp, err := claims.GetExpirationTime()
	if err != nil {
		return nil, fmt.Errorf("invalid exp claim: %w", err)
	}
	if exp != nil {
		info.ExpiresAt = exp.Time
	}

	// SimpleJWT кладет ID пользователя в user_id (число или строка)
	switch v := claims["user_id"].(type) {
	case float64:
		info.UserID = int64(v)
	case string:
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid user_id claim: %w", err)
		}
		info.UserID = id
	}

	return info, nil
}
