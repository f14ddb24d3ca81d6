package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestParseAccessToken(t *testing.T) {
	exp := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		claims  jwt.MapClaims
		wantID  int64
		wantExp time.Time
		wantErr bool
	}{
		{
			name:    "numeric user id",
			claims:  jwt.MapClaims{"exp": exp.Unix(), "user_id": 42, "token_type": "access"},
			wantID:  42,
			wantExp: exp,
		},
		{
			name:    "string user id",
			claims:  jwt.MapClaims{"exp": exp.Unix(), "user_id": "17"},
			wantID:  17,
			wantExp: exp,
		},
		{
			name:   "no exp",
			claims: jwt.MapClaims{"user_id": 5},
			wantID: 5,
		},
		{
			name:    "bad user id",
			claims:  jwt.MapClaims{"user_id": "abc"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := ParseAccessToken(signTestToken(t, tt.claims))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, info.UserID)
			assert.True(t, tt.wantExp.Equal(info.ExpiresAt))
		})
	}
}

func TestParseAccessToken_Malformed(t *testing.T) {
	_, err := ParseAccessToken("not-a-jwt")
	assert.Error(t, err)
}

func TestTokenInfo_Expired(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	assert.True(t, (&TokenInfo{ExpiresAt: now.Add(-time.Minute)}).Expired(now))
	assert.False(t, (&TokenInfo{ExpiresAt: now.Add(time.Minute)}).Expired(now))
	assert.False(t, (&TokenInfo{}).Expired(now))
}
