package models

import "strings"

// Credentials представляет пару токенов текущей сессии
type Credentials struct {
	AccessToken  string `json:"access"`  // JWT access token
	RefreshToken string `json:"refresh"` // refresh token (не ротируется сервером)
}

// HasAccess сообщает, есть ли access token
func (c *Credentials) HasAccess() bool {
	return c != nil && c.AccessToken != ""
}

// CanRefresh сообщает, возможно ли обновление access token
func (c *Credentials) CanRefresh() bool {
	return c != nil && c.RefreshToken != ""
}

// Profile представляет профиль текущего пользователя
type Profile struct {
	PhotoURL  *string `json:"foto_perfil"`
	City      *string `json:"cidade"`
	State     *string `json:"estado"`
	Username  string  `json:"username"`
	Email     string  `json:"email"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	ID        int64   `json:"id"`
	Verified  bool    `json:"vinculo_verificado"`
}

// DisplayName возвращает полное имя или username, если имя не заполнено
func (p *Profile) DisplayName() string {
	if p == nil {
		return ""
	}
	full := strings.TrimSpace(p.FirstName + " " + p.LastName)
	if full != "" {
		return full
	}
	return p.Username
}

// Location возвращает "город/штат" или пустую строку
func (p *Profile) Location() string {
	if p == nil {
		return ""
	}
	return joinLocation(p.City, p.State)
}

func joinLocation(city, state *string) string {
	parts := make([]string, 0, 2)
	if city != nil && *city != "" {
		parts = append(parts, *city)
	}
	if state != nil && *state != "" {
		parts = append(parts, *state)
	}
	return strings.Join(parts, "/")
}
