package cli

import (
	"context"
	"time"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	if !c.authService.IsAuthenticated() {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Println("Run 'biblioshare login' to authenticate.")
		return nil
	}

	c.io.Println("Status: Authenticated")

	// Профиль из кэша; без сети команда тоже работает
	if profile, err := c.authService.CurrentProfile(ctx); err == nil {
		c.io.Printf("User: %s (%s)\n", profile.DisplayName(), profile.Email)
	} else {
		c.logger.Debug("profile unavailable", "error", err)
	}

	info, err := c.authService.TokenInfo()
	if err != nil {
		c.logger.Debug("failed to parse access token", "error", err)
		return nil
	}

	if info.ExpiresAt.IsZero() {
		return nil
	}

	c.io.Printf("Access token expires: %s\n", info.ExpiresAt.Format(time.RFC3339))
	if remaining := time.Until(info.ExpiresAt); remaining > 0 {
		c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	} else {
		c.io.Println("Access token has expired; it will be refreshed on the next request.")
	}
	return nil
}
