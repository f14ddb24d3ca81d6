package cli

import (
	"context"
	"flag"
	"fmt"
	"io"

	"github.com/arkfx/BiblioShare/internal/models"
	pkgapi "github.com/arkfx/BiblioShare/pkg/api"
)

func (c *Cli) runProfile(ctx context.Context, args []string) error {
	fs := flag.NewFlagSet("profile", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	firstName := fs.String("first-name", "", "First name")
	lastName := fs.String("last-name", "", "Last name")
	city := fs.String("city", "", "City")
	state := fs.String("state", "", "State")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("invalid profile flags: %w", err)
	}

	var update pkgapi.ProfileUpdate
	changed := false
	fs.Visit(func(f *flag.Flag) {
		changed = true
		switch f.Name {
		case "first-name":
			update.FirstName = firstName
		case "last-name":
			update.LastName = lastName
		case "city":
			update.City = city
		case "state":
			update.State = state
		}
	})

	var (
		profile *models.Profile
		err     error
	)
	if changed {
		profile, err = c.authService.UpdateProfile(ctx, update)
	} else {
		profile, err = c.authService.Profile(ctx)
	}
	if err != nil {
		return err
	}

	c.io.Println("=== Profile ===")
	c.io.Println()
	c.io.Printf("Username: %s\n", profile.Username)
	c.io.Printf("Name:     %s\n", orDash(profile.DisplayName()))
	c.io.Printf("Email:    %s\n", profile.Email)
	c.io.Printf("Location: %s\n", orDash(profile.Location()))
	if profile.Verified {
		c.io.Println("✓ Institution link verified")
	}
	if changed {
		c.io.Println()
		c.io.Println("✓ Profile updated")
	}
	return nil
}
