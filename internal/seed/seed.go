package seed

import (
	"context"

	"github.com/rs/zerolog"
	appServices "github.com/yigit/collegefinance/internal/app/services"
	"github.com/yigit/collegefinance/internal/config"
)

// CreateDefaultData creates the admin account on first start. Existing
// credentials are never overwritten.
func CreateDefaultData(ctx context.Context, authService appServices.AuthService, cfg *config.Config, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking default admin account...")

	created, err := authService.EnsureDefaultAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password)
	if err != nil {
		lgr.Error().Err(err).Msg("Error creating default admin account")
		return err
	}

	if created {
		lgr.Info().Str("username", cfg.Admin.Username).Msg("Default admin account created")
	} else {
		lgr.Info().Msg("Admin account already exists, skipping creation")
	}
	return nil
}
