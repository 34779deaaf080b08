package seed

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appRepos "github.com/devang/kalasangam/internal/app/repositories"
	"github.com/devang/kalasangam/internal/config"
	"github.com/devang/kalasangam/internal/pkg/apperrors"
	"github.com/devang/kalasangam/internal/pkg/auth"
)

// CreateDefaultAdmin provisions the bootstrap administrator account from
// configuration. Without it a fresh deployment has no way into the admin
// panel. Re-running against an existing account is a no-op.
func CreateDefaultAdmin(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		lgr.Info().Msg("No default admin configured, skipping seed")
		return nil
	}

	userRepo := appRepos.NewUserRepository(dbPool)
	adminRepo := appRepos.NewAdminRepository(dbPool)

	userID := ""
	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	userID, err = userRepo.Create(ctx, cfg.Admin.Email, hash)
	if err != nil {
		if !errors.Is(err, apperrors.ErrResourceAlreadyExists) {
			lgr.Error().Err(err).Msg("Error creating default admin user")
			return err
		}
		existing, errGet := userRepo.GetByEmail(ctx, cfg.Admin.Email)
		if errGet != nil {
			lgr.Error().Err(errGet).Msg("Error looking up existing admin user")
			return errGet
		}
		userID = existing.ID
	}

	if err := adminRepo.Grant(ctx, userID); err != nil {
		lgr.Error().Err(err).Str("userID", userID).Msg("Error granting admin privilege to default admin")
		return err
	}

	lgr.Info().Str("email", cfg.Admin.Email).Msg("Default admin account ready")
	return nil
}
