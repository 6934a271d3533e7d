package seed

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rajank18/prograde/internal/app/models"
	"github.com/rajank18/prograde/internal/app/repositories"
	"github.com/rajank18/prograde/internal/config"
	"github.com/rajank18/prograde/internal/pkg/auth"
	"github.com/rs/zerolog"
)

// CreateDefaultData creates the default admin account if it doesn't exist.
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, cfg *config.Config, lgr zerolog.Logger) error {
	userRepo := repositories.NewUserRepository(dbPool)

	exists, err := userRepo.EmailExists(ctx, cfg.Seed.AdminEmail)
	if err != nil {
		lgr.Error().Err(err).Msg("Error checking if admin user exists")
		return err
	}
	if exists {
		lgr.Info().Msg("Admin user already exists, skipping creation")
		return nil
	}

	lgr.Info().Msg("Creating default admin user...")

	hashedPassword, err := auth.HashPassword(cfg.Seed.AdminPassword)
	if err != nil {
		lgr.Error().Err(err).Msg("Error hashing admin password")
		return err
	}

	admin := &models.User{
		Name:     "System Administrator",
		Email:    cfg.Seed.AdminEmail,
		Password: hashedPassword,
		Role:     models.RoleAdmin,
	}

	if err := userRepo.Create(ctx, admin); err != nil {
		lgr.Error().Err(err).Msg("Error creating admin user")
		return err
	}

	lgr.Info().Int64("adminID", admin.ID).Msg("Default admin user created successfully")
	return nil
}
