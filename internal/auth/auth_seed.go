package auth

import (
	"context"

	"github.com/FurowKick/phone-directory/internal/config"
	"github.com/FurowKick/phone-directory/internal/domain"
	"github.com/FurowKick/phone-directory/internal/shared/audit"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// EnsureAdmin seeds the administrator account on a fresh database. The
// password must come from configuration; with an empty users table and
// no configured password the service still starts, but nobody can
// administer it until ADMIN_PASSWORD is supplied.
func EnsureAdmin(ctx context.Context, users Repository, cfg config.Admin, auditLogger audit.Logger) error {
	count, err := users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	if cfg.Password == "" {
		zap.L().Warn("users table is empty and ADMIN_PASSWORD is not set; skipping admin seed")
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &User{
		ID:           uuid.New(),
		Username:     cfg.Username,
		PasswordHash: string(hashed),
		Role:         domain.RoleAdmin,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}

	auditLogger.Log(ctx, audit.Log{
		Action:  "ADMIN_SEEDED",
		Message: "Administrator account created on first run",
		Meta:    map[string]any{"user_id": admin.ID.String(), "username": admin.Username},
	})
	return nil
}
