package seed

import (
	"context"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"booknest/models"
	"booknest/store"
)

// AdminUser creates the built-in administrator account on first boot. An
// existing admin row, active or not, is left alone.
func AdminUser(ctx context.Context, users store.UserStore, log *zap.Logger) error {
	_, err := users.FindByUsername(ctx, "admin")
	if err == nil {
		return nil
	}
	if err != store.ErrNotFound {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username: "admin",
		Email:    "admin@booknest.local",
		Password: string(hash),
		FullName: "Administrator",
		Role:     models.RoleAdmin,
		Active:   true,
	}
	if err := users.Create(ctx, admin); err != nil {
		return err
	}

	log.Info("admin user seeded", zap.Uint("user_id", admin.ID))
	return nil
}
