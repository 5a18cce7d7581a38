package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/deppfellow/schoolsite/internal/model"
	"github.com/deppfellow/schoolsite/internal/store"
)

type AdminRepository struct {
	db store.Gateway
}

// Create inserts a; a duplicate username or email yields store.ErrConflict.
func (r *AdminRepository) Create(ctx context.Context, a *model.Admin) error {
	if err := r.db.Insert(ctx, model.TableAdmins, a.Values()); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}
	return nil
}

func (r *AdminRepository) GetByID(ctx context.Context, id string) (*model.Admin, error) {
	return queryOne(ctx, r.db, model.TableAdmins, model.AdminFromRow, store.Eq("id", id))
}

func (r *AdminRepository) GetByUsername(ctx context.Context, username string) (*model.Admin, error) {
	return queryOne(ctx, r.db, model.TableAdmins, model.AdminFromRow, store.Eq("username", username))
}

func (r *AdminRepository) TouchLastLogin(ctx context.Context, id string, at time.Time) error {
	if err := r.db.Update(ctx, model.TableAdmins, id, store.Values{"last_login": at}); err != nil {
		return fmt.Errorf("failed to update last login: %w", err)
	}
	return nil
}

func (r *AdminRepository) SetActive(ctx context.Context, id string, active bool) error {
	if err := r.db.Update(ctx, model.TableAdmins, id, store.Values{"is_active": active}); err != nil {
		return fmt.Errorf("failed to update admin: %w", err)
	}
	return nil
}
