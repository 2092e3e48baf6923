package store

import (
	"context"
	"fmt"
	"time"

	"github.com/wichai/compass/ent"
	entadmin "github.com/wichai/compass/ent/adminuser"
)

// AdminAccount is an administrator credential record. PasswordHash is a
// bcrypt hash; plaintext passwords never touch the store.
type AdminAccount struct {
	ID           int
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// AdminRepo manages administrator accounts.
type AdminRepo interface {
	// Create stores a new admin account.
	Create(ctx context.Context, username, passwordHash string) (AdminAccount, error)

	// ByUsername returns the account, or nil if none exists.
	ByUsername(ctx context.Context, username string) (*AdminAccount, error)
}

type adminRepo struct {
	client *ent.Client
}

func (r *adminRepo) Create(ctx context.Context, username, passwordHash string) (AdminAccount, error) {
	row, err := r.client.AdminUser.Create().
		SetUsername(username).
		SetPasswordHash(passwordHash).
		SetCreatedAt(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		return AdminAccount{}, fmt.Errorf("save admin user: %w", err)
	}
	return adminToDomain(row), nil
}

func (r *adminRepo) ByUsername(ctx context.Context, username string) (*AdminAccount, error) {
	row, err := r.client.AdminUser.Query().
		Where(entadmin.Username(username)).
		Only(ctx)
	if ent.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query admin user: %w", err)
	}
	acc := adminToDomain(row)
	return &acc, nil
}

func adminToDomain(row *ent.AdminUser) AdminAccount {
	return AdminAccount{
		ID:           row.ID,
		Username:     row.Username,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt,
	}
}
