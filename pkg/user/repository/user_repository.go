package repository

import (
	"context"
	"time"

	"cropcare/entities"
)

type UserRepository interface {
	Create(ctx context.Context, u *entities.User) error
	FindByUsername(ctx context.Context, username string) (*entities.User, error)
	// Taken reports whether the username or the email is already registered.
	Taken(ctx context.Context, username, email string) (bool, error)
	TouchLastLogin(ctx context.Context, userID uint, at time.Time) error
	// List returns users newest first.
	List(ctx context.Context) ([]entities.User, error)
	Count(ctx context.Context) (int64, error)
}

type AdminRepository interface {
	FindByUsername(ctx context.Context, username string) (*entities.Admin, error)
	Create(ctx context.Context, a *entities.Admin) error
	SetPassword(ctx context.Context, username, hash string) error
}
