package service

import (
	"context"

	"cropcare/entities"
)

type AuthService interface {
	Register(ctx context.Context, username, email, password, confirm string) (*entities.User, error)
	// Login checks credentials and records the login time.
	Login(ctx context.Context, username, password string) (*entities.User, error)
	AdminLogin(ctx context.Context, username, password string) (*entities.Admin, error)
	// EnsureAdmin creates the admin account if missing. With reset it also
	// overwrites the password of an existing one.
	EnsureAdmin(ctx context.Context, username, password string, reset bool) (created bool, err error)
	UserCount(ctx context.Context) (int64, error)
	Users(ctx context.Context) ([]entities.User, error)
}
