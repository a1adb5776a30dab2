package serviceImp

import (
	"context"
	"errors"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"cropcare/entities"
	"cropcare/pkg/apperr"
	"cropcare/pkg/auth/service"
	repo "cropcare/pkg/user/repository"
)

var (
	ErrPasswordMismatch   = apperr.New(apperr.ErrCodeInvalidRequest, "Passwords do not match")
	ErrUserExists         = apperr.New(apperr.ErrCodeConflict, "Username or Email already exists")
	ErrInvalidCredentials = apperr.New(apperr.ErrCodeUnauthorized, "Invalid credentials")
	ErrInvalidAdmin       = apperr.New(apperr.ErrCodeUnauthorized, "Invalid admin")
)

type authSvc struct {
	users  repo.UserRepository
	admins repo.AdminRepository
	cost   int
	now    func() time.Time
}

func NewAuthService(users repo.UserRepository, admins repo.AdminRepository) service.AuthService {
	return &authSvc{users: users, admins: admins, cost: bcrypt.DefaultCost, now: time.Now}
}

func (s *authSvc) hash(password string) (string, error) {
	h, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return "", apperr.Wrap(apperr.ErrCodeInternal, "failed to hash password", err)
	}
	return string(h), nil
}

func (s *authSvc) Register(ctx context.Context, username, email, password, confirm string) (*entities.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)
	if password != confirm {
		return nil, ErrPasswordMismatch
	}
	taken, err := s.users.Taken(ctx, username, email)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInternal, "failed to check user", err)
	}
	if taken {
		return nil, ErrUserExists
	}
	h, err := s.hash(password)
	if err != nil {
		return nil, err
	}
	u := &entities.User{Username: username, Email: email, PasswordHash: h}
	if err := s.users.Create(ctx, u); err != nil {
		// lost a race with a concurrent registration
		if errors.Is(err, gorm.ErrDuplicatedKey) || strings.Contains(strings.ToLower(err.Error()), "unique") {
			return nil, ErrUserExists
		}
		return nil, apperr.Wrap(apperr.ErrCodeInternal, "failed to create user", err)
	}
	log.WithField("user", u.Username).Info("[auth] registered")
	return u, nil
}

func (s *authSvc) Login(ctx context.Context, username, password string) (*entities.User, error) {
	u, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInternal, "failed to load user", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	now := s.now()
	if err := s.users.TouchLastLogin(ctx, u.UserID, now); err != nil {
		log.WithError(err).WithField("user", u.Username).Warn("[auth] failed to record last login")
	} else {
		u.LastLogin = &now
	}
	return u, nil
}

func (s *authSvc) AdminLogin(ctx context.Context, username, password string) (*entities.Admin, error) {
	a, err := s.admins.FindByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidAdmin
	}
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInternal, "failed to load admin", err)
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidAdmin
	}
	return a, nil
}

func (s *authSvc) EnsureAdmin(ctx context.Context, username, password string, reset bool) (bool, error) {
	if username == "" || password == "" {
		return false, apperr.New(apperr.ErrCodeInvalidRequest, "admin username and password are required")
	}
	_, err := s.admins.FindByUsername(ctx, username)
	switch {
	case err == nil:
		if !reset {
			return false, nil
		}
		h, err := s.hash(password)
		if err != nil {
			return false, err
		}
		if err := s.admins.SetPassword(ctx, username, h); err != nil {
			return false, apperr.Wrap(apperr.ErrCodeInternal, "failed to reset admin password", err)
		}
		log.WithField("admin", username).Info("[auth] admin password reset")
		return false, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		h, err := s.hash(password)
		if err != nil {
			return false, err
		}
		if err := s.admins.Create(ctx, &entities.Admin{Username: username, PasswordHash: h}); err != nil {
			return false, apperr.Wrap(apperr.ErrCodeInternal, "failed to create admin", err)
		}
		log.WithField("admin", username).Info("[auth] admin created")
		return true, nil
	default:
		return false, apperr.Wrap(apperr.ErrCodeInternal, "failed to load admin", err)
	}
}

func (s *authSvc) UserCount(ctx context.Context) (int64, error) { return s.users.Count(ctx) }

func (s *authSvc) Users(ctx context.Context) ([]entities.User, error) {
	out, err := s.users.List(ctx)
	if err != nil {
		return nil, apperr.Wrap(apperr.ErrCodeInternal, "failed to list users", err)
	}
	return out, nil
}
