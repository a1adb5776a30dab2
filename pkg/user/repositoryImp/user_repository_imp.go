package repositoryImp

import (
	"context"
	"time"

	"gorm.io/gorm"

	"cropcare/entities"
	"cropcare/pkg/user/repository"
)

type userRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.UserRepository { return &userRepo{db} }

func (r *userRepo) Create(ctx context.Context, u *entities.User) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*entities.User, error) {
	var u entities.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepo) Taken(ctx context.Context, username, email string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entities.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&n).Error
	return n > 0, err
}

func (r *userRepo) TouchLastLogin(ctx context.Context, userID uint, at time.Time) error {
	return r.db.WithContext(ctx).Model(&entities.User{}).
		Where("user_id = ?", userID).
		Update("last_login", at).Error
}

func (r *userRepo) List(ctx context.Context) ([]entities.User, error) {
	var out []entities.User
	err := r.db.WithContext(ctx).Order("created_at DESC").Order("user_id DESC").Find(&out).Error
	return out, err
}

func (r *userRepo) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&entities.User{}).Count(&n).Error
	return n, err
}

type adminRepo struct{ db *gorm.DB }

func NewAdmin(db *gorm.DB) repository.AdminRepository { return &adminRepo{db} }

func (r *adminRepo) FindByUsername(ctx context.Context, username string) (*entities.Admin, error) {
	var a entities.Admin
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *adminRepo) Create(ctx context.Context, a *entities.Admin) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *adminRepo) SetPassword(ctx context.Context, username, hash string) error {
	res := r.db.WithContext(ctx).Model(&entities.Admin{}).
		Where("username = ?", username).
		Update("password_hash", hash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
