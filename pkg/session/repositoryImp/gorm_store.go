package repositoryImp

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cropcare/entities"
	"cropcare/pkg/session/repository"
)

// GormStore keeps sessions in the sessions table. Expired rows are ignored on
// read and removed by PurgeExpired.
type GormStore struct {
	db  *gorm.DB
	ttl time.Duration
	now func() time.Time
}

func NewGormStore(db *gorm.DB, ttl time.Duration) *GormStore {
	return &GormStore{db: db, ttl: ttl, now: time.Now}
}

var _ repository.SessionStore = (*GormStore)(nil)

func (s *GormStore) Create(ctx context.Context, d repository.Data) (string, error) {
	now := s.now()
	row := entities.Session{
		SessionID: uuid.NewString(),
		Username:  d.Username,
		Admin:     d.Admin,
		ExpiresAt: now.Add(s.ttl),
		CreatedAt: now,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return "", err
	}
	return row.SessionID, nil
}

func (s *GormStore) Get(ctx context.Context, id string) (*repository.Data, error) {
	if id == "" {
		return nil, nil
	}
	var row entities.Session
	err := s.db.WithContext(ctx).
		Where("session_id = ? AND expires_at > ?", id, s.now()).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &repository.Data{Username: row.Username, Admin: row.Admin}, nil
}

func (s *GormStore) Delete(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Where("session_id = ?", id).Delete(&entities.Session{}).Error
}

func (s *GormStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// PurgeExpired deletes sessions past their expiry and returns how many went.
func (s *GormStore) PurgeExpired(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).Where("expires_at <= ?", s.now()).Delete(&entities.Session{})
	return res.RowsAffected, res.Error
}
