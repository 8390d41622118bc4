package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sangkips/kasirpos/internal/domain/entity"
	domainRepo "github.com/sangkips/kasirpos/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates the sqlite-backed session cache
func NewSessionRepository(db *gorm.DB) domainRepo.SessionRepository {
	return &sessionRepository{db: db}
}

// Save upserts on the token so re-issuing the same token refreshes the
// cached profile and expiry instead of failing the unique index.
func (r *sessionRepository) Save(ctx context.Context, record *entity.SessionRecord) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "token"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_json", "expires_at"}),
	}).Create(record).Error
}

func (r *sessionRepository) GetByToken(ctx context.Context, token string) (*entity.SessionRecord, error) {
	var record entity.SessionRecord
	err := r.db.WithContext(ctx).First(&record, "token = ?", token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &record, err
}

func (r *sessionRepository) DeleteByToken(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).
		Where("token = ?", token).
		Delete(&entity.SessionRecord{}).Error
}

func (r *sessionRepository) DeleteExpired(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Where("expires_at < ?", time.Now()).
		Delete(&entity.SessionRecord{}).Error
}
