package repository

import (
	"context"

	"github.com/MTrazona/aurum-platform-admin-sub000/internal/model"

	"gorm.io/gorm"
)

// AuditFilter narrows the audit trail listing.
type AuditFilter struct {
	Domain string
	Action string
	Page   int
	Limit  int
}

// scope applies the trail filters. List uses it for both the count and
// the page fetch so the two queries cannot drift apart.
func (f AuditFilter) scope(q *gorm.DB) *gorm.DB {
	if f.Domain != "" {
		q = q.Where("domain = ?", f.Domain)
	}
	if f.Action != "" {
		q = q.Where("action = ?", f.Action)
	}
	return q
}

type AuditRepository interface {
	Log(ctx context.Context, entry *model.AuditLog) error
	List(ctx context.Context, filter AuditFilter) ([]model.AuditLog, int64, error)
}

type auditRepository struct {
	db *gorm.DB
}

func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Log(ctx context.Context, entry *model.AuditLog) error {
	return GetDB(ctx, r.db).Create(entry).Error
}

func (r *auditRepository) List(ctx context.Context, filter AuditFilter) ([]model.AuditLog, int64, error) {
	var logs []model.AuditLog
	var total int64

	db := GetDB(ctx, r.db)
	if err := filter.scope(db.Model(&model.AuditLog{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	if err := filter.scope(db.Preload("User")).Order("created_at desc").Offset(offset).Limit(filter.Limit).Find(&logs).Error; err != nil {
		return nil, 0, err
	}

	return logs, total, nil
}
