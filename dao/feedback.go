package dao

import (
	"context"

	"rocketbird/models"

	"gorm.io/gorm"
)

type Feedbacks struct {
	Repo[models.Feedback]
}

func NewFeedbacks(db *gorm.DB) *Feedbacks {
	return &Feedbacks{
		Repo: NewRepo[models.Feedback](db),
	}
}

func (f *Feedbacks) ListByMember(ctx context.Context, memberID int64, cursor int64, limit int) ([]models.Feedback, error) {
	var items []models.Feedback
	query := f.Db.WithContext(ctx).Where("member_id = ?", memberID)
	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}
	err := query.Order("id DESC").Limit(limit).Find(&items).Error
	return items, err
}

// ListAll 后台分页，status < 0 表示不过滤
func (f *Feedbacks) ListAll(ctx context.Context, status int, page, pageSize int) ([]models.Feedback, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	query := f.Db.WithContext(ctx).Model(&models.Feedback{})
	if status >= 0 {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []models.Feedback
	err := query.Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&items).Error
	return items, total, err
}
