package dao

import (
	"context"

	"rocketbird/models"

	"gorm.io/gorm"
)

type Levels struct {
	Repo[models.Level]
}

func NewLevels(db *gorm.DB) *Levels {
	return &Levels{
		Repo: NewRepo[models.Level](db),
	}
}

// ListActive 启用中的等级，按成长值下限升序
func (l *Levels) ListActive(ctx context.Context) ([]*models.Level, error) {
	var levels []*models.Level
	err := l.Db.WithContext(ctx).
		Where("status = ?", 1).
		Order("min_growth ASC").
		Find(&levels).Error
	return levels, err
}

func (l *Levels) ListAll(ctx context.Context) ([]*models.Level, error) {
	var levels []*models.Level
	err := l.Db.WithContext(ctx).Order("sort_order ASC").Find(&levels).Error
	return levels, err
}
