package dao

import (
	"context"
	"time"

	"rocketbird/models"

	"gorm.io/gorm"
)

type Checkin struct {
	Repo[models.CheckinRecord]
}

func NewCheckin(db *gorm.DB) *Checkin {
	return &Checkin{
		Repo: NewRepo[models.CheckinRecord](db),
	}
}

func (c *Checkin) GetTheme(ctx context.Context, themeID int64) (*models.CheckinTheme, error) {
	var theme models.CheckinTheme
	err := c.Db.WithContext(ctx).Where("id = ?", themeID).First(&theme).Error
	return &theme, err
}

func (c *Checkin) ListActiveThemes(ctx context.Context, now time.Time) ([]*models.CheckinTheme, error) {
	var themes []*models.CheckinTheme
	err := c.Db.WithContext(ctx).
		Where("status = ?", 1).
		Where("start_at IS NULL OR start_at <= ?", now).
		Where("end_at IS NULL OR end_at >= ?", now).
		Order("id DESC").
		Find(&themes).Error
	return themes, err
}

// ListThemes 后台查看全部主题，含已下线的
func (c *Checkin) ListThemes(ctx context.Context) ([]*models.CheckinTheme, error) {
	var themes []*models.CheckinTheme
	err := c.Db.WithContext(ctx).Order("id DESC").Find(&themes).Error
	return themes, err
}

// CountSince 统计某会员在某主题下，指定时间之后的打卡次数（用于每日上限）
func (c *Checkin) CountSince(ctx context.Context, memberID, themeID int64, since time.Time) (int64, error) {
	var count int64
	err := c.Db.WithContext(ctx).Model(&models.CheckinRecord{}).
		Where("member_id = ? AND theme_id = ? AND created_at >= ?", memberID, themeID, since).
		Count(&count).Error
	return count, err
}

// MarkShared 置分享标记。条件更新保证幂等：已置位时影响行数为 0
func (c *Checkin) MarkShared(ctx context.Context, recordID int64) (int64, error) {
	result := c.Db.WithContext(ctx).Model(&models.CheckinRecord{}).
		Where("id = ? AND is_shared = ?", recordID, false).
		Update("is_shared", true)
	return result.RowsAffected, result.Error
}

// ListRecords 会员打卡记录，按 ID 倒序游标分页
func (c *Checkin) ListRecords(ctx context.Context, memberID int64, cursor int64, limit int) ([]models.CheckinRecord, error) {
	var records []models.CheckinRecord
	query := c.Db.WithContext(ctx).Where("member_id = ?", memberID)
	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}
	err := query.Order("id DESC").Limit(limit).Find(&records).Error
	return records, err
}

// ListByReviewStatus 后台审核列表
func (c *Checkin) ListByReviewStatus(ctx context.Context, status int8, page, pageSize int) ([]models.CheckinRecord, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	query := c.Db.WithContext(ctx).Model(&models.CheckinRecord{}).
		Where("review_status = ?", status)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var records []models.CheckinRecord
	err := query.Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&records).Error
	return records, total, err
}
