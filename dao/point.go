package dao

import (
	"context"

	"rocketbird/models"

	"gorm.io/gorm"
)

type Point struct {
	Repo[models.MemberAccount]
}

func NewPoint(db *gorm.DB) *Point {
	return &Point{
		Repo: NewRepo[models.MemberAccount](db),
	}
}

// GetAccount 查询积分账户
func (p *Point) GetAccount(ctx context.Context, memberID int64) (*models.MemberAccount, error) {
	var account models.MemberAccount
	err := p.Db.WithContext(ctx).Where("member_id = ?", memberID).First(&account).Error
	return &account, err
}

// CreateAccount 初始化账户（针对新会员）
func (p *Point) CreateAccount(ctx context.Context, memberID int64, initialPoints int64) error {
	newAccount := &models.MemberAccount{
		MemberID:        memberID,
		AvailablePoints: initialPoints,
		TotalPoints:     initialPoints,
	}
	return p.Db.WithContext(ctx).Create(newAccount).Error
}

// CreditBalance 入账：可用积分与累计积分同步增加。
// gorm.Expr 保证并发下的原子加减；返回受影响行数，0 表示账户尚未开户
func (p *Point) CreditBalance(ctx context.Context, memberID int64, amount int64) (int64, error) {
	result := p.Db.WithContext(ctx).Model(&models.MemberAccount{}).
		Where("member_id = ?", memberID).
		Updates(map[string]interface{}{
			"available_points": gorm.Expr("available_points + ?", amount),
			"total_points":     gorm.Expr("total_points + ?", amount),
		})
	return result.RowsAffected, result.Error
}

// DebitBalance 扣减可用积分，不动累计积分。
// 带余额条件的 UPDATE，余额不足时影响行数为 0，并发下不会扣成负数
func (p *Point) DebitBalance(ctx context.Context, memberID int64, amount int64) (int64, error) {
	result := p.Db.WithContext(ctx).Model(&models.MemberAccount{}).
		Where("member_id = ? AND available_points >= ?", memberID, amount).
		Update("available_points", gorm.Expr("available_points - ?", amount))
	return result.RowsAffected, result.Error
}

// AddGrowth 增加成长值（只增不减）
func (p *Point) AddGrowth(ctx context.Context, memberID int64, value int64) (int64, error) {
	result := p.Db.WithContext(ctx).Model(&models.MemberAccount{}).
		Where("member_id = ?", memberID).
		Update("growth_value", gorm.Expr("growth_value + ?", value))
	return result.RowsAffected, result.Error
}

// UpdateLevel 回写等级冗余字段，仅 LevelService 调用
func (p *Point) UpdateLevel(ctx context.Context, memberID int64, levelID int64, levelName string) error {
	return p.Db.WithContext(ctx).Model(&models.MemberAccount{}).
		Where("member_id = ?", memberID).
		Updates(map[string]interface{}{
			"level_id":   levelID,
			"level_name": levelName,
		}).Error
}

func (p *Point) CreatePointsLog(ctx context.Context, log *models.PointsLog) error {
	return p.Db.WithContext(ctx).Create(log).Error
}

// ListLogs 流水分页筛选查询，按 ID 倒序游标分页
func (p *Point) ListLogs(ctx context.Context, memberID int64, action string, cursor int64, limit int) ([]models.PointsLog, error) {
	var logs []models.PointsLog
	query := p.Db.WithContext(ctx).Where("member_id = ?", memberID)

	switch action {
	case "income":
		query = query.Where("amount > ?", 0)
	case "expense":
		query = query.Where("amount < ?", 0)
	}

	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}

	err := query.Order("id DESC").Limit(limit).Find(&logs).Error
	return logs, err
}
