package dao

import (
	"context"
	"time"

	"rocketbird/models"

	"gorm.io/gorm"
)

type ExchangeOrders struct {
	Repo[models.ExchangeOrder]
}

func NewExchangeOrders(db *gorm.DB) *ExchangeOrders {
	return &ExchangeOrders{
		Repo: NewRepo[models.ExchangeOrder](db),
	}
}

func (e *ExchangeOrders) FindBySn(ctx context.Context, orderSn string) (*models.ExchangeOrder, error) {
	var order models.ExchangeOrder
	err := e.Db.WithContext(ctx).Where("order_sn = ?", orderSn).First(&order).Error
	return &order, err
}

// SumActiveQuantity 统计限兑口径下的已兑数量：已核销的，
// 以及未过期的待使用订单；已取消与已过期不计入
func (e *ExchangeOrders) SumActiveQuantity(ctx context.Context, memberID, productID int64, now time.Time) (int64, error) {
	var res struct {
		Total int64
	}
	err := e.Db.WithContext(ctx).Model(&models.ExchangeOrder{}).
		Select("COALESCE(SUM(quantity), 0) AS total").
		Where("member_id = ? AND product_id = ?", memberID, productID).
		Where("status = ? OR (status = ? AND (expire_at IS NULL OR expire_at > ?))",
			models.OrderStatusUsed, models.OrderStatusPending, now).
		Scan(&res).Error
	return res.Total, err
}

// MarkExpired 惰性过期：仍处于 pending 才会命中
func (e *ExchangeOrders) MarkExpired(ctx context.Context, orderSn string) (int64, error) {
	result := e.Db.WithContext(ctx).Model(&models.ExchangeOrder{}).
		Where("order_sn = ? AND status = ?", orderSn, models.OrderStatusPending).
		Update("status", models.OrderStatusExpired)
	return result.RowsAffected, result.Error
}

// MarkUsed 核销。pending 状态条件更新，重复核销影响行数为 0
func (e *ExchangeOrders) MarkUsed(ctx context.Context, orderSn string, usedAt time.Time) (int64, error) {
	result := e.Db.WithContext(ctx).Model(&models.ExchangeOrder{}).
		Where("order_sn = ? AND status = ?", orderSn, models.OrderStatusPending).
		Updates(map[string]interface{}{
			"status":  models.OrderStatusUsed,
			"used_at": usedAt,
		})
	return result.RowsAffected, result.Error
}

// MarkCancelled 用户取消，同样仅 pending 可取消
func (e *ExchangeOrders) MarkCancelled(ctx context.Context, orderSn string) (int64, error) {
	result := e.Db.WithContext(ctx).Model(&models.ExchangeOrder{}).
		Where("order_sn = ? AND status = ?", orderSn, models.OrderStatusPending).
		Update("status", models.OrderStatusCancelled)
	return result.RowsAffected, result.Error
}

// ListByMember 会员兑换单列表，按 ID 倒序游标分页
func (e *ExchangeOrders) ListByMember(ctx context.Context, memberID int64, cursor int64, limit int) ([]models.ExchangeOrder, error) {
	var orders []models.ExchangeOrder
	query := e.Db.WithContext(ctx).Where("member_id = ?", memberID)
	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}
	err := query.Order("id DESC").Limit(limit).Find(&orders).Error
	return orders, err
}

// ListAll 后台分页，status 为空表示不过滤
func (e *ExchangeOrders) ListAll(ctx context.Context, status string, page, pageSize int) ([]models.ExchangeOrder, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	query := e.Db.WithContext(ctx).Model(&models.ExchangeOrder{})
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var orders []models.ExchangeOrder
	err := query.Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&orders).Error
	return orders, total, err
}
