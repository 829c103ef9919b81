package dao

import (
	"context"

	"rocketbird/models"

	"gorm.io/gorm"
)

type Products struct {
	Repo[models.Product]
}

func NewProducts(db *gorm.DB) *Products {
	return &Products{
		Repo: NewRepo[models.Product](db),
	}
}

func (p *Products) FindOnShelf(ctx context.Context, productID int64) (*models.Product, error) {
	var product models.Product
	err := p.Db.WithContext(ctx).
		Where("id = ? AND status = ?", productID, models.ProductStatusOn).
		First(&product).Error
	return &product, err
}

// ListOnShelf 商城商品列表，ID 倒序游标分页。
// 展示顺序由前端按 sort_order 二次排序
func (p *Products) ListOnShelf(ctx context.Context, cursor int64, limit int) ([]*models.Product, error) {
	var products []*models.Product
	query := p.Db.WithContext(ctx).Where("status = ?", models.ProductStatusOn)
	if cursor > 0 {
		query = query.Where("id < ?", cursor)
	}
	err := query.Order("id DESC").Limit(limit).Find(&products).Error
	return products, err
}

// ListAll 后台分页
func (p *Products) ListAll(ctx context.Context, page, pageSize int) ([]*models.Product, int64, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 || pageSize > 100 {
		pageSize = 20
	}

	query := p.Db.WithContext(ctx).Model(&models.Product{})
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []*models.Product
	err := query.Order("id DESC").
		Offset((page - 1) * pageSize).
		Limit(pageSize).
		Find(&products).Error
	return products, total, err
}

// DecrementStock 条件扣库存：stock >= quantity 才会命中，
// 影响行数为 0 表示库存不足，并发兑换不会超卖
func (p *Products) DecrementStock(ctx context.Context, productID int64, quantity int64) (int64, error) {
	result := p.Db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ? AND stock >= ?", productID, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))
	return result.RowsAffected, result.Error
}

// RestoreStock 取消兑换时回补库存
func (p *Products) RestoreStock(ctx context.Context, productID int64, quantity int64) error {
	return p.Db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", productID).
		Update("stock", gorm.Expr("stock + ?", quantity)).Error
}

// AddStock 后台补货，total_stock 同步抬高
func (p *Products) AddStock(ctx context.Context, productID int64, quantity int64) error {
	return p.Db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", productID).
		Updates(map[string]interface{}{
			"stock":       gorm.Expr("stock + ?", quantity),
			"total_stock": gorm.Expr("total_stock + ?", quantity),
		}).Error
}

// AddSalesVolume 销量计数写时累加，负数用于取消回退
func (p *Products) AddSalesVolume(ctx context.Context, productID int64, delta int64) error {
	return p.Db.WithContext(ctx).Model(&models.Product{}).
		Where("id = ?", productID).
		Update("sales_volume", gorm.Expr("sales_volume + ?", delta)).Error
}
