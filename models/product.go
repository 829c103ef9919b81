package models

import (
	"time"

	"gorm.io/gorm"
)

// 商品类型
const (
	ProductTypePhysical = "physical" // 实物，兑换时必须填写收货信息
	ProductTypeVirtual  = "virtual"  // 虚拟
	ProductTypeCoupon   = "coupon"   // 券类，兑换时生成券码
)

const (
	ProductStatusOff = 0 // 下架
	ProductStatusOn  = 1 // 上架
)

// Product 积分商城商品
type Product struct {
	ID           int64          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name         string         `gorm:"column:name;size:128;not null" json:"name"`
	CoverImage   string         `gorm:"column:cover_image;size:512;default:''" json:"cover_image"`
	Description  string         `gorm:"column:description;type:text" json:"description"`
	ProductType  string         `gorm:"column:product_type;size:16;not null;default:'virtual'" json:"product_type"`
	PointsCost   int64          `gorm:"column:points_cost;not null" json:"points_cost"` // 单件所需积分
	Stock        int64          `gorm:"column:stock;default:0;not null" json:"stock"`   // 剩余库存，不允许为负
	TotalStock   int64          `gorm:"column:total_stock;default:0;not null" json:"total_stock"`
	SalesVolume  int64          `gorm:"column:sales_volume;default:0;not null" json:"sales_volume"`   // 已兑换件数，写时累加
	LimitPerUser int            `gorm:"column:limit_per_user;default:0;not null" json:"limit_per_user"` // 每人限兑，0 不限
	ValidDays    int            `gorm:"column:valid_days;default:0;not null" json:"valid_days"`         // 兑换后有效天数，0 永久
	Status       int8           `gorm:"column:status;not null;index:idx_products_status" json:"status"` // 0-下架, 1-上架
	SortOrder    int            `gorm:"column:sort_order;default:0" json:"sort_order"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index:idx_products_deleted_at;column:deleted_at" json:"-"`
}

func (Product) TableName() string {
	return "products"
}
