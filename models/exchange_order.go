package models

import (
	"time"

	"gorm.io/datatypes"
)

// 兑换单状态。pending 为唯一非终态：
// pending -> used（核销）/ cancelled（用户取消）/ expired（读取时惰性过期）
const (
	OrderStatusPending   = "pending"
	OrderStatusUsed      = "used"
	OrderStatusExpired   = "expired"
	OrderStatusCancelled = "cancelled"
)

// ExchangeOrder 积分兑换单
type ExchangeOrder struct {
	ID           int64          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	OrderSn      string         `gorm:"column:order_sn;size:32;not null;uniqueIndex:idx_order_sn" json:"order_sn"`
	MemberID     int64          `gorm:"column:member_id;not null;index:idx_exchange_orders_member_id" json:"member_id"`
	ProductID    int64          `gorm:"column:product_id;not null;index:idx_product_id" json:"product_id"`
	ProductName  string         `gorm:"column:product_name;size:128;not null" json:"product_name"` // 冗余，防止商品改名/删除
	CoverImage   string         `gorm:"column:cover_image;size:512;default:''" json:"cover_image"`
	ProductType  string         `gorm:"column:product_type;size:16;not null" json:"product_type"`
	Quantity     int64          `gorm:"column:quantity;default:1;not null" json:"quantity"`
	PointsCost   int64          `gorm:"column:points_cost;not null" json:"points_cost"` // 总积分 = 单价 * 数量
	Status       string         `gorm:"column:status;size:16;not null;default:'pending';index:idx_exchange_orders_status" json:"status"`
	CouponCode   string         `gorm:"column:coupon_code;size:32;default:''" json:"coupon_code"` // 仅券类商品生成
	DeliveryInfo datatypes.JSON `gorm:"column:delivery_info" json:"delivery_info"`                // 实物收货信息
	ExpireAt     *time.Time     `gorm:"column:expire_at" json:"expire_at"`
	UsedAt       *time.Time     `gorm:"column:used_at" json:"used_at"`
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ExchangeOrder) TableName() string {
	return "exchange_orders"
}
