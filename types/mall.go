package types

import "rocketbird/models"

// ExchangeReq 积分兑换请求
type ExchangeReq struct {
	ProductID    int64             `json:"product_id" binding:"required"`
	Quantity     int64             `json:"quantity" binding:"required,gt=0"`
	DeliveryInfo map[string]string `json:"delivery_info"` // 实物商品必填：姓名/电话/地址
}

// ExchangeOrderItem 兑换单
type ExchangeOrderItem struct {
	OrderSn     string `json:"order_sn"`
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	CoverImage  string `json:"cover_image"`
	ProductType string `json:"product_type"`
	Quantity    int64  `json:"quantity"`
	PointsCost  int64  `json:"points_cost"`
	Status      string `json:"status"`
	CouponCode  string `json:"coupon_code,omitempty"`
	ExpireAt    string `json:"expire_at,omitempty"`
	UsedAt      string `json:"used_at,omitempty"`
	CreatedAt   string `json:"created_at"`
}

// ListExchangeOrders 兑换单列表
type ListExchangeOrders struct {
	Orders     []ExchangeOrderItem `json:"orders"`
	NextCursor int64               `json:"next_cursor"`
	HasMore    bool                `json:"has_more"`
}

// ProductItem 商城商品（会员视角）
type ProductItem struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	CoverImage   string `json:"cover_image"`
	Description  string `json:"description"`
	ProductType  string `json:"product_type"`
	PointsCost   int64  `json:"points_cost"`
	Stock        int64  `json:"stock"`
	TotalStock   int64  `json:"total_stock"`
	SalesVolume  int64  `json:"sales_volume"`
	LimitPerUser int    `json:"limit_per_user"`
	ValidDays    int    `json:"valid_days"`
}

// ListProducts 商城商品列表
type ListProducts struct {
	Products   []ProductItem `json:"products"`
	NextCursor int64         `json:"next_cursor"`
	HasMore    bool          `json:"has_more"`
}

// SaveProductReq 后台新建/编辑商品
type SaveProductReq struct {
	ID           int64  `json:"id"`
	Name         string `json:"name" binding:"required"`
	CoverImage   string `json:"cover_image"`
	Description  string `json:"description"`
	ProductType  string `json:"product_type" binding:"required,oneof=physical virtual coupon"`
	PointsCost   int64  `json:"points_cost" binding:"required,gt=0"`
	Stock        int64  `json:"stock"`
	LimitPerUser int    `json:"limit_per_user"`
	ValidDays    int    `json:"valid_days"`
	SortOrder    int    `json:"sort_order"`
}

// AdminOrderList 后台兑换单分页
type AdminOrderList struct {
	Orders []models.ExchangeOrder `json:"orders"`
	Total  int64                  `json:"total"`
}
