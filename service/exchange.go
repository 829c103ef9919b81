package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"rocketbird/config"
	"rocketbird/dao"
	"rocketbird/models"
	"rocketbird/pkg/log"
	"rocketbird/pkg/snowflake"
	"rocketbird/pkg/utils"
	"rocketbird/types"
)

type IExchangeService interface {
	Exchange(ctx context.Context, memberID int64, req *types.ExchangeReq) (*types.ExchangeOrderItem, error)
	GetOrder(ctx context.Context, memberID int64, orderSn string) (*types.ExchangeOrderItem, error)
	ListOrders(ctx context.Context, memberID int64, cursor int64, limit int) (*types.ListExchangeOrders, error)
	Cancel(ctx context.Context, memberID int64, orderSn string) error
	Verify(ctx context.Context, orderSn string) (*types.ExchangeOrderItem, error)
	ListAllOrders(ctx context.Context, status string, page, pageSize int) (*types.AdminOrderList, error)
}

type ExchangeService struct {
	Config       *config.Config
	ProductDAO   *dao.Products
	OrderDAO     *dao.ExchangeOrders
	PointService IPointService
}

var _ IExchangeService = (*ExchangeService)(nil)

// Exchange 积分兑换。写入顺序固定为：扣库存 -> 扣积分 -> 建单，
// 任何一步失败都把前面的动作按相反顺序补偿回去。
func (s *ExchangeService) Exchange(ctx context.Context, memberID int64, req *types.ExchangeReq) (*types.ExchangeOrderItem, error) {
	if req.Quantity <= 0 {
		return nil, ErrBadRequest
	}
	product, err := s.ProductDAO.FindOnShelf(ctx, req.ProductID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	if product.Stock < req.Quantity {
		return nil, ErrOutOfStock
	}
	cost := product.PointsCost * req.Quantity
	account, err := s.PointService.Account(ctx, memberID)
	if err != nil {
		return nil, err
	}
	if account.AvailablePoints < cost {
		return nil, ErrInsufficientBalance
	}
	if product.LimitPerUser > 0 {
		taken, err := s.OrderDAO.SumActiveQuantity(ctx, memberID, product.ID, time.Now())
		if err != nil {
			return nil, err
		}
		if taken+req.Quantity > int64(product.LimitPerUser) {
			return nil, ErrExchangeLimitExceeded
		}
	}
	if product.ProductType == models.ProductTypePhysical && len(req.DeliveryInfo) == 0 {
		return nil, ErrDeliveryRequired
	}

	// 库存是第一道闸门：上面的 Stock 判断只用来提前返回，
	// 真正的防超卖靠这里的条件更新
	rows, err := s.ProductDAO.DecrementStock(ctx, product.ID, req.Quantity)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrOutOfStock
	}

	orderSn := snowflake.GenOrderSn()
	if err := s.PointService.Debit(ctx, memberID, cost,
		models.PointsSourceExchange, orderSn, "积分兑换-"+product.Name); err != nil {
		s.restoreStock(ctx, product.ID, req.Quantity)
		return nil, err
	}

	order := &models.ExchangeOrder{
		OrderSn:     orderSn,
		MemberID:    memberID,
		ProductID:   product.ID,
		ProductName: product.Name,
		CoverImage:  product.CoverImage,
		ProductType: product.ProductType,
		Quantity:    req.Quantity,
		PointsCost:  cost,
		Status:      models.OrderStatusPending,
	}
	if product.ProductType == models.ProductTypeCoupon {
		order.CouponCode = utils.GenCouponCode(s.Config.Loyalty.CouponPrefix)
	}
	if len(req.DeliveryInfo) > 0 {
		raw, _ := json.Marshal(req.DeliveryInfo)
		order.DeliveryInfo = datatypes.JSON(raw)
	}
	if product.ValidDays > 0 {
		expireAt := time.Now().AddDate(0, 0, product.ValidDays)
		order.ExpireAt = &expireAt
	}
	if err := s.OrderDAO.Create(ctx, order); err != nil {
		// 建单失败，退回积分和库存
		if cerr := s.PointService.Credit(ctx, memberID, cost,
			models.PointsSourceRefund, orderSn, "兑换失败返还"); cerr != nil {
			log.L.Error("兑换补偿退积分失败",
				zap.String("order_sn", orderSn), zap.Int64("member_id", memberID), zap.Error(cerr))
		}
		s.restoreStock(ctx, product.ID, req.Quantity)
		return nil, err
	}

	if err := s.ProductDAO.AddSalesVolume(ctx, product.ID, req.Quantity); err != nil {
		log.L.Warn("销量累加失败", zap.Int64("product_id", product.ID), zap.Error(err))
	}
	return toOrderItem(order), nil
}

// GetOrder 查询兑换单，读取时惰性过期。
// memberID 为 0 表示后台查询，跳过归属校验。
func (s *ExchangeService) GetOrder(ctx context.Context, memberID int64, orderSn string) (*types.ExchangeOrderItem, error) {
	order, err := s.loadOrder(ctx, memberID, orderSn)
	if err != nil {
		return nil, err
	}
	return toOrderItem(order), nil
}

func (s *ExchangeService) ListOrders(ctx context.Context, memberID int64, cursor int64, limit int) (*types.ListExchangeOrders, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	orders, err := s.OrderDAO.ListByMember(ctx, memberID, cursor, limit+1)
	if err != nil {
		return nil, err
	}
	resp := &types.ListExchangeOrders{Orders: make([]types.ExchangeOrderItem, 0, len(orders))}
	if len(orders) > limit {
		resp.HasMore = true
		orders = orders[:limit]
	}
	for i := range orders {
		s.lazyExpire(ctx, &orders[i])
		resp.Orders = append(resp.Orders, *toOrderItem(&orders[i]))
	}
	if len(orders) > 0 {
		resp.NextCursor = orders[len(orders)-1].ID
	}
	return resp, nil
}

// Cancel 取消待使用兑换单，返还库存和积分。
// 返还走 refund 入账，会再次累加 total_points（与历史口径保持一致）。
func (s *ExchangeService) Cancel(ctx context.Context, memberID int64, orderSn string) error {
	order, err := s.loadOrder(ctx, memberID, orderSn)
	if err != nil {
		return err
	}
	rows, err := s.OrderDAO.MarkCancelled(ctx, orderSn)
	if err != nil {
		return err
	}
	if rows == 0 {
		return ErrOrderNotRedeemable
	}
	s.restoreStock(ctx, order.ProductID, order.Quantity)
	if err := s.ProductDAO.AddSalesVolume(ctx, order.ProductID, -order.Quantity); err != nil {
		log.L.Warn("销量回退失败", zap.Int64("product_id", order.ProductID), zap.Error(err))
	}
	return s.PointService.Credit(ctx, memberID, order.PointsCost,
		models.PointsSourceRefund, orderSn, "兑换取消返还-"+order.ProductName)
}

// Verify 核销。只有未过期的待使用订单可以核销，条件更新防止重复核销。
func (s *ExchangeService) Verify(ctx context.Context, orderSn string) (*types.ExchangeOrderItem, error) {
	order, err := s.loadOrder(ctx, 0, orderSn)
	if err != nil {
		return nil, err
	}
	if order.Status != models.OrderStatusPending {
		return nil, ErrOrderNotRedeemable
	}
	now := time.Now()
	rows, err := s.OrderDAO.MarkUsed(ctx, orderSn, now)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, ErrOrderNotRedeemable
	}
	order.Status = models.OrderStatusUsed
	order.UsedAt = &now
	return toOrderItem(order), nil
}

func (s *ExchangeService) ListAllOrders(ctx context.Context, status string, page, pageSize int) (*types.AdminOrderList, error) {
	orders, total, err := s.OrderDAO.ListAll(ctx, status, page, pageSize)
	if err != nil {
		return nil, err
	}
	return &types.AdminOrderList{Orders: orders, Total: total}, nil
}

func (s *ExchangeService) loadOrder(ctx context.Context, memberID int64, orderSn string) (*models.ExchangeOrder, error) {
	order, err := s.OrderDAO.FindBySn(ctx, orderSn)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	if memberID > 0 && order.MemberID != memberID {
		return nil, ErrForbidden
	}
	s.lazyExpire(ctx, order)
	return order, nil
}

// lazyExpire 过期判定在读取时进行，不依赖后台任务。
// 条件更新失败说明状态已被并发流转，以 DB 为准重读状态即可。
func (s *ExchangeService) lazyExpire(ctx context.Context, order *models.ExchangeOrder) {
	if order.Status != models.OrderStatusPending || order.ExpireAt == nil || time.Now().Before(*order.ExpireAt) {
		return
	}
	rows, err := s.OrderDAO.MarkExpired(ctx, order.OrderSn)
	if err != nil {
		log.L.Warn("兑换单过期落库失败", zap.String("order_sn", order.OrderSn), zap.Error(err))
		return
	}
	if rows > 0 {
		order.Status = models.OrderStatusExpired
	}
}

func (s *ExchangeService) restoreStock(ctx context.Context, productID, quantity int64) {
	if err := s.ProductDAO.RestoreStock(ctx, productID, quantity); err != nil {
		log.L.Error("库存回补失败", zap.Int64("product_id", productID), zap.Error(err))
	}
}

func toOrderItem(order *models.ExchangeOrder) *types.ExchangeOrderItem {
	item := &types.ExchangeOrderItem{
		OrderSn:     order.OrderSn,
		ProductID:   order.ProductID,
		ProductName: order.ProductName,
		CoverImage:  order.CoverImage,
		ProductType: order.ProductType,
		Quantity:    order.Quantity,
		PointsCost:  order.PointsCost,
		Status:      order.Status,
		CouponCode:  order.CouponCode,
		CreatedAt:   order.CreatedAt.Format(timeLayout),
	}
	if order.ExpireAt != nil {
		item.ExpireAt = order.ExpireAt.Format(timeLayout)
	}
	if order.UsedAt != nil {
		item.UsedAt = order.UsedAt.Format(timeLayout)
	}
	return item
}
