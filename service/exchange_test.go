package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rocketbird/config"
	"rocketbird/dao"
	"rocketbird/internal/testutil"
	"rocketbird/models"
	"rocketbird/types"
)

func newExchangeService(t *testing.T) (*ExchangeService, *gorm.DB) {
	db := testutil.NewTestDB(t,
		&models.Product{}, &models.ExchangeOrder{},
		&models.MemberAccount{}, &models.PointsLog{}, &models.Level{})
	levelService := &LevelService{
		Redis:    testutil.NewTestRedis(t),
		LevelDAO: dao.NewLevels(db),
		PointDAO: dao.NewPoint(db),
	}
	pointService := &PointService{
		PointDAO:     dao.NewPoint(db),
		LevelService: levelService,
	}
	s := &ExchangeService{
		Config:       &config.Config{Loyalty: config.DefaultLoyalty()},
		ProductDAO:   dao.NewProducts(db),
		OrderDAO:     dao.NewExchangeOrders(db),
		PointService: pointService,
	}
	return s, db
}

func seedProduct(t *testing.T, db *gorm.DB, product *models.Product) *models.Product {
	t.Helper()
	require.NoError(t, db.Create(product).Error)
	return product
}

func fundAccount(t *testing.T, s *ExchangeService, memberID, amount int64) {
	t.Helper()
	require.NoError(t, s.PointService.Credit(context.Background(), memberID, amount, models.PointsSourceAdmin, "0", "充值"))
}

func TestExchangeCoupon(t *testing.T) {
	s, db := newExchangeService(t)
	ctx := context.Background()
	product := seedProduct(t, db, &models.Product{
		Name: "咖啡券", ProductType: models.ProductTypeCoupon,
		PointsCost: 50, Stock: 10, TotalStock: 10, ValidDays: 7, Status: models.ProductStatusOn,
	})
	fundAccount(t, s, 1, 200)

	order, err := s.Exchange(ctx, 1, &types.ExchangeReq{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusPending, order.Status)
	require.Equal(t, int64(100), order.PointsCost)
	require.True(t, strings.HasPrefix(order.CouponCode, "RB"))
	require.NotEmpty(t, order.ExpireAt)

	account, err := s.PointService.Account(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(100), account.AvailablePoints)

	var p models.Product
	require.NoError(t, db.First(&p, product.ID).Error)
	require.Equal(t, int64(8), p.Stock)
	require.Equal(t, int64(2), p.SalesVolume)
}

func TestExchangeInsufficientPoints(t *testing.T) {
	s, db := newExchangeService(t)
	product := seedProduct(t, db, &models.Product{
		Name: "水杯", ProductType: models.ProductTypeVirtual,
		PointsCost: 100, Stock: 10, Status: models.ProductStatusOn,
	})
	fundAccount(t, s, 1, 50)

	_, err := s.Exchange(context.Background(), 1, &types.ExchangeReq{ProductID: product.ID, Quantity: 1})
	require.ErrorIs(t, err, ErrInsufficientBalance)

	// 库存不能被失败的兑换吃掉
	var p models.Product
	require.NoError(t, db.First(&p, product.ID).Error)
	require.Equal(t, int64(10), p.Stock)
}

func TestExchangeOutOfStock(t *testing.T) {
	s, db := newExchangeService(t)
	product := seedProduct(t, db, &models.Product{
		Name: "水杯", ProductType: models.ProductTypeVirtual,
		PointsCost: 10, Stock: 1, Status: models.ProductStatusOn,
	})
	fundAccount(t, s, 1, 100)

	_, err := s.Exchange(context.Background(), 1, &types.ExchangeReq{ProductID: product.ID, Quantity: 2})
	require.ErrorIs(t, err, ErrOutOfStock)

	// 最后一件只够一个人兑
	fundAccount(t, s, 2, 100)
	_, err = s.Exchange(context.Background(), 1, &types.ExchangeReq{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)
	_, err = s.Exchange(context.Background(), 2, &types.ExchangeReq{ProductID: product.ID, Quantity: 1})
	require.ErrorIs(t, err, ErrOutOfStock)
}

func TestExchangeLimitPerUser(t *testing.T) {
	s, db := newExchangeService(t)
	ctx := context.Background()
	product := seedProduct(t, db, &models.Product{
		Name: "水杯", ProductType: models.ProductTypeVirtual,
		PointsCost: 10, Stock: 100, LimitPerUser: 2, Status: models.ProductStatusOn,
	})
	fundAccount(t, s, 1, 1000)

	_, err := s.Exchange(ctx, 1, &types.ExchangeReq{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)
	_, err = s.Exchange(ctx, 1, &types.ExchangeReq{ProductID: product.ID, Quantity: 1})
	require.ErrorIs(t, err, ErrExchangeLimitExceeded)

	// 其他会员不受影响
	fundAccount(t, s, 2, 1000)
	_, err = s.Exchange(ctx, 2, &types.ExchangeReq{ProductID: product.ID, Quantity: 2})
	require.NoError(t, err)
}

func TestExchangePhysicalNeedsDelivery(t *testing.T) {
	s, db := newExchangeService(t)
	product := seedProduct(t, db, &models.Product{
		Name: "帆布包", ProductType: models.ProductTypePhysical,
		PointsCost: 10, Stock: 10, Status: models.ProductStatusOn,
	})
	fundAccount(t, s, 1, 100)

	_, err := s.Exchange(context.Background(), 1, &types.ExchangeReq{ProductID: product.ID, Quantity: 1})
	require.ErrorIs(t, err, ErrDeliveryRequired)

	_, err = s.Exchange(context.Background(), 1, &types.ExchangeReq{
		ProductID: product.ID, Quantity: 1,
		DeliveryInfo: map[string]string{"name": "张三", "phone": "13800000000", "address": "某地"},
	})
	require.NoError(t, err)
}

func TestCancelRefundsPointsAndStock(t *testing.T) {
	s, db := newExchangeService(t)
	ctx := context.Background()
	product := seedProduct(t, db, &models.Product{
		Name: "水杯", ProductType: models.ProductTypeVirtual,
		PointsCost: 50, Stock: 10, Status: models.ProductStatusOn,
	})
	fundAccount(t, s, 1, 100)

	order, err := s.Exchange(ctx, 1, &types.ExchangeReq{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)
	require.NoError(t, s.Cancel(ctx, 1, order.OrderSn))

	account, err := s.PointService.Account(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(100), account.AvailablePoints)
	// 返还按入账口径记，累计获得会再涨一次
	require.Equal(t, int64(150), account.TotalPoints)

	var p models.Product
	require.NoError(t, db.First(&p, product.ID).Error)
	require.Equal(t, int64(10), p.Stock)
	require.Equal(t, int64(0), p.SalesVolume)

	// 已取消订单不能再取消
	err = s.Cancel(ctx, 1, order.OrderSn)
	require.ErrorIs(t, err, ErrOrderNotRedeemable)
}

func TestVerifyOnlyOnce(t *testing.T) {
	s, db := newExchangeService(t)
	ctx := context.Background()
	product := seedProduct(t, db, &models.Product{
		Name: "咖啡券", ProductType: models.ProductTypeCoupon,
		PointsCost: 10, Stock: 10, Status: models.ProductStatusOn,
	})
	fundAccount(t, s, 1, 100)

	order, err := s.Exchange(ctx, 1, &types.ExchangeReq{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)

	verified, err := s.Verify(ctx, order.OrderSn)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusUsed, verified.Status)
	require.NotEmpty(t, verified.UsedAt)

	_, err = s.Verify(ctx, order.OrderSn)
	require.ErrorIs(t, err, ErrOrderNotRedeemable)
}

func TestLazyExpire(t *testing.T) {
	s, db := newExchangeService(t)
	ctx := context.Background()
	product := seedProduct(t, db, &models.Product{
		Name: "咖啡券", ProductType: models.ProductTypeCoupon,
		PointsCost: 10, Stock: 10, ValidDays: 7, Status: models.ProductStatusOn,
	})
	fundAccount(t, s, 1, 100)

	order, err := s.Exchange(ctx, 1, &types.ExchangeReq{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)

	// 把有效期拨到过去，下一次读取就会过期
	expired := time.Now().Add(-time.Hour)
	require.NoError(t, db.Model(&models.ExchangeOrder{}).
		Where("order_sn = ?", order.OrderSn).
		Update("expire_at", expired).Error)

	got, err := s.GetOrder(ctx, 1, order.OrderSn)
	require.NoError(t, err)
	require.Equal(t, models.OrderStatusExpired, got.Status)

	// 过期单不能核销也不能取消
	_, err = s.Verify(ctx, order.OrderSn)
	require.ErrorIs(t, err, ErrOrderNotRedeemable)
	err = s.Cancel(ctx, 1, order.OrderSn)
	require.ErrorIs(t, err, ErrOrderNotRedeemable)
}

func TestGetOrderOwnership(t *testing.T) {
	s, db := newExchangeService(t)
	ctx := context.Background()
	product := seedProduct(t, db, &models.Product{
		Name: "水杯", ProductType: models.ProductTypeVirtual,
		PointsCost: 10, Stock: 10, Status: models.ProductStatusOn,
	})
	fundAccount(t, s, 1, 100)

	order, err := s.Exchange(ctx, 1, &types.ExchangeReq{ProductID: product.ID, Quantity: 1})
	require.NoError(t, err)

	_, err = s.GetOrder(ctx, 2, order.OrderSn)
	require.ErrorIs(t, err, ErrForbidden)
}
