package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rocketbird/dao"
	"rocketbird/internal/testutil"
	"rocketbird/models"
	"rocketbird/types"
)

func newPointService(t *testing.T) (*PointService, *gorm.DB) {
	db := testutil.NewTestDB(t, &models.MemberAccount{}, &models.PointsLog{}, &models.Level{})
	levelService := &LevelService{
		Redis:    testutil.NewTestRedis(t),
		LevelDAO: dao.NewLevels(db),
		PointDAO: dao.NewPoint(db),
	}
	pointService := &PointService{
		PointDAO:     dao.NewPoint(db),
		LevelService: levelService,
	}
	return pointService, db
}

func TestCreditOpensAccount(t *testing.T) {
	s, _ := newPointService(t)
	ctx := context.Background()

	err := s.Credit(ctx, 1, 100, models.PointsSourceCheckin, "1", "打卡奖励")
	require.NoError(t, err)

	account, err := s.Account(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(100), account.AvailablePoints)
	require.Equal(t, int64(100), account.TotalPoints)

	records, err := s.ListRecords(ctx, 1, &types.ListPointRecordsReq{})
	require.NoError(t, err)
	require.Len(t, records.Records, 1)
	require.Equal(t, int64(100), records.Records[0].Amount)
	require.Equal(t, int64(100), records.Records[0].Balance)
	require.Equal(t, models.PointsTypeEarn, records.Records[0].Type)
}

func TestDebitInsufficientBalance(t *testing.T) {
	s, _ := newPointService(t)
	ctx := context.Background()

	require.NoError(t, s.Credit(ctx, 1, 100, models.PointsSourceAdmin, "1", ""))

	err := s.Debit(ctx, 1, 150, models.PointsSourceExchange, "SN1", "")
	require.ErrorIs(t, err, ErrInsufficientBalance)

	// 余额不受失败扣减影响
	account, err := s.Account(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(100), account.AvailablePoints)
}

func TestDebitWithoutAccount(t *testing.T) {
	s, _ := newPointService(t)

	err := s.Debit(context.Background(), 99, 10, models.PointsSourceExchange, "SN1", "")
	require.ErrorIs(t, err, ErrAccountNotFound)
}

func TestDebitKeepsTotalPoints(t *testing.T) {
	s, _ := newPointService(t)
	ctx := context.Background()

	require.NoError(t, s.Credit(ctx, 1, 100, models.PointsSourceAdmin, "1", ""))
	require.NoError(t, s.Debit(ctx, 1, 60, models.PointsSourceExchange, "SN1", ""))

	account, err := s.Account(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(40), account.AvailablePoints)
	require.Equal(t, int64(100), account.TotalPoints) // 累计获得只增不减
}

func TestAddGrowthRefreshesLevel(t *testing.T) {
	s, db := newPointService(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Level{Name: "青铜", MinGrowth: 0, MaxGrowth: 100, Status: 1}).Error)
	require.NoError(t, db.Create(&models.Level{Name: "白银", MinGrowth: 100, MaxGrowth: 1000, Status: 1, SortOrder: 1}).Error)

	require.NoError(t, s.AddGrowth(ctx, 1, 50))
	account, err := s.Account(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "青铜", account.LevelName)

	require.NoError(t, s.AddGrowth(ctx, 1, 100))
	account, err = s.Account(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(150), account.GrowthValue)
	require.Equal(t, "白银", account.LevelName)
}

func TestListRecordsCursorAndFilter(t *testing.T) {
	s, _ := newPointService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		require.NoError(t, s.Credit(ctx, 1, 10, models.PointsSourceCheckin, "1", ""))
	}
	require.NoError(t, s.Debit(ctx, 1, 5, models.PointsSourceExchange, "SN1", ""))

	page, err := s.ListRecords(ctx, 1, &types.ListPointRecordsReq{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page.Records, 2)
	require.True(t, page.HasMore)

	next, err := s.ListRecords(ctx, 1, &types.ListPointRecordsReq{Limit: 2, Cursor: page.NextCursor})
	require.NoError(t, err)
	require.Len(t, next.Records, 2)
	require.False(t, next.HasMore)

	income, err := s.ListRecords(ctx, 1, &types.ListPointRecordsReq{Action: "income"})
	require.NoError(t, err)
	require.Len(t, income.Records, 3)

	expense, err := s.ListRecords(ctx, 1, &types.ListPointRecordsReq{Action: "expense"})
	require.NoError(t, err)
	require.Len(t, expense.Records, 1)
	require.Equal(t, int64(-5), expense.Records[0].Amount)

	// 每条流水的余额快照等于当时的可用积分
	require.Equal(t, int64(25), expense.Records[0].Balance)
	require.Equal(t, int64(30), income.Records[0].Balance)
}
