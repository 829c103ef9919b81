package service

import (
	"context"
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

func newCheckinService(t *testing.T) (*CheckinService, *gorm.DB) {
	db := testutil.NewTestDB(t,
		&models.CheckinTheme{}, &models.CheckinRecord{},
		&models.MemberAccount{}, &models.PointsLog{}, &models.Level{})
	redisClient := testutil.NewTestRedis(t)
	levelService := &LevelService{
		Redis:    redisClient,
		LevelDAO: dao.NewLevels(db),
		PointDAO: dao.NewPoint(db),
	}
	pointService := &PointService{
		PointDAO:     dao.NewPoint(db),
		LevelService: levelService,
	}
	s := &CheckinService{
		Config:       &config.Config{Loyalty: config.DefaultLoyalty()},
		Redis:        redisClient,
		CheckinDAO:   dao.NewCheckin(db),
		PointService: pointService,
	}
	return s, db
}

func seedTheme(t *testing.T, db *gorm.DB, theme *models.CheckinTheme) *models.CheckinTheme {
	t.Helper()
	require.NoError(t, db.Create(theme).Error)
	return theme
}

func TestCheckInGrantsPointsAndGrowth(t *testing.T) {
	s, db := newCheckinService(t)
	ctx := context.Background()
	theme := seedTheme(t, db, &models.CheckinTheme{Title: "晨跑", RewardPoints: 10, MaxDailyCheckin: 1, Status: 1})

	result, err := s.CheckIn(ctx, 1, &types.CheckInReq{ThemeID: theme.ID, Content: "今天跑了5公里"})
	require.NoError(t, err)
	require.Equal(t, int64(10), result.RewardPoints)
	require.False(t, result.NeedReview)

	account, err := s.PointService.Account(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(10), account.AvailablePoints)
	require.Equal(t, s.Config.Loyalty.CheckinGrowth, account.GrowthValue)
}

func TestCheckInDailyLimit(t *testing.T) {
	s, db := newCheckinService(t)
	ctx := context.Background()
	theme := seedTheme(t, db, &models.CheckinTheme{Title: "晨跑", RewardPoints: 10, MaxDailyCheckin: 2, Status: 1})

	_, err := s.CheckIn(ctx, 1, &types.CheckInReq{ThemeID: theme.ID})
	require.NoError(t, err)
	_, err = s.CheckIn(ctx, 1, &types.CheckInReq{ThemeID: theme.ID})
	require.NoError(t, err)

	_, err = s.CheckIn(ctx, 1, &types.CheckInReq{ThemeID: theme.ID})
	require.ErrorIs(t, err, ErrDailyLimitExceeded)

	// 上限按会员算，不影响其他人
	_, err = s.CheckIn(ctx, 2, &types.CheckInReq{ThemeID: theme.ID})
	require.NoError(t, err)
}

func TestCheckInOutsideWindow(t *testing.T) {
	s, db := newCheckinService(t)
	ctx := context.Background()

	past := time.Now().Add(-time.Hour)
	ended := seedTheme(t, db, &models.CheckinTheme{Title: "已结束", MaxDailyCheckin: 1, Status: 1, EndAt: &past})
	_, err := s.CheckIn(ctx, 1, &types.CheckInReq{ThemeID: ended.ID})
	require.ErrorIs(t, err, ErrThemeNotFound)

	offline := seedTheme(t, db, &models.CheckinTheme{Title: "已下线", MaxDailyCheckin: 1, Status: 0})
	_, err = s.CheckIn(ctx, 1, &types.CheckInReq{ThemeID: offline.ID})
	require.ErrorIs(t, err, ErrThemeNotFound)
}

func TestCheckInNeedReview(t *testing.T) {
	s, db := newCheckinService(t)
	ctx := context.Background()
	theme := seedTheme(t, db, &models.CheckinTheme{Title: "读书笔记", RewardPoints: 20, MaxDailyCheckin: 1, NeedReview: true, Status: 1})

	result, err := s.CheckIn(ctx, 1, &types.CheckInReq{ThemeID: theme.ID, Content: "笔记内容"})
	require.NoError(t, err)
	require.True(t, result.NeedReview)
	require.Equal(t, int64(0), result.RewardPoints)

	// 审核前不发积分
	account, err := s.PointService.Account(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(0), account.AvailablePoints)

	require.NoError(t, s.Review(ctx, &types.ReviewCheckinReq{RecordID: result.RecordID, Approve: true}))
	account, err = s.PointService.Account(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(20), account.AvailablePoints)

	// 同一条记录不允许二次审核
	err = s.Review(ctx, &types.ReviewCheckinReq{RecordID: result.RecordID, Approve: true})
	require.ErrorIs(t, err, ErrRecordNotReviewable)
}

func TestReviewReject(t *testing.T) {
	s, db := newCheckinService(t)
	ctx := context.Background()
	theme := seedTheme(t, db, &models.CheckinTheme{Title: "读书笔记", RewardPoints: 20, MaxDailyCheckin: 1, NeedReview: true, Status: 1})

	result, err := s.CheckIn(ctx, 1, &types.CheckInReq{ThemeID: theme.ID})
	require.NoError(t, err)
	require.NoError(t, s.Review(ctx, &types.ReviewCheckinReq{RecordID: result.RecordID, Approve: false}))

	account, err := s.PointService.Account(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(0), account.AvailablePoints)
}

func TestShareRewardOnce(t *testing.T) {
	s, db := newCheckinService(t)
	ctx := context.Background()
	theme := seedTheme(t, db, &models.CheckinTheme{Title: "晨跑", RewardPoints: 10, ShareRewardPoints: 5, MaxDailyCheckin: 1, Status: 1})

	result, err := s.CheckIn(ctx, 1, &types.CheckInReq{ThemeID: theme.ID})
	require.NoError(t, err)

	share, err := s.ShareCallback(ctx, 1, result.RecordID)
	require.NoError(t, err)
	require.Equal(t, int64(5), share.RewardPoints)

	// 重复分享不再奖励
	share, err = s.ShareCallback(ctx, 1, result.RecordID)
	require.NoError(t, err)
	require.Equal(t, int64(0), share.RewardPoints)

	account, err := s.PointService.Account(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, int64(15), account.AvailablePoints)
}

func TestShareOthersRecordForbidden(t *testing.T) {
	s, db := newCheckinService(t)
	ctx := context.Background()
	theme := seedTheme(t, db, &models.CheckinTheme{Title: "晨跑", ShareRewardPoints: 5, MaxDailyCheckin: 1, Status: 1})

	result, err := s.CheckIn(ctx, 1, &types.CheckInReq{ThemeID: theme.ID})
	require.NoError(t, err)

	_, err = s.ShareCallback(ctx, 2, result.RecordID)
	require.ErrorIs(t, err, ErrForbidden)
}
