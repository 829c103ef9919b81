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

func newLevelService(t *testing.T) (*LevelService, *gorm.DB) {
	db := testutil.NewTestDB(t, &models.Level{}, &models.MemberAccount{})
	s := &LevelService{
		Redis:    testutil.NewTestRedis(t),
		LevelDAO: dao.NewLevels(db),
		PointDAO: dao.NewPoint(db),
	}
	return s, db
}

func seedLevels(t *testing.T, db *gorm.DB) {
	t.Helper()
	require.NoError(t, db.Create(&models.Level{Name: "青铜", MinGrowth: 0, MaxGrowth: 100, Status: 1}).Error)
	require.NoError(t, db.Create(&models.Level{Name: "白银", MinGrowth: 100, MaxGrowth: 500, Status: 1, SortOrder: 1}).Error)
	require.NoError(t, db.Create(&models.Level{Name: "黄金", MinGrowth: 500, MaxGrowth: 99999, Status: 1, SortOrder: 2}).Error)
}

func TestResolveHalfOpenInterval(t *testing.T) {
	s, db := newLevelService(t)
	seedLevels(t, db)
	ctx := context.Background()

	lvl, err := s.Resolve(ctx, 99)
	require.NoError(t, err)
	require.Equal(t, "青铜", lvl.Name)

	// 边界值落到高一档
	lvl, err = s.Resolve(ctx, 100)
	require.NoError(t, err)
	require.Equal(t, "白银", lvl.Name)
}

func TestResolveGapReturnsNil(t *testing.T) {
	s, db := newLevelService(t)
	require.NoError(t, db.Create(&models.Level{Name: "白银", MinGrowth: 100, MaxGrowth: 500, Status: 1}).Error)

	lvl, err := s.Resolve(context.Background(), 50)
	require.NoError(t, err)
	require.Nil(t, lvl)
}

func TestProgress(t *testing.T) {
	s, db := newLevelService(t)
	seedLevels(t, db)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.MemberAccount{MemberID: 1, GrowthValue: 300}).Error)
	progress, err := s.Progress(ctx, 1)
	require.NoError(t, err)
	require.Equal(t, "白银", progress.Current.Name)
	require.Equal(t, "黄金", progress.Next.Name)
	require.Equal(t, 50, progress.Percent)
	require.False(t, progress.IsMaxLevel)

	require.NoError(t, db.Create(&models.MemberAccount{MemberID: 2, GrowthValue: 600}).Error)
	progress, err = s.Progress(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, "黄金", progress.Current.Name)
	require.Nil(t, progress.Next)
	require.True(t, progress.IsMaxLevel)
	require.Equal(t, 100, progress.Percent)
}

func TestRefreshWritesDenormalizedFields(t *testing.T) {
	s, db := newLevelService(t)
	seedLevels(t, db)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.MemberAccount{MemberID: 1}).Error)
	require.NoError(t, s.Refresh(ctx, 1, 150))

	var account models.MemberAccount
	require.NoError(t, db.Where("member_id = ?", 1).First(&account).Error)
	require.Equal(t, "白银", account.LevelName)

	// 等级配置缺口时清空冗余字段
	require.NoError(t, s.Refresh(ctx, 1, -1))
	require.NoError(t, db.Where("member_id = ?", 1).First(&account).Error)
	require.Equal(t, "", account.LevelName)
	require.Equal(t, int64(0), account.LevelID)
}

func TestSaveLevelRejectsOverlap(t *testing.T) {
	s, db := newLevelService(t)
	seedLevels(t, db)

	_, err := s.SaveLevel(context.Background(), &types.SaveLevelReq{
		Name:      "铂金",
		MinGrowth: 400,
		MaxGrowth: 800,
		Status:    models.LevelStatusOn,
	})
	require.ErrorIs(t, err, ErrLevelRangeOverlap)

	// 停用状态不参与重叠校验
	_, err = s.SaveLevel(context.Background(), &types.SaveLevelReq{
		Name:      "铂金",
		MinGrowth: 400,
		MaxGrowth: 800,
		Status:    models.LevelStatusOff,
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Level{}).Count(&count).Error)
	require.Equal(t, int64(4), count)
}
