package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"rocketbird/config"
	"rocketbird/dao"
	"rocketbird/internal/testutil"
	"rocketbird/models"
	"rocketbird/types"
)

func newMemberService(t *testing.T) (*MemberService, *gorm.DB) {
	db := testutil.NewTestDB(t,
		&models.Member{}, &models.MemberAccount{}, &models.PointsLog{}, &models.Level{})
	cfg := &config.Config{Loyalty: config.DefaultLoyalty()}
	levelService := &LevelService{
		Redis:    testutil.NewTestRedis(t),
		LevelDAO: dao.NewLevels(db),
		PointDAO: dao.NewPoint(db),
	}
	pointService := &PointService{
		PointDAO:     dao.NewPoint(db),
		LevelService: levelService,
	}
	s := &MemberService{
		Config:       cfg,
		MemberDAO:    dao.NewMembers(db),
		PointService: pointService,
		LevelService: levelService,
	}
	return s, db
}

func TestGetOrCreateByOpenID(t *testing.T) {
	s, _ := newMemberService(t)
	ctx := context.Background()

	member, isNew, err := s.GetOrCreateByOpenID(ctx, "wx-openid-1")
	require.NoError(t, err)
	require.True(t, isNew)
	require.NotEmpty(t, member.InviteCode)

	// 二次登录拿到同一个会员
	again, isNew, err := s.GetOrCreateByOpenID(ctx, "wx-openid-1")
	require.NoError(t, err)
	require.False(t, isNew)
	require.Equal(t, member.ID, again.ID)
	require.Equal(t, member.InviteCode, again.InviteCode)
}

func TestFrozenMemberCannotLogin(t *testing.T) {
	s, _ := newMemberService(t)
	ctx := context.Background()

	member, _, err := s.GetOrCreateByOpenID(ctx, "wx-openid-1")
	require.NoError(t, err)
	require.NoError(t, s.SetStatus(ctx, member.ID, models.MemberStatusDisabled))

	_, _, err = s.GetOrCreateByOpenID(ctx, "wx-openid-1")
	require.ErrorIs(t, err, ErrAccountFrozen)
}

func TestSummary(t *testing.T) {
	s, db := newMemberService(t)
	ctx := context.Background()

	require.NoError(t, db.Create(&models.Level{Name: "青铜", MinGrowth: 0, MaxGrowth: 100, Status: 1}).Error)
	member, _, err := s.GetOrCreateByOpenID(ctx, "wx-openid-1")
	require.NoError(t, err)
	require.NoError(t, s.PointService.Credit(ctx, member.ID, 30, models.PointsSourceCheckin, "1", ""))
	require.NoError(t, s.PointService.AddGrowth(ctx, member.ID, 10))

	summary, err := s.Summary(ctx, member.ID)
	require.NoError(t, err)
	require.Equal(t, member.InviteCode, summary.InviteCode)
	require.Equal(t, int64(30), summary.Account.AvailablePoints)
	require.Equal(t, "青铜", summary.Progress.Current.Name)
}

func TestUpdateProfile(t *testing.T) {
	s, db := newMemberService(t)
	ctx := context.Background()

	member, _, err := s.GetOrCreateByOpenID(ctx, "wx-openid-1")
	require.NoError(t, err)
	require.NoError(t, s.UpdateProfile(ctx, member.ID, &types.UpdateProfileReq{Nickname: "小王", Avatar: "https://cdn.example.com/a.png"}))

	var updated models.Member
	require.NoError(t, db.First(&updated, member.ID).Error)
	require.Equal(t, "小王", updated.Nickname)

	// 空字段不覆盖已有值
	require.NoError(t, s.UpdateProfile(ctx, member.ID, &types.UpdateProfileReq{Mobile: "13800000000"}))
	require.NoError(t, db.First(&updated, member.ID).Error)
	require.Equal(t, "小王", updated.Nickname)
	require.Equal(t, "13800000000", updated.Mobile)
}
