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
)

func newReferralService(t *testing.T) (*ReferralService, *MemberService, *gorm.DB) {
	db := testutil.NewTestDB(t,
		&models.Member{}, &models.ReferralRecord{},
		&models.MemberAccount{}, &models.PointsLog{}, &models.Level{})
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
	memberService := &MemberService{
		Config:       cfg,
		MemberDAO:    dao.NewMembers(db),
		PointService: pointService,
		LevelService: levelService,
	}
	s := &ReferralService{
		Config:       cfg,
		MemberDAO:    dao.NewMembers(db),
		ReferralDAO:  dao.NewReferrals(db),
		PointService: pointService,
	}
	return s, memberService, db
}

func registerMember(t *testing.T, m *MemberService, openid string) *models.Member {
	t.Helper()
	member, _, err := m.GetOrCreateByOpenID(context.Background(), openid)
	require.NoError(t, err)
	return member
}

func TestBindRewardsBothSides(t *testing.T) {
	s, m, db := newReferralService(t)
	ctx := context.Background()

	inviter := registerMember(t, m, "wx-inviter")
	invitee := registerMember(t, m, "wx-invitee")

	resp, err := s.Bind(ctx, invitee.ID, inviter.InviteCode)
	require.NoError(t, err)
	require.Equal(t, s.Config.Loyalty.ReferralInviteePoints, resp.RewardPoints)

	inviterAccount, err := s.PointService.Account(ctx, inviter.ID)
	require.NoError(t, err)
	require.Equal(t, s.Config.Loyalty.ReferralRewardPoints, inviterAccount.AvailablePoints)
	require.Equal(t, s.Config.Loyalty.ReferralGrowth, inviterAccount.GrowthValue)

	inviteeAccount, err := s.PointService.Account(ctx, invitee.ID)
	require.NoError(t, err)
	require.Equal(t, s.Config.Loyalty.ReferralInviteePoints, inviteeAccount.AvailablePoints)

	var bound models.Member
	require.NoError(t, db.First(&bound, invitee.ID).Error)
	require.Equal(t, inviter.ID, bound.InviterID)
}

func TestBindSelfCode(t *testing.T) {
	s, m, _ := newReferralService(t)
	member := registerMember(t, m, "wx-self")

	_, err := s.Bind(context.Background(), member.ID, member.InviteCode)
	require.ErrorIs(t, err, ErrSelfReferral)
}

func TestBindOnlyOnce(t *testing.T) {
	s, m, _ := newReferralService(t)
	ctx := context.Background()

	first := registerMember(t, m, "wx-a")
	second := registerMember(t, m, "wx-b")
	invitee := registerMember(t, m, "wx-c")

	_, err := s.Bind(ctx, invitee.ID, first.InviteCode)
	require.NoError(t, err)

	// 换一个邀请人也不行
	_, err = s.Bind(ctx, invitee.ID, second.InviteCode)
	require.ErrorIs(t, err, ErrAlreadyBound)
}

func TestBindInvalidCode(t *testing.T) {
	s, m, _ := newReferralService(t)
	invitee := registerMember(t, m, "wx-d")

	_, err := s.Bind(context.Background(), invitee.ID, "no-such-code")
	require.ErrorIs(t, err, ErrInvalidInviteCode)
}

func TestListRecords(t *testing.T) {
	s, m, _ := newReferralService(t)
	ctx := context.Background()

	inviter := registerMember(t, m, "wx-inviter")
	for _, openid := range []string{"wx-1", "wx-2", "wx-3"} {
		invitee := registerMember(t, m, openid)
		_, err := s.Bind(ctx, invitee.ID, inviter.InviteCode)
		require.NoError(t, err)
	}

	page, err := s.ListRecords(ctx, inviter.ID, 0, 2)
	require.NoError(t, err)
	require.Equal(t, int64(3), page.Total)
	require.Len(t, page.Records, 2)
	require.True(t, page.HasMore)

	next, err := s.ListRecords(ctx, inviter.ID, page.NextCursor, 2)
	require.NoError(t, err)
	require.Len(t, next.Records, 1)
	require.False(t, next.HasMore)
}
