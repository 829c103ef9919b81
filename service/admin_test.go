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
	"rocketbird/pkg/encrypt"
	"rocketbird/types"
)

func newAdminService(t *testing.T) (*AdminService, *gorm.DB) {
	db := testutil.NewTestDB(t,
		&models.Admin{}, &models.Member{},
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
	s := &AdminService{
		AdminDAO:      dao.NewAdmins(db),
		MemberService: memberService,
		PointService:  pointService,
	}
	return s, db
}

func seedAdmin(t *testing.T, db *gorm.DB, username, password, role string) *models.Admin {
	t.Helper()
	hashed, err := encrypt.HashPassword(password)
	require.NoError(t, err)
	admin := &models.Admin{Username: username, Password: hashed, Role: role, Status: 1}
	require.NoError(t, db.Create(admin).Error)
	return admin
}

func TestAdminLogin(t *testing.T) {
	s, db := newAdminService(t)
	ctx := context.Background()
	seedAdmin(t, db, "ops", "password123", models.RoleOperator)

	admin, err := s.Login(ctx, "ops", "password123")
	require.NoError(t, err)
	require.Equal(t, models.RoleOperator, admin.Role)
	require.NotNil(t, admin.LastLoginAt)

	_, err = s.Login(ctx, "ops", "wrong-password")
	require.ErrorIs(t, err, ErrLoginFailed)

	// 不存在的账号和密码错误是同一个错误
	_, err = s.Login(ctx, "nobody", "password123")
	require.ErrorIs(t, err, ErrLoginFailed)
}

func TestAdminLoginFrozen(t *testing.T) {
	s, db := newAdminService(t)
	admin := seedAdmin(t, db, "ops", "password123", models.RoleOperator)
	require.NoError(t, s.SetStatus(context.Background(), admin.ID, 0))

	_, err := s.Login(context.Background(), "ops", "password123")
	require.ErrorIs(t, err, ErrAccountFrozen)
}

func TestCreateAdminDuplicateUsername(t *testing.T) {
	s, db := newAdminService(t)
	seedAdmin(t, db, "ops", "password123", models.RoleOperator)

	_, err := s.CreateAdmin(context.Background(), &types.CreateAdminReq{
		Username: "ops", Password: "password456", Role: models.RoleOperator,
	})
	require.ErrorIs(t, err, ErrUsernameTaken)
}

func TestAdjustPoints(t *testing.T) {
	s, db := newAdminService(t)
	ctx := context.Background()
	require.NoError(t, db.Create(&models.Member{OpenID: "wx-1", Status: 1}).Error)
	var member models.Member
	require.NoError(t, db.Where("open_id = ?", "wx-1").First(&member).Error)

	require.NoError(t, s.AdjustPoints(ctx, 9, &types.AdjustPointsReq{MemberID: member.ID, Amount: 100, Remark: "活动补发"}))
	require.NoError(t, s.AdjustPoints(ctx, 9, &types.AdjustPointsReq{MemberID: member.ID, Amount: -30, Remark: "误发追回"}))

	account, err := s.PointService.Account(ctx, member.ID)
	require.NoError(t, err)
	require.Equal(t, int64(70), account.AvailablePoints)

	// 扣减同样不允许扣成负数
	err = s.AdjustPoints(ctx, 9, &types.AdjustPointsReq{MemberID: member.ID, Amount: -100, Remark: "误发追回"})
	require.ErrorIs(t, err, ErrInsufficientBalance)

	err = s.AdjustPoints(ctx, 9, &types.AdjustPointsReq{MemberID: 9999, Amount: 10, Remark: "x"})
	require.ErrorIs(t, err, ErrMemberNotFound)
}
