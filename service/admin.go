package service

import (
	"context"
	"strconv"
	"time"

	"rocketbird/dao"
	"rocketbird/models"
	"rocketbird/pkg/encrypt"
	"rocketbird/types"
)

type IAdminService interface {
	Login(ctx context.Context, username, password string) (*models.Admin, error)
	CreateAdmin(ctx context.Context, req *types.CreateAdminReq) (*models.Admin, error)
	ListAdmins(ctx context.Context) ([]*models.Admin, error)
	SetStatus(ctx context.Context, adminID int64, status int8) error
	ResetPassword(ctx context.Context, adminID int64, password string) error
	AdjustPoints(ctx context.Context, adminID int64, req *types.AdjustPointsReq) error
}

type AdminService struct {
	AdminDAO      *dao.Admins
	MemberService IMemberService
	PointService  IPointService
}

var _ IAdminService = (*AdminService)(nil)

// Login 后台账号密码登录。账号不存在和密码错误返回同一个错误，
// 不给撞库留提示。
func (s *AdminService) Login(ctx context.Context, username, password string) (*models.Admin, error) {
	admin, err := s.AdminDAO.FindByUsername(ctx, username)
	if err != nil {
		return nil, ErrLoginFailed
	}
	if admin.Status != 1 {
		return nil, ErrAccountFrozen
	}
	if !encrypt.VerifyPassword(admin.Password, password) {
		return nil, ErrLoginFailed
	}
	now := time.Now()
	_ = s.AdminDAO.UpdateById(ctx, admin.ID, map[string]interface{}{"last_login_at": now})
	admin.LastLoginAt = &now
	return admin, nil
}

func (s *AdminService) CreateAdmin(ctx context.Context, req *types.CreateAdminReq) (*models.Admin, error) {
	if s.AdminDAO.IsUsernameExist(ctx, req.Username) {
		return nil, ErrUsernameTaken
	}
	hashed, err := encrypt.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}
	admin := &models.Admin{
		Username: req.Username,
		Password: hashed,
		Role:     req.Role,
		Status:   1,
	}
	if err := s.AdminDAO.Create(ctx, admin); err != nil {
		return nil, err
	}
	return admin, nil
}

func (s *AdminService) ListAdmins(ctx context.Context) ([]*models.Admin, error) {
	return s.AdminDAO.FindAll(ctx, "id > 0")
}

func (s *AdminService) SetStatus(ctx context.Context, adminID int64, status int8) error {
	if _, err := s.AdminDAO.FindById(ctx, adminID); err != nil {
		return ErrForbidden
	}
	return s.AdminDAO.UpdateById(ctx, adminID, map[string]interface{}{"status": status})
}

func (s *AdminService) ResetPassword(ctx context.Context, adminID int64, password string) error {
	if len(password) < 8 {
		return ErrBadRequest
	}
	if _, err := s.AdminDAO.FindById(ctx, adminID); err != nil {
		return ErrForbidden
	}
	hashed, err := encrypt.HashPassword(password)
	if err != nil {
		return err
	}
	return s.AdminDAO.UpdateById(ctx, adminID, map[string]interface{}{"password": hashed})
}

// AdjustPoints 后台手工调整会员积分，正数发放、负数扣减，
// 流水 source_id 记录操作人。
func (s *AdminService) AdjustPoints(ctx context.Context, adminID int64, req *types.AdjustPointsReq) error {
	if req.Amount == 0 {
		return ErrBadRequest
	}
	if _, err := s.MemberService.GetMember(ctx, req.MemberID); err != nil {
		return err
	}
	operator := strconv.FormatInt(adminID, 10)
	if req.Amount > 0 {
		return s.PointService.Credit(ctx, req.MemberID, req.Amount,
			models.PointsSourceAdmin, operator, req.Remark)
	}
	return s.PointService.Debit(ctx, req.MemberID, -req.Amount,
		models.PointsSourceAdmin, operator, req.Remark)
}
