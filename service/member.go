package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"rocketbird/config"
	"rocketbird/dao"
	"rocketbird/models"
	"rocketbird/pkg/utils"
	"rocketbird/types"
)

type IMemberService interface {
	GetOrCreateByOpenID(ctx context.Context, openid string) (*models.Member, bool, error)
	GetMember(ctx context.Context, memberID int64) (*models.Member, error)
	Summary(ctx context.Context, memberID int64) (*types.MemberSummary, error)
	UpdateProfile(ctx context.Context, memberID int64, req *types.UpdateProfileReq) error
	ListMembers(ctx context.Context, keyword string, page, pageSize int) (*types.AdminMemberList, error)
	SetStatus(ctx context.Context, memberID int64, status int8) error
}

type MemberService struct {
	Config       *config.Config
	MemberDAO    *dao.Members
	PointService IPointService
	LevelService ILevelService
}

var _ IMemberService = (*MemberService)(nil)

// GetOrCreateByOpenID 登录态入口。新会员在这里落库并分配邀请码，
// 积分账户推迟到首次入账时再开。
func (s *MemberService) GetOrCreateByOpenID(ctx context.Context, openid string) (*models.Member, bool, error) {
	member, err := s.MemberDAO.GetOrCreateByOpenID(ctx, openid)
	if err != nil {
		return nil, false, err
	}
	if member.Status != models.MemberStatusNormal {
		return nil, false, ErrAccountFrozen
	}
	if member.InviteCode != "" {
		return member, false, nil
	}
	code := utils.GenHashID(s.Config.Loyalty.InviteSalt, int(member.ID))
	if err := s.MemberDAO.UpdateById(ctx, member.ID, map[string]interface{}{"invite_code": code}); err != nil {
		return nil, false, err
	}
	member.InviteCode = code
	return member, true, nil
}

func (s *MemberService) GetMember(ctx context.Context, memberID int64) (*models.Member, error) {
	member, err := s.MemberDAO.FindById(ctx, memberID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMemberNotFound
	}
	return member, err
}

// Summary 会员中心首页：档案 + 积分账户 + 等级进度一次取齐。
func (s *MemberService) Summary(ctx context.Context, memberID int64) (*types.MemberSummary, error) {
	member, err := s.GetMember(ctx, memberID)
	if err != nil {
		return nil, err
	}
	account, err := s.PointService.Account(ctx, memberID)
	if err != nil {
		return nil, err
	}
	progress, err := s.LevelService.Progress(ctx, memberID)
	if err != nil {
		return nil, err
	}
	return &types.MemberSummary{
		MemberID:   member.ID,
		Nickname:   member.Nickname,
		Avatar:     member.Avatar,
		InviteCode: member.InviteCode,
		Account:    *account,
		Progress:   progress,
	}, nil
}

func (s *MemberService) UpdateProfile(ctx context.Context, memberID int64, req *types.UpdateProfileReq) error {
	if _, err := s.GetMember(ctx, memberID); err != nil {
		return err
	}
	updates := map[string]interface{}{}
	if req.Nickname != "" {
		updates["nickname"] = req.Nickname
	}
	if req.Avatar != "" {
		updates["avatar"] = req.Avatar
	}
	if req.Mobile != "" {
		updates["mobile"] = req.Mobile
	}
	if len(updates) == 0 {
		return nil
	}
	return s.MemberDAO.UpdateById(ctx, memberID, updates)
}

func (s *MemberService) ListMembers(ctx context.Context, keyword string, page, pageSize int) (*types.AdminMemberList, error) {
	members, total, err := s.MemberDAO.List(ctx, keyword, page, pageSize)
	if err != nil {
		return nil, err
	}
	return &types.AdminMemberList{Members: members, Total: total}, nil
}

// SetStatus 后台冻结/解冻会员
func (s *MemberService) SetStatus(ctx context.Context, memberID int64, status int8) error {
	if status != models.MemberStatusNormal && status != models.MemberStatusDisabled {
		return ErrBadRequest
	}
	if _, err := s.GetMember(ctx, memberID); err != nil {
		return err
	}
	return s.MemberDAO.UpdateById(ctx, memberID, map[string]interface{}{"status": status})
}
