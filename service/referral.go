package service

import (
	"context"
	"errors"
	"strconv"

	"gorm.io/gorm"

	"rocketbird/config"
	"rocketbird/dao"
	"rocketbird/models"
	"rocketbird/types"
)

type IReferralService interface {
	Bind(ctx context.Context, inviteeID int64, inviteCode string) (*types.BindReferralResp, error)
	ListRecords(ctx context.Context, inviterID int64, cursor int64, limit int) (*types.ListReferrals, error)
}

type ReferralService struct {
	Config       *config.Config
	MemberDAO    *dao.Members
	ReferralDAO  *dao.Referrals
	PointService IPointService
}

var _ IReferralService = (*ReferralService)(nil)

// Bind 绑定邀请关系，一个会员只能被绑定一次。
// invitee_id 上的唯一索引兜底并发下的重复绑定。
func (s *ReferralService) Bind(ctx context.Context, inviteeID int64, inviteCode string) (*types.BindReferralResp, error) {
	invitee, err := s.MemberDAO.FindById(ctx, inviteeID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMemberNotFound
	}
	if err != nil {
		return nil, err
	}
	inviter, err := s.MemberDAO.FindByInviteCode(ctx, inviteCode)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidInviteCode
	}
	if err != nil {
		return nil, err
	}
	if inviter.ID == inviteeID {
		return nil, ErrSelfReferral
	}
	if invitee.InviterID != 0 {
		return nil, ErrAlreadyBound
	}
	bound, err := s.ReferralDAO.IsBound(ctx, inviteeID)
	if err != nil {
		return nil, err
	}
	if bound {
		return nil, ErrAlreadyBound
	}

	loyalty := s.Config.Loyalty
	record := &models.ReferralRecord{
		InviterID:     inviter.ID,
		InviteeID:     inviteeID,
		RewardPoints:  loyalty.ReferralRewardPoints,
		InviteePoints: loyalty.ReferralInviteePoints,
	}
	if err := s.ReferralDAO.Create(ctx, record); err != nil {
		// 唯一索引冲突按重复绑定处理
		return nil, ErrAlreadyBound
	}
	if err := s.MemberDAO.UpdateById(ctx, inviteeID, map[string]interface{}{"inviter_id": inviter.ID}); err != nil {
		return nil, err
	}

	sourceID := strconv.FormatInt(record.ID, 10)
	if loyalty.ReferralRewardPoints > 0 {
		if err := s.PointService.Credit(ctx, inviter.ID, loyalty.ReferralRewardPoints,
			models.PointsSourceReferral, sourceID, "邀请好友奖励"); err != nil {
			return nil, err
		}
	}
	if loyalty.ReferralInviteePoints > 0 {
		if err := s.PointService.Credit(ctx, inviteeID, loyalty.ReferralInviteePoints,
			models.PointsSourceReferral, sourceID, "受邀注册奖励"); err != nil {
			return nil, err
		}
	}
	if err := s.PointService.AddGrowth(ctx, inviter.ID, loyalty.ReferralGrowth); err != nil {
		return nil, err
	}
	return &types.BindReferralResp{RewardPoints: loyalty.ReferralInviteePoints}, nil
}

// ListRecords 邀请记录列表，附带被邀请人昵称。
func (s *ReferralService) ListRecords(ctx context.Context, inviterID int64, cursor int64, limit int) (*types.ListReferrals, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	total, err := s.ReferralDAO.CountByInviter(ctx, inviterID)
	if err != nil {
		return nil, err
	}
	records, err := s.ReferralDAO.ListByInviter(ctx, inviterID, cursor, limit+1)
	if err != nil {
		return nil, err
	}
	resp := &types.ListReferrals{Total: total, Records: make([]types.ReferralItem, 0, len(records))}
	if len(records) > limit {
		resp.HasMore = true
		records = records[:limit]
	}
	if len(records) == 0 {
		return resp, nil
	}

	ids := make([]int64, 0, len(records))
	for _, r := range records {
		ids = append(ids, r.InviteeID)
	}
	nicknames := make(map[int64]string, len(ids))
	members, err := s.MemberDAO.FindAll(ctx, "id IN ?", ids)
	if err == nil {
		for _, m := range members {
			nicknames[m.ID] = m.Nickname
		}
	}
	for _, r := range records {
		resp.Records = append(resp.Records, types.ReferralItem{
			ID:           r.ID,
			InviteeID:    r.InviteeID,
			Nickname:     nicknames[r.InviteeID],
			RewardPoints: r.RewardPoints,
			CreatedAt:    r.CreatedAt.Format(timeLayout),
		})
	}
	resp.NextCursor = records[len(records)-1].ID
	return resp, nil
}
