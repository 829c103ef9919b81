package service

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"rocketbird/dao"
	"rocketbird/models"
	"rocketbird/pkg/log"
	"rocketbird/types"
)

const timeLayout = "2006-01-02 15:04:05"

type IPointService interface {
	Credit(ctx context.Context, memberID, amount int64, source, sourceID, remark string) error
	Debit(ctx context.Context, memberID, amount int64, source, sourceID, remark string) error
	AddGrowth(ctx context.Context, memberID, value int64) error
	Account(ctx context.Context, memberID int64) (*types.PointsAccount, error)
	ListRecords(ctx context.Context, memberID int64, req *types.ListPointRecordsReq) (*types.ListPointsRecord, error)
}

type PointService struct {
	PointDAO     *dao.Point
	LevelService ILevelService
}

var _ IPointService = (*PointService)(nil)

// Credit 入账。账户不存在时自动开户，成功后追加一条 earn 流水。
func (s *PointService) Credit(ctx context.Context, memberID, amount int64, source, sourceID, remark string) error {
	if amount <= 0 {
		return ErrBadRequest
	}
	rows, err := s.PointDAO.CreditBalance(ctx, memberID, amount)
	if err != nil {
		return err
	}
	if rows == 0 {
		// 首次入账，先开户再记账
		if err := s.PointDAO.CreateAccount(ctx, memberID, 0); err != nil {
			return err
		}
		if _, err := s.PointDAO.CreditBalance(ctx, memberID, amount); err != nil {
			return err
		}
	}
	return s.appendLog(ctx, memberID, amount, models.PointsTypeEarn, source, sourceID, remark)
}

// Debit 扣减。依赖条件更新保证 available_points 不会为负，
// 并发下超扣的请求会拿到 rows=0。
func (s *PointService) Debit(ctx context.Context, memberID, amount int64, source, sourceID, remark string) error {
	if amount <= 0 {
		return ErrBadRequest
	}
	rows, err := s.PointDAO.DebitBalance(ctx, memberID, amount)
	if err != nil {
		return err
	}
	if rows == 0 {
		if _, err := s.PointDAO.GetAccount(ctx, memberID); errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAccountNotFound
		}
		return ErrInsufficientBalance
	}
	return s.appendLog(ctx, memberID, -amount, models.PointsTypeConsume, source, sourceID, remark)
}

// AddGrowth 增加成长值，随后统一触发等级刷新。
// level_id/level_name 的回写只发生在 LevelService.Refresh 里。
func (s *PointService) AddGrowth(ctx context.Context, memberID, value int64) error {
	if value <= 0 {
		return nil
	}
	rows, err := s.PointDAO.AddGrowth(ctx, memberID, value)
	if err != nil {
		return err
	}
	if rows == 0 {
		if err := s.PointDAO.CreateAccount(ctx, memberID, 0); err != nil {
			return err
		}
		if _, err := s.PointDAO.AddGrowth(ctx, memberID, value); err != nil {
			return err
		}
	}
	account, err := s.PointDAO.GetAccount(ctx, memberID)
	if err != nil {
		return err
	}
	return s.LevelService.Refresh(ctx, memberID, account.GrowthValue)
}

func (s *PointService) Account(ctx context.Context, memberID int64) (*types.PointsAccount, error) {
	account, err := s.PointDAO.GetAccount(ctx, memberID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		// 未开户的新会员按零账户返回
		return &types.PointsAccount{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &types.PointsAccount{
		AvailablePoints: account.AvailablePoints,
		TotalPoints:     account.TotalPoints,
		GrowthValue:     account.GrowthValue,
		LevelID:         account.LevelID,
		LevelName:       account.LevelName,
	}, nil
}

func (s *PointService) ListRecords(ctx context.Context, memberID int64, req *types.ListPointRecordsReq) (*types.ListPointsRecord, error) {
	limit := req.Limit
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	logs, err := s.PointDAO.ListLogs(ctx, memberID, req.Action, req.Cursor, limit+1)
	if err != nil {
		return nil, err
	}
	resp := &types.ListPointsRecord{Records: make([]types.PointRecord, 0, len(logs))}
	if len(logs) > limit {
		resp.HasMore = true
		logs = logs[:limit]
	}
	for _, l := range logs {
		resp.Records = append(resp.Records, types.PointRecord{
			ID:        l.ID,
			Amount:    l.Amount,
			Balance:   l.Balance,
			Type:      l.Type,
			Source:    l.Source,
			Remark:    l.Remark,
			CreatedAt: l.CreatedAt.Format(timeLayout),
		})
	}
	if len(logs) > 0 {
		resp.NextCursor = logs[len(logs)-1].ID
	}
	return resp, nil
}

// appendLog 记流水。流水写失败不回滚余额变更，只告警，
// 余额以 member_accounts 为准。
func (s *PointService) appendLog(ctx context.Context, memberID, amount int64, typ, source, sourceID, remark string) error {
	account, err := s.PointDAO.GetAccount(ctx, memberID)
	if err != nil {
		return err
	}
	if err := s.PointDAO.CreatePointsLog(ctx, &models.PointsLog{
		MemberID: memberID,
		Amount:   amount,
		Balance:  account.AvailablePoints,
		Type:     typ,
		Source:   source,
		SourceID: sourceID,
		Remark:   remark,
	}); err != nil {
		log.L.Error("写积分流水失败",
			zap.Int64("member_id", memberID),
			zap.String("source", fmt.Sprintf("%s:%s", source, sourceID)),
			zap.Error(err))
	}
	return nil
}
