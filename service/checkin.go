package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"rocketbird/config"
	"rocketbird/dao"
	"rocketbird/models"
	"rocketbird/pkg/log"
	"rocketbird/pkg/utils"
	"rocketbird/types"
)

type ICheckinService interface {
	ListThemes(ctx context.Context) ([]*models.CheckinTheme, error)
	CheckIn(ctx context.Context, memberID int64, req *types.CheckInReq) (*types.CheckInResult, error)
	ShareCallback(ctx context.Context, memberID, recordID int64) (*types.ShareResult, error)
	ListRecords(ctx context.Context, memberID int64, cursor int64, limit int) (*types.ListCheckinRecords, error)
	ListAllThemes(ctx context.Context) ([]*models.CheckinTheme, error)
	SaveTheme(ctx context.Context, req *types.SaveThemeReq) (*models.CheckinTheme, error)
	ListPendingRecords(ctx context.Context, page, pageSize int) ([]models.CheckinRecord, int64, error)
	Review(ctx context.Context, req *types.ReviewCheckinReq) error
}

type CheckinService struct {
	Config       *config.Config
	Redis        *redis.Client
	CheckinDAO   *dao.Checkin
	PointService IPointService
}

var _ ICheckinService = (*CheckinService)(nil)

func (s *CheckinService) ListThemes(ctx context.Context) ([]*models.CheckinTheme, error) {
	return s.CheckinDAO.ListActiveThemes(ctx, time.Now())
}

// CheckIn 打卡。每日次数以 DB 计数为准，Redis 计数器只用来
// 提前拦截明显超限的请求，缓存失效时直接跳过。
func (s *CheckinService) CheckIn(ctx context.Context, memberID int64, req *types.CheckInReq) (*types.CheckInResult, error) {
	theme, err := s.activeTheme(ctx, req.ThemeID)
	if err != nil {
		return nil, err
	}

	key := s.counterKey(memberID, theme.ID)
	if val, err := s.Redis.Get(ctx, key).Int(); err == nil && val >= theme.MaxDailyCheckin {
		return nil, ErrDailyLimitExceeded
	}
	count, err := s.CheckinDAO.CountSince(ctx, memberID, theme.ID, utils.BeginOfToday())
	if err != nil {
		return nil, err
	}
	if count >= int64(theme.MaxDailyCheckin) {
		return nil, ErrDailyLimitExceeded
	}

	images, _ := json.Marshal(req.Images)
	record := &models.CheckinRecord{
		MemberID:     memberID,
		ThemeID:      theme.ID,
		Content:      req.Content,
		Images:       datatypes.JSON(images),
		RewardPoints: theme.RewardPoints,
		ReviewStatus: models.ReviewStatusApproved,
	}
	if theme.NeedReview {
		record.ReviewStatus = models.ReviewStatusPending
	}
	if err := s.CheckinDAO.Create(ctx, record); err != nil {
		return nil, err
	}

	result := &types.CheckInResult{RecordID: record.ID, NeedReview: theme.NeedReview}
	if !theme.NeedReview {
		if err := s.grantCheckinReward(ctx, record, theme.Title); err != nil {
			return nil, err
		}
		result.RewardPoints = theme.RewardPoints
	}
	s.bumpCounter(ctx, key)
	return result, nil
}

// ShareCallback 打卡分享奖励，每条记录只发一次。
// 重复回调命中 is_shared 条件更新失败，按 0 奖励返回。
func (s *CheckinService) ShareCallback(ctx context.Context, memberID, recordID int64) (*types.ShareResult, error) {
	record, err := s.CheckinDAO.FindById(ctx, recordID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrRecordNotFound
	}
	if err != nil {
		return nil, err
	}
	if record.MemberID != memberID {
		return nil, ErrForbidden
	}
	rows, err := s.CheckinDAO.MarkShared(ctx, recordID)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return &types.ShareResult{}, nil
	}
	theme, err := s.CheckinDAO.GetTheme(ctx, record.ThemeID)
	if err != nil || theme.ShareRewardPoints <= 0 {
		return &types.ShareResult{}, nil
	}
	err = s.PointService.Credit(ctx, memberID, theme.ShareRewardPoints,
		models.PointsSourceShare, strconv.FormatInt(recordID, 10), "分享奖励-"+theme.Title)
	if err != nil {
		return nil, err
	}
	return &types.ShareResult{RewardPoints: theme.ShareRewardPoints}, nil
}

func (s *CheckinService) ListRecords(ctx context.Context, memberID int64, cursor int64, limit int) (*types.ListCheckinRecords, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	records, err := s.CheckinDAO.ListRecords(ctx, memberID, cursor, limit+1)
	if err != nil {
		return nil, err
	}
	resp := &types.ListCheckinRecords{Records: make([]types.CheckinRecordItem, 0, len(records))}
	if len(records) > limit {
		resp.HasMore = true
		records = records[:limit]
	}
	for _, r := range records {
		var images []string
		_ = json.Unmarshal(r.Images, &images)
		resp.Records = append(resp.Records, types.CheckinRecordItem{
			ID:           r.ID,
			ThemeID:      r.ThemeID,
			Content:      r.Content,
			Images:       images,
			RewardPoints: r.RewardPoints,
			ReviewStatus: r.ReviewStatus,
			IsShared:     r.IsShared,
			CreatedAt:    r.CreatedAt.Format(timeLayout),
		})
	}
	if len(records) > 0 {
		resp.NextCursor = records[len(records)-1].ID
	}
	return resp, nil
}

func (s *CheckinService) ListAllThemes(ctx context.Context) ([]*models.CheckinTheme, error) {
	return s.CheckinDAO.ListThemes(ctx)
}

func (s *CheckinService) SaveTheme(ctx context.Context, req *types.SaveThemeReq) (*models.CheckinTheme, error) {
	if req.MaxDailyCheckin <= 0 {
		req.MaxDailyCheckin = 1
	}
	theme := &models.CheckinTheme{
		ID:                req.ID,
		Title:             req.Title,
		Description:       req.Description,
		RewardPoints:      req.RewardPoints,
		ShareRewardPoints: req.ShareRewardPoints,
		MaxDailyCheckin:   req.MaxDailyCheckin,
		NeedReview:        req.NeedReview,
		Status:            req.Status,
		StartAt:           req.StartAt,
		EndAt:             req.EndAt,
	}
	if req.ID > 0 {
		if _, err := s.CheckinDAO.GetTheme(ctx, req.ID); err != nil {
			return nil, ErrThemeNotFound
		}
		err := s.CheckinDAO.Db.WithContext(ctx).Model(&models.CheckinTheme{}).
			Where("id = ?", req.ID).
			Updates(map[string]interface{}{
				"title":               req.Title,
				"description":         req.Description,
				"reward_points":       req.RewardPoints,
				"share_reward_points": req.ShareRewardPoints,
				"max_daily_checkin":   req.MaxDailyCheckin,
				"need_review":         req.NeedReview,
				"status":              req.Status,
				"start_at":            req.StartAt,
				"end_at":              req.EndAt,
			}).Error
		if err != nil {
			return nil, err
		}
		return theme, nil
	}
	if err := s.CheckinDAO.Db.WithContext(ctx).Create(theme).Error; err != nil {
		return nil, err
	}
	return theme, nil
}

func (s *CheckinService) ListPendingRecords(ctx context.Context, page, pageSize int) ([]models.CheckinRecord, int64, error) {
	return s.CheckinDAO.ListByReviewStatus(ctx, models.ReviewStatusPending, page, pageSize)
}

// Review 审核待审打卡。通过时才发放积分和成长值。
func (s *CheckinService) Review(ctx context.Context, req *types.ReviewCheckinReq) error {
	record, err := s.CheckinDAO.FindById(ctx, req.RecordID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	if err != nil {
		return err
	}
	if record.ReviewStatus != models.ReviewStatusPending {
		return ErrRecordNotReviewable
	}
	status := models.ReviewStatusRejected
	if req.Approve {
		status = models.ReviewStatusApproved
	}
	err = s.CheckinDAO.UpdateById(ctx, record.ID, map[string]interface{}{"review_status": status})
	if err != nil {
		return err
	}
	if !req.Approve {
		return nil
	}
	theme, err := s.CheckinDAO.GetTheme(ctx, record.ThemeID)
	title := ""
	if err == nil {
		title = theme.Title
	}
	return s.grantCheckinReward(ctx, record, title)
}

func (s *CheckinService) activeTheme(ctx context.Context, themeID int64) (*models.CheckinTheme, error) {
	theme, err := s.CheckinDAO.GetTheme(ctx, themeID)
	if err != nil {
		return nil, ErrThemeNotFound
	}
	now := time.Now()
	if theme.Status != 1 ||
		(theme.StartAt != nil && now.Before(*theme.StartAt)) ||
		(theme.EndAt != nil && now.After(*theme.EndAt)) {
		return nil, ErrThemeNotFound
	}
	return theme, nil
}

func (s *CheckinService) grantCheckinReward(ctx context.Context, record *models.CheckinRecord, title string) error {
	if record.RewardPoints > 0 {
		err := s.PointService.Credit(ctx, record.MemberID, record.RewardPoints,
			models.PointsSourceCheckin, strconv.FormatInt(record.ID, 10), "打卡奖励-"+title)
		if err != nil {
			return err
		}
	}
	return s.PointService.AddGrowth(ctx, record.MemberID, s.Config.Loyalty.CheckinGrowth)
}

func (s *CheckinService) counterKey(memberID, themeID int64) string {
	return fmt.Sprintf("rocketbird:checkin:%d:%d:%s", memberID, themeID, time.Now().Format("20060102"))
}

// bumpCounter 计数器只影响快速路径，写失败不影响打卡结果
func (s *CheckinService) bumpCounter(ctx context.Context, key string) {
	pipe := s.Redis.TxPipeline()
	pipe.Incr(ctx, key)
	pipe.ExpireAt(ctx, key, utils.BeginOfToday().Add(24*time.Hour))
	if _, err := pipe.Exec(ctx); err != nil {
		log.L.Warn("打卡计数器更新失败", zap.String("key", key), zap.Error(err))
	}
}
