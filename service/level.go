package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/datatypes"

	"rocketbird/dao"
	"rocketbird/models"
	"rocketbird/pkg/log"
	"rocketbird/types"
)

const (
	levelCacheKey = "rocketbird:levels:active"
	levelCacheTTL = 5 * time.Minute
)

type ILevelService interface {
	ListActive(ctx context.Context) ([]*models.Level, error)
	Resolve(ctx context.Context, growth int64) (*models.Level, error)
	Progress(ctx context.Context, memberID int64) (*types.LevelProgress, error)
	Refresh(ctx context.Context, memberID, growth int64) error
	ListAll(ctx context.Context) ([]*models.Level, error)
	SaveLevel(ctx context.Context, req *types.SaveLevelReq) (*models.Level, error)
	DeleteLevel(ctx context.Context, levelID int64) error
}

type LevelService struct {
	Redis    *redis.Client
	LevelDAO *dao.Levels
	PointDAO *dao.Point
}

var _ ILevelService = (*LevelService)(nil)

// ListActive 返回启用中的等级，按 min_growth 升序。
// Redis 只是只读缓存，任何缓存错误都按 miss 处理，直接回源 DB。
func (s *LevelService) ListActive(ctx context.Context) ([]*models.Level, error) {
	if raw, err := s.Redis.Get(ctx, levelCacheKey).Bytes(); err == nil {
		var levels []*models.Level
		if err := json.Unmarshal(raw, &levels); err == nil {
			return levels, nil
		}
	}
	levels, err := s.LevelDAO.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	if raw, err := json.Marshal(levels); err == nil {
		if err := s.Redis.Set(ctx, levelCacheKey, raw, levelCacheTTL).Err(); err != nil {
			log.L.Warn("等级缓存写入失败", zap.Error(err))
		}
	}
	return levels, nil
}

// Resolve 按成长值匹配等级，区间为 [min_growth, max_growth)。
// 配置存在缺口时可能匹配不到，返回 nil 而不是错误。
func (s *LevelService) Resolve(ctx context.Context, growth int64) (*models.Level, error) {
	levels, err := s.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	for _, lvl := range levels {
		if growth >= lvl.MinGrowth && growth < lvl.MaxGrowth {
			return lvl, nil
		}
	}
	return nil, nil
}

// Progress 会员当前等级与下一级的进度。
func (s *LevelService) Progress(ctx context.Context, memberID int64) (*types.LevelProgress, error) {
	account, err := s.PointDAO.GetAccount(ctx, memberID)
	var growth int64
	if err == nil {
		growth = account.GrowthValue
	}
	levels, err := s.ListActive(ctx)
	if err != nil {
		return nil, err
	}
	progress := &types.LevelProgress{GrowthValue: growth}
	idx := -1
	for i, lvl := range levels {
		if growth >= lvl.MinGrowth && growth < lvl.MaxGrowth {
			idx = i
			break
		}
	}
	if idx < 0 {
		// 没匹配到：要么配置有缺口，要么成长值超出最高档上限
		if n := len(levels); n > 0 && growth >= levels[n-1].MaxGrowth {
			progress.Current = levels[n-1]
			progress.IsMaxLevel = true
			progress.Percent = 100
		}
		return progress, nil
	}
	progress.Current = levels[idx]
	if idx+1 < len(levels) {
		progress.Next = levels[idx+1]
		span := progress.Next.MinGrowth - progress.Current.MinGrowth
		if span > 0 {
			progress.Percent = int((growth - progress.Current.MinGrowth) * 100 / span)
		}
	} else {
		progress.IsMaxLevel = true
		progress.Percent = 100
	}
	return progress, nil
}

// Refresh 按最新成长值重算等级并回写账户冗余字段。
// 全系统唯一写 level_id/level_name 的入口。
func (s *LevelService) Refresh(ctx context.Context, memberID, growth int64) error {
	lvl, err := s.Resolve(ctx, growth)
	if err != nil {
		return err
	}
	if lvl == nil {
		return s.PointDAO.UpdateLevel(ctx, memberID, 0, "")
	}
	return s.PointDAO.UpdateLevel(ctx, memberID, lvl.ID, lvl.Name)
}

func (s *LevelService) ListAll(ctx context.Context) ([]*models.Level, error) {
	return s.LevelDAO.ListAll(ctx)
}

// SaveLevel 新建或编辑等级。启用状态的等级之间成长值区间不允许重叠。
func (s *LevelService) SaveLevel(ctx context.Context, req *types.SaveLevelReq) (*models.Level, error) {
	if req.MinGrowth < 0 || req.MaxGrowth <= req.MinGrowth {
		return nil, ErrBadRequest
	}
	if req.Status == models.LevelStatusOn {
		levels, err := s.LevelDAO.ListActive(ctx)
		if err != nil {
			return nil, err
		}
		for _, lvl := range levels {
			if lvl.ID == req.ID {
				continue
			}
			if req.MinGrowth < lvl.MaxGrowth && lvl.MinGrowth < req.MaxGrowth {
				return nil, ErrLevelRangeOverlap
			}
		}
	}
	benefits, _ := json.Marshal(req.Benefits)
	lvl := &models.Level{
		ID:        req.ID,
		Name:      req.Name,
		MinGrowth: req.MinGrowth,
		MaxGrowth: req.MaxGrowth,
		Benefits:  datatypes.JSON(benefits),
		SortOrder: req.SortOrder,
		Status:    req.Status,
	}
	if req.ID > 0 {
		if _, err := s.LevelDAO.FindById(ctx, req.ID); err != nil {
			return nil, ErrLevelNotFound
		}
		err := s.LevelDAO.UpdateById(ctx, req.ID, map[string]interface{}{
			"name":       req.Name,
			"min_growth": req.MinGrowth,
			"max_growth": req.MaxGrowth,
			"benefits":   datatypes.JSON(benefits),
			"sort_order": req.SortOrder,
			"status":     req.Status,
		})
		if err != nil {
			return nil, err
		}
	} else {
		if err := s.LevelDAO.Create(ctx, lvl); err != nil {
			return nil, err
		}
	}
	s.invalidateCache(ctx)
	return lvl, nil
}

func (s *LevelService) DeleteLevel(ctx context.Context, levelID int64) error {
	if _, err := s.LevelDAO.FindById(ctx, levelID); err != nil {
		return ErrLevelNotFound
	}
	if err := s.LevelDAO.DeleteById(ctx, levelID); err != nil {
		return err
	}
	s.invalidateCache(ctx)
	return nil
}

func (s *LevelService) invalidateCache(ctx context.Context) {
	if err := s.Redis.Del(ctx, levelCacheKey).Err(); err != nil {
		log.L.Warn("等级缓存删除失败", zap.Error(err))
	}
}
