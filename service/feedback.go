package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"rocketbird/dao"
	"rocketbird/models"
	"rocketbird/types"
)

type IFeedbackService interface {
	Create(ctx context.Context, memberID int64, req *types.CreateFeedbackReq) (*models.Feedback, error)
	ListMine(ctx context.Context, memberID int64, cursor int64, limit int) (*types.ListFeedbacks, error)
	ListAll(ctx context.Context, status int, page, pageSize int) ([]models.Feedback, int64, error)
	Reply(ctx context.Context, req *types.ReplyFeedbackReq) error
	Close(ctx context.Context, feedbackID int64) error
}

type FeedbackService struct {
	FeedbackDAO *dao.Feedbacks
}

var _ IFeedbackService = (*FeedbackService)(nil)

func (s *FeedbackService) Create(ctx context.Context, memberID int64, req *types.CreateFeedbackReq) (*models.Feedback, error) {
	images, _ := json.Marshal(req.Images)
	feedback := &models.Feedback{
		MemberID: memberID,
		Category: req.Category,
		Content:  req.Content,
		Images:   datatypes.JSON(images),
		Status:   models.FeedbackStatusOpen,
	}
	if err := s.FeedbackDAO.Create(ctx, feedback); err != nil {
		return nil, err
	}
	return feedback, nil
}

func (s *FeedbackService) ListMine(ctx context.Context, memberID int64, cursor int64, limit int) (*types.ListFeedbacks, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	records, err := s.FeedbackDAO.ListByMember(ctx, memberID, cursor, limit+1)
	if err != nil {
		return nil, err
	}
	resp := &types.ListFeedbacks{Records: make([]types.FeedbackItem, 0, len(records))}
	if len(records) > limit {
		resp.HasMore = true
		records = records[:limit]
	}
	for _, r := range records {
		var images []string
		_ = json.Unmarshal(r.Images, &images)
		resp.Records = append(resp.Records, types.FeedbackItem{
			ID:        r.ID,
			Category:  r.Category,
			Content:   r.Content,
			Images:    images,
			Status:    r.Status,
			Reply:     r.Reply,
			CreatedAt: r.CreatedAt.Format(timeLayout),
		})
	}
	if len(records) > 0 {
		resp.NextCursor = records[len(records)-1].ID
	}
	return resp, nil
}

func (s *FeedbackService) ListAll(ctx context.Context, status int, page, pageSize int) ([]models.Feedback, int64, error) {
	return s.FeedbackDAO.ListAll(ctx, status, page, pageSize)
}

func (s *FeedbackService) Reply(ctx context.Context, req *types.ReplyFeedbackReq) error {
	if _, err := s.FeedbackDAO.FindById(ctx, req.FeedbackID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecordNotFound
		}
		return err
	}
	return s.FeedbackDAO.UpdateById(ctx, req.FeedbackID, map[string]interface{}{
		"reply":      req.Reply,
		"status":     models.FeedbackStatusReplied,
		"replied_at": time.Now(),
	})
}

func (s *FeedbackService) Close(ctx context.Context, feedbackID int64) error {
	if _, err := s.FeedbackDAO.FindById(ctx, feedbackID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrRecordNotFound
		}
		return err
	}
	return s.FeedbackDAO.UpdateById(ctx, feedbackID, map[string]interface{}{
		"status": models.FeedbackStatusClosed,
	})
}
