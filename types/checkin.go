package types

import "time"

// CheckInReq 打卡请求
type CheckInReq struct {
	ThemeID int64    `json:"theme_id" binding:"required"`
	Content string   `json:"content"`
	Images  []string `json:"images"`
}

// CheckInResult 打卡结果
type CheckInResult struct {
	RecordID     int64 `json:"record_id"`
	RewardPoints int64 `json:"reward_points"` // 待审核主题为 0，审核通过后发放
	NeedReview   bool  `json:"need_review"`
}

// ShareCallbackReq 分享回调
type ShareCallbackReq struct {
	RecordID int64 `json:"record_id" binding:"required"`
}

// ShareResult 分享奖励结果，重复分享 reward_points 为 0
type ShareResult struct {
	RewardPoints int64 `json:"reward_points"`
}

// CheckinRecordItem 打卡记录
type CheckinRecordItem struct {
	ID           int64    `json:"id"`
	ThemeID      int64    `json:"theme_id"`
	Content      string   `json:"content"`
	Images       []string `json:"images"`
	RewardPoints int64    `json:"reward_points"`
	ReviewStatus int8     `json:"review_status"`
	IsShared     bool     `json:"is_shared"`
	CreatedAt    string   `json:"created_at"`
}

// ListCheckinRecords 打卡记录列表
type ListCheckinRecords struct {
	Records    []CheckinRecordItem `json:"records"`
	NextCursor int64               `json:"next_cursor"`
	HasMore    bool                `json:"has_more"`
}

// SaveThemeReq 后台新建/编辑打卡主题
type SaveThemeReq struct {
	ID                int64      `json:"id"`
	Title             string     `json:"title" binding:"required"`
	Description       string     `json:"description"`
	RewardPoints      int64      `json:"reward_points"`
	ShareRewardPoints int64      `json:"share_reward_points"`
	MaxDailyCheckin   int        `json:"max_daily_checkin"`
	NeedReview        bool       `json:"need_review"`
	Status            int8       `json:"status"`
	StartAt           *time.Time `json:"start_at"`
	EndAt             *time.Time `json:"end_at"`
}

// ReviewCheckinReq 后台审核打卡
type ReviewCheckinReq struct {
	RecordID int64 `json:"record_id" binding:"required"`
	Approve  bool  `json:"approve"`
}
