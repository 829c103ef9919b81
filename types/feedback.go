package types

// CreateFeedbackReq 提交反馈
type CreateFeedbackReq struct {
	Category string   `json:"category"`
	Content  string   `json:"content" binding:"required"`
	Images   []string `json:"images"`
}

// FeedbackItem 反馈详情
type FeedbackItem struct {
	ID        int64    `json:"id"`
	Category  string   `json:"category"`
	Content   string   `json:"content"`
	Images    []string `json:"images"`
	Status    int8     `json:"status"`
	Reply     string   `json:"reply"`
	CreatedAt string   `json:"created_at"`
}

// ListFeedbacks 反馈列表
type ListFeedbacks struct {
	Records    []FeedbackItem `json:"records"`
	NextCursor int64          `json:"next_cursor"`
	HasMore    bool           `json:"has_more"`
}

// ReplyFeedbackReq 后台回复反馈
type ReplyFeedbackReq struct {
	FeedbackID int64  `json:"feedback_id" binding:"required"`
	Reply      string `json:"reply" binding:"required"`
}
