package types

// BindReferralReq 绑定邀请关系
type BindReferralReq struct {
	InviteCode string `json:"invite_code" binding:"required"`
}

// BindReferralResp 绑定结果
type BindReferralResp struct {
	RewardPoints int64 `json:"reward_points"` // 被邀请人获得的积分
}

// ReferralItem 邀请记录
type ReferralItem struct {
	ID           int64  `json:"id"`
	InviteeID    int64  `json:"invitee_id"`
	Nickname     string `json:"nickname"`
	RewardPoints int64  `json:"reward_points"`
	CreatedAt    string `json:"created_at"`
}

// ListReferrals 邀请记录列表
type ListReferrals struct {
	Total      int64          `json:"total"`
	Records    []ReferralItem `json:"records"`
	NextCursor int64          `json:"next_cursor"`
	HasMore    bool           `json:"has_more"`
}
