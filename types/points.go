package types

// PointsAccount 账户概览
type PointsAccount struct {
	AvailablePoints int64  `json:"available_points"` // 当前可用积分
	TotalPoints     int64  `json:"total_points"`     // 历史累计获得
	GrowthValue     int64  `json:"growth_value"`     // 成长值
	LevelID         int64  `json:"level_id"`
	LevelName       string `json:"level_name"`
}

// PointRecord 每一条流水的细节
type PointRecord struct {
	ID        int64  `json:"id"`
	Amount    int64  `json:"amount"`  // 变动数值（如 +10, -50）
	Balance   int64  `json:"balance"` // 变动后余额快照
	Type      string `json:"type"`    // earn / consume
	Source    string `json:"source"`
	Remark    string `json:"remark"`
	CreatedAt string `json:"created_at"` // 格式化时间: 2006-01-02 15:04:05
}

// ListPointsRecord 流水列表包装
type ListPointsRecord struct {
	Records    []PointRecord `json:"records"`
	NextCursor int64         `json:"next_cursor"`
	HasMore    bool          `json:"has_more"`
}

// ListPointRecordsReq 流水查询参数
type ListPointRecordsReq struct {
	Action string `form:"action"` // 空-全部, income-仅收入, expense-仅支出
	Cursor int64  `form:"cursor"`
	Limit  int    `form:"limit,default=10"`
}

// AdjustPointsReq 后台手工调整积分
type AdjustPointsReq struct {
	MemberID int64  `json:"member_id" binding:"required"`
	Amount   int64  `json:"amount" binding:"required"` // 正数发放，负数扣减
	Remark   string `json:"remark" binding:"required"`
}
