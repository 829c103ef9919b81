package models

import "time"

// 积分流水类型
const (
	PointsTypeEarn    = "earn"    // 入账
	PointsTypeConsume = "consume" // 支出
)

// 积分变动来源
const (
	PointsSourceCheckin  = "checkin"  // 打卡奖励
	PointsSourceShare    = "share"    // 分享奖励
	PointsSourceExchange = "exchange" // 积分兑换
	PointsSourceReferral = "referral" // 邀请奖励
	PointsSourceAdmin    = "admin"    // 后台调整
	PointsSourceRefund   = "refund"   // 兑换取消返还
)

// PointsLog 积分流水，只插入不更新
type PointsLog struct {
	ID        int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	MemberID  int64     `gorm:"column:member_id;index:idx_points_logs_member_id" json:"member_id"`
	Amount    int64     `gorm:"column:amount;not null" json:"amount"`            // 变动数额（正负）
	Balance   int64     `gorm:"column:balance;not null" json:"balance"`          // 变动后可用积分快照
	Type      string    `gorm:"column:type;size:16;not null" json:"type"`        // earn / consume
	Source    string    `gorm:"column:source;size:32;not null" json:"source"`    // checkin / exchange / ...
	SourceID  string    `gorm:"column:source_id;size:64;index:idx_source_id" json:"source_id"`
	Remark    string    `gorm:"column:remark;size:255;default:''" json:"remark"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (PointsLog) TableName() string {
	return "points_logs"
}
