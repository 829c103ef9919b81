package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	FeedbackStatusOpen    = 0 // 待处理
	FeedbackStatusReplied = 1 // 已回复
	FeedbackStatusClosed  = 2 // 已关闭
)

// Feedback 会员反馈
type Feedback struct {
	ID        int64          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	MemberID  int64          `gorm:"column:member_id;not null;index:idx_feedbacks_member_id" json:"member_id"`
	Category  string         `gorm:"column:category;size:32;default:''" json:"category"` // 建议 / 投诉 / 其他
	Content   string         `gorm:"column:content;type:text;not null" json:"content"`
	Images    datatypes.JSON `gorm:"column:images" json:"images"`
	Status    int8           `gorm:"column:status;default:0;not null;index:idx_feedbacks_status" json:"status"`
	Reply     string         `gorm:"column:reply;type:text" json:"reply"`
	RepliedAt *time.Time     `gorm:"column:replied_at" json:"replied_at"`
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Feedback) TableName() string {
	return "feedbacks"
}
