package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	ReviewStatusPending  = 0
	ReviewStatusApproved = 1
	ReviewStatusRejected = 2
)

// CheckinTheme 打卡主题（活动）
type CheckinTheme struct {
	ID                int64      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Title             string     `gorm:"column:title;size:64;not null" json:"title"`
	Description       string     `gorm:"column:description;type:text" json:"description"`
	RewardPoints      int64      `gorm:"column:reward_points;default:0;not null" json:"reward_points"`             // 每次打卡奖励积分
	ShareRewardPoints int64      `gorm:"column:share_reward_points;default:0;not null" json:"share_reward_points"` // 分享一次性奖励
	MaxDailyCheckin   int        `gorm:"column:max_daily_checkin;default:1;not null" json:"max_daily_checkin"`     // 每日上限
	NeedReview        bool       `gorm:"column:need_review;default:false" json:"need_review"`                      // 是否需要人工审核
	Status            int8       `gorm:"column:status;not null;index:idx_checkin_themes_status" json:"status"`                    // 1-进行中, 0-下线
	StartAt           *time.Time `gorm:"column:start_at" json:"start_at"`
	EndAt             *time.Time `gorm:"column:end_at" json:"end_at"`
	CreatedAt         time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CheckinTheme) TableName() string {
	return "checkin_themes"
}

// CheckinRecord 打卡记录
type CheckinRecord struct {
	ID           int64          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	MemberID     int64          `gorm:"column:member_id;index:idx_member_theme" json:"member_id"`
	ThemeID      int64          `gorm:"column:theme_id;index:idx_member_theme" json:"theme_id"`
	Content      string         `gorm:"column:content;type:text" json:"content"`
	Images       datatypes.JSON `gorm:"column:images" json:"images"`
	RewardPoints int64          `gorm:"column:reward_points;default:0" json:"reward_points"`            // 本次打卡发放的积分
	ReviewStatus int8           `gorm:"column:review_status;not null" json:"review_status"`             // 0-待审, 1-通过, 2-驳回
	IsShared     bool           `gorm:"column:is_shared;default:false;not null" json:"is_shared"`       // 分享奖励是否已领取
	CreatedAt    time.Time      `gorm:"column:created_at;autoCreateTime;index:idx_created_at" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (CheckinRecord) TableName() string {
	return "checkin_records"
}
