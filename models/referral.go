package models

import "time"

// ReferralRecord 邀请记录，一个被邀请人只能被绑定一次
type ReferralRecord struct {
	ID            int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	InviterID     int64     `gorm:"column:inviter_id;not null;index:idx_inviter_id" json:"inviter_id"`
	InviteeID     int64     `gorm:"column:invitee_id;not null;uniqueIndex:idx_invitee_id" json:"invitee_id"`
	RewardPoints  int64     `gorm:"column:reward_points;default:0" json:"reward_points"`   // 邀请人获得的积分
	InviteePoints int64     `gorm:"column:invitee_points;default:0" json:"invitee_points"` // 被邀请人获得的积分
	CreatedAt     time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (ReferralRecord) TableName() string {
	return "referral_records"
}
