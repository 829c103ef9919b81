package models

import "time"

const (
	MemberStatusNormal   = 1
	MemberStatusDisabled = 0
)

// Member 会员档案
type Member struct {
	ID         int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	OpenID     string    `gorm:"column:open_id;size:64;uniqueIndex:idx_open_id" json:"-"`
	Nickname   string    `gorm:"column:nickname;size:64;default:''" json:"nickname"`
	Avatar     string    `gorm:"column:avatar;size:512;default:''" json:"avatar"`
	Mobile     string    `gorm:"column:mobile;size:20;default:''" json:"mobile"`
	InviteCode string    `gorm:"column:invite_code;size:16;index:idx_invite_code" json:"invite_code"` // 邀请码（hashids 短码）
	InviterID  int64     `gorm:"column:inviter_id;default:0" json:"inviter_id"`                       // 邀请人，0 表示无
	Status     int8      `gorm:"column:status;default:1;not null" json:"status"`                      // 1-正常, 0-禁用
	CreatedAt  time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Member) TableName() string {
	return "members"
}

// MemberAccount 会员积分账户：可用积分、累计积分、成长值，以及等级冗余字段。
// level_id/level_name 只允许 LevelService.Refresh 回写，其他地方一律只读。
type MemberAccount struct {
	ID              int64     `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	MemberID        int64     `gorm:"column:member_id;uniqueIndex:idx_member_id" json:"member_id"`
	AvailablePoints int64     `gorm:"column:available_points;default:0;not null" json:"available_points"` // 可用积分，任何时刻 >= 0
	TotalPoints     int64     `gorm:"column:total_points;default:0;not null" json:"total_points"`         // 累计获得积分，只增不减
	GrowthValue     int64     `gorm:"column:growth_value;default:0;not null" json:"growth_value"`         // 成长值，只增不减
	LevelID         int64     `gorm:"column:level_id;default:0" json:"level_id"`
	LevelName       string    `gorm:"column:level_name;size:32;default:''" json:"level_name"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (MemberAccount) TableName() string {
	return "member_accounts"
}
