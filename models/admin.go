package models

import "time"

const (
	RoleSuper    = "super"    // 超级管理员
	RoleOperator = "operator" // 运营
)

// Admin 后台账号
type Admin struct {
	ID          int64      `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Username    string     `gorm:"column:username;size:32;not null;uniqueIndex:idx_username" json:"username"`
	Password    string     `gorm:"column:password;size:128;not null" json:"-"` // bcrypt 哈希
	Role        string     `gorm:"column:role;size:16;not null;default:'operator'" json:"role"`
	Status      int8       `gorm:"column:status;default:1;not null" json:"status"` // 1-启用, 0-停用
	LastLoginAt *time.Time `gorm:"column:last_login_at" json:"last_login_at"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Admin) TableName() string {
	return "admins"
}
