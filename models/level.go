package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	LevelStatusOff = 0 // 停用
	LevelStatusOn  = 1 // 启用
)

// Level 会员等级定义。成长值区间为左闭右开 [min_growth, max_growth)，
// 各启用等级之间连续不重叠（后台保存时校验）。
type Level struct {
	ID        int64          `gorm:"primaryKey;autoIncrement;column:id" json:"id"`
	Name      string         `gorm:"column:name;size:32;not null" json:"name"`
	MinGrowth int64          `gorm:"column:min_growth;not null" json:"min_growth"`
	MaxGrowth int64          `gorm:"column:max_growth;not null" json:"max_growth"`
	Benefits  datatypes.JSON `gorm:"column:benefits" json:"benefits"` // 权益描述列表
	SortOrder int            `gorm:"column:sort_order;default:0;index:idx_sort_order" json:"sort_order"`
	Status    int8           `gorm:"column:status;not null" json:"status"` // 1-启用, 0-停用
	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Level) TableName() string {
	return "levels"
}
