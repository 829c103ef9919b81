package types

import "rocketbird/models"

// LevelProgress 等级进度
type LevelProgress struct {
	GrowthValue int64         `json:"growth_value"`
	Current     *models.Level `json:"current"` // 可能为 nil（等级配置缺口）
	Next        *models.Level `json:"next"`    // 已是最高级时为 nil
	Percent     int           `json:"percent"` // 0-100
	IsMaxLevel  bool          `json:"is_max_level"`
}

// SaveLevelReq 后台新建/编辑等级
type SaveLevelReq struct {
	ID        int64    `json:"id"` // 0 表示新建
	Name      string   `json:"name" binding:"required"`
	MinGrowth int64    `json:"min_growth"`
	MaxGrowth int64    `json:"max_growth" binding:"required"`
	Benefits  []string `json:"benefits"`
	SortOrder int      `json:"sort_order"`
	Status    int8     `json:"status"`
}
