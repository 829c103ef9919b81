package types

import "rocketbird/models"

// AdminLoginReq 后台登录
type AdminLoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AdminLoginResp 后台登录结果
type AdminLoginResp struct {
	Token    string `json:"token"`
	AdminID  int64  `json:"admin_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// CreateAdminReq 新建后台账号（仅超管）
type CreateAdminReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=super operator"`
}

// AdminMemberList 后台会员分页
type AdminMemberList struct {
	Members []*models.Member `json:"members"`
	Total   int64            `json:"total"`
}

// PageReq 通用分页参数
type PageReq struct {
	Page     int `form:"page,default=1"`
	PageSize int `form:"page_size,default=20"`
}
