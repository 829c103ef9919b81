package types

// LoginReq 小程序登录
type LoginReq struct {
	Code string `json:"code" binding:"required"` // wx.login 临时凭证
}

// LoginResp 登录结果
type LoginResp struct {
	Token    string `json:"token"`
	MemberID int64  `json:"member_id"`
	IsNew    bool   `json:"is_new"`
}

// WxLoginResponse 微信 code2session 返回
type WxLoginResponse struct {
	OpenID     string `json:"openid"`
	SessionKey string `json:"session_key"`
	UnionID    string `json:"unionid"`
	ErrCode    int    `json:"errcode"`
	ErrMsg     string `json:"errmsg"`
}

// UpdateProfileReq 更新会员资料
type UpdateProfileReq struct {
	Nickname string `json:"nickname"`
	Avatar   string `json:"avatar"`
	Mobile   string `json:"mobile"`
}

// MemberSummary 会员中心首页聚合
type MemberSummary struct {
	MemberID   int64          `json:"member_id"`
	Nickname   string         `json:"nickname"`
	Avatar     string         `json:"avatar"`
	InviteCode string         `json:"invite_code"`
	Account    PointsAccount  `json:"account"`
	Progress   *LevelProgress `json:"progress"`
}
