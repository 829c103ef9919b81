package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"rocketbird/config"
	"rocketbird/types"
)

const code2SessionURL = "https://api.weixin.qq.com/sns/jscode2session?appid=%s&secret=%s&js_code=%s&grant_type=authorization_code"

type IWeChatService interface {
	Code2Session(ctx context.Context, code string) (*types.WxLoginResponse, error)
}

type WeChatService struct {
	Config *config.Config
}

var _ IWeChatService = (*WeChatService)(nil)

// Code2Session 用 wx.login 的临时 code 换取 openid
func (s *WeChatService) Code2Session(ctx context.Context, code string) (*types.WxLoginResponse, error) {
	url := fmt.Sprintf(code2SessionURL, s.Config.App.AppID, s.Config.App.AppSecret, code)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	client := &http.Client{Timeout: 5 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	var result types.WxLoginResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}
	if result.ErrCode != 0 {
		return nil, fmt.Errorf("微信登录失败: %d %s", result.ErrCode, result.ErrMsg)
	}
	if result.OpenID == "" {
		return nil, fmt.Errorf("微信登录失败: openid 为空")
	}
	return &result, nil
}
