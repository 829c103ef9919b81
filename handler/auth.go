package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"rocketbird/config"
	"rocketbird/pkg/context"
	"rocketbird/pkg/jwt"
	"rocketbird/pkg/response"
	"rocketbird/service"
	"rocketbird/types"
)

type Auth struct {
	Config        *config.Config
	WeChatService service.IWeChatService
	MemberService service.IMemberService
}

func (a *Auth) RegisterRouter(r gin.IRouter) {
	auth := r.Group("/v1/auth")
	auth.POST("/login", context.Wrap(a.Login))
}

// Login 小程序登录：code 换 openid，静默注册后下发 token
func (a *Auth) Login(c *gin.Context) error {
	var req types.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return service.ErrBadRequest
	}
	session, err := a.WeChatService.Code2Session(c.Request.Context(), req.Code)
	if err != nil {
		return response.NewError(500, err.Error())
	}
	member, isNew, err := a.MemberService.GetOrCreateByOpenID(c.Request.Context(), session.OpenID)
	if err != nil {
		return err
	}
	expire := time.Duration(a.Config.Jwt.Expire) * time.Second
	token, err := jwt.GenerateToken([]byte(a.Config.Jwt.Secret), member.ID, member.OpenID, "", jwt.TypeAccess, expire)
	if err != nil {
		return response.NewError(500, err.Error())
	}
	response.Success(c, types.LoginResp{
		Token:    token,
		MemberID: member.ID,
		IsNew:    isNew,
	})
	return nil
}
