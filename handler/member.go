package handler

import (
	"github.com/gin-gonic/gin"

	"rocketbird/config"
	"rocketbird/middleware"
	"rocketbird/pkg/context"
	"rocketbird/pkg/response"
	"rocketbird/service"
	"rocketbird/types"
)

type Member struct {
	Config        *config.Config
	MemberService service.IMemberService
}

func (m *Member) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(m.Config.Jwt.Secret))
	member := r.Group("/v1/member")
	member.Use(authorize)
	member.GET("/summary", context.Wrap(m.Summary))
	member.PUT("/profile", context.Wrap(m.UpdateProfile))
}

func (m *Member) Summary(c *gin.Context) error {
	memberID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	resp, err := m.MemberService.Summary(c.Request.Context(), memberID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (m *Member) UpdateProfile(c *gin.Context) error {
	memberID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.UpdateProfileReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return service.ErrBadRequest
	}
	if err := m.MemberService.UpdateProfile(c.Request.Context(), memberID, &req); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
