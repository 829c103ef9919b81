package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"rocketbird/config"
	"rocketbird/middleware"
	"rocketbird/pkg/context"
	"rocketbird/pkg/response"
	"rocketbird/service"
	"rocketbird/types"
)

type Referral struct {
	Config          *config.Config
	MemberService   service.IMemberService
	ReferralService service.IReferralService
}

func (h *Referral) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	referral := r.Group("/v1/referral")
	referral.Use(authorize)
	referral.GET("/code", context.Wrap(h.MyCode))
	referral.POST("/bind", context.Wrap(h.Bind))
	referral.GET("/records", context.Wrap(h.Records))
}

func (h *Referral) MyCode(c *gin.Context) error {
	memberID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	member, err := h.MemberService.GetMember(c.Request.Context(), memberID)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"invite_code": member.InviteCode})
	return nil
}

func (h *Referral) Bind(c *gin.Context) error {
	memberID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.BindReferralReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return service.ErrBadRequest
	}
	resp, err := h.ReferralService.Bind(c.Request.Context(), memberID, req.InviteCode)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Referral) Records(c *gin.Context) error {
	memberID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	cursor, _ := strconv.ParseInt(c.Query("cursor"), 10, 64)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	resp, err := h.ReferralService.ListRecords(c.Request.Context(), memberID, cursor, limit)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
