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

type Checkin struct {
	Config         *config.Config
	CheckinService service.ICheckinService
}

func (h *Checkin) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	checkin := r.Group("/v1/checkin")
	checkin.GET("/themes", context.Wrap(h.Themes))
	checkin.POST("", authorize, context.Wrap(h.CheckIn))
	checkin.POST("/share", authorize, context.Wrap(h.Share))
	checkin.GET("/records", authorize, context.Wrap(h.Records))
}

func (h *Checkin) Themes(c *gin.Context) error {
	themes, err := h.CheckinService.ListThemes(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, themes)
	return nil
}

func (h *Checkin) CheckIn(c *gin.Context) error {
	memberID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.CheckInReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return service.ErrBadRequest
	}
	resp, err := h.CheckinService.CheckIn(c.Request.Context(), memberID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Checkin) Share(c *gin.Context) error {
	memberID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.ShareCallbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return service.ErrBadRequest
	}
	resp, err := h.CheckinService.ShareCallback(c.Request.Context(), memberID, req.RecordID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Checkin) Records(c *gin.Context) error {
	memberID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	cursor, _ := strconv.ParseInt(c.Query("cursor"), 10, 64)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	resp, err := h.CheckinService.ListRecords(c.Request.Context(), memberID, cursor, limit)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
