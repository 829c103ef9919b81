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

type Feedback struct {
	Config          *config.Config
	FeedbackService service.IFeedbackService
}

func (h *Feedback) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	feedback := r.Group("/v1/feedback")
	feedback.Use(authorize)
	feedback.POST("", context.Wrap(h.Create))
	feedback.GET("/records", context.Wrap(h.Records))
}

func (h *Feedback) Create(c *gin.Context) error {
	memberID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.CreateFeedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return service.ErrBadRequest
	}
	feedback, err := h.FeedbackService.Create(c.Request.Context(), memberID, &req)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"id": feedback.ID})
	return nil
}

func (h *Feedback) Records(c *gin.Context) error {
	memberID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	cursor, _ := strconv.ParseInt(c.Query("cursor"), 10, 64)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	resp, err := h.FeedbackService.ListMine(c.Request.Context(), memberID, cursor, limit)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
