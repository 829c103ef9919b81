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

type Point struct {
	Config       *config.Config
	PointService service.IPointService
}

func (p *Point) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(p.Config.Jwt.Secret))
	points := r.Group("/v1/points")
	points.Use(authorize)
	points.GET("/balance", context.Wrap(p.Balance))
	points.GET("/records", context.Wrap(p.Records))
}

func (p *Point) Balance(c *gin.Context) error {
	memberID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	resp, err := p.PointService.Account(c.Request.Context(), memberID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (p *Point) Records(c *gin.Context) error {
	memberID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.ListPointRecordsReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return service.ErrBadRequest
	}
	resp, err := p.PointService.ListRecords(c.Request.Context(), memberID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
