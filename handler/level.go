package handler

import (
	"github.com/gin-gonic/gin"

	"rocketbird/config"
	"rocketbird/middleware"
	"rocketbird/pkg/context"
	"rocketbird/pkg/response"
	"rocketbird/service"
)

type Level struct {
	Config       *config.Config
	LevelService service.ILevelService
}

func (l *Level) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(l.Config.Jwt.Secret))
	levels := r.Group("/v1/levels")
	levels.GET("", context.Wrap(l.List))
	levels.GET("/progress", authorize, context.Wrap(l.Progress))
}

// List 等级表是公开信息，不要求登录
func (l *Level) List(c *gin.Context) error {
	levels, err := l.LevelService.ListActive(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, levels)
	return nil
}

func (l *Level) Progress(c *gin.Context) error {
	memberID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	resp, err := l.LevelService.Progress(c.Request.Context(), memberID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}
