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

type Mall struct {
	Config          *config.Config
	ProductService  service.IProductService
	ExchangeService service.IExchangeService
}

func (h *Mall) RegisterRouter(r gin.IRouter) {
	authorize := middleware.Auth([]byte(h.Config.Jwt.Secret))
	mall := r.Group("/v1/mall")
	mall.GET("/products", context.Wrap(h.Products))
	mall.GET("/products/:id", context.Wrap(h.ProductDetail))
	mall.POST("/exchange", authorize, context.Wrap(h.Exchange))
	mall.GET("/orders", authorize, context.Wrap(h.Orders))
	mall.GET("/orders/:order_sn", authorize, context.Wrap(h.OrderDetail))
	mall.POST("/orders/:order_sn/cancel", authorize, context.Wrap(h.CancelOrder))
}

func (h *Mall) Products(c *gin.Context) error {
	cursor, _ := strconv.ParseInt(c.Query("cursor"), 10, 64)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	resp, err := h.ProductService.List(c.Request.Context(), cursor, limit)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Mall) ProductDetail(c *gin.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return service.ErrBadRequest
	}
	resp, err := h.ProductService.Detail(c.Request.Context(), productID)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Mall) Exchange(c *gin.Context) error {
	memberID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	var req types.ExchangeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return service.ErrBadRequest
	}
	resp, err := h.ExchangeService.Exchange(c.Request.Context(), memberID, &req)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Mall) Orders(c *gin.Context) error {
	memberID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	cursor, _ := strconv.ParseInt(c.Query("cursor"), 10, 64)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	resp, err := h.ExchangeService.ListOrders(c.Request.Context(), memberID, cursor, limit)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Mall) OrderDetail(c *gin.Context) error {
	memberID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	resp, err := h.ExchangeService.GetOrder(c.Request.Context(), memberID, c.Param("order_sn"))
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Mall) CancelOrder(c *gin.Context) error {
	memberID, err := context.GetUserID(c)
	if err != nil {
		return err
	}
	if err := h.ExchangeService.Cancel(c.Request.Context(), memberID, c.Param("order_sn")); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
