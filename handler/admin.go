package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"rocketbird/config"
	"rocketbird/middleware"
	"rocketbird/models"
	"rocketbird/pkg/context"
	"rocketbird/pkg/jwt"
	"rocketbird/pkg/response"
	"rocketbird/service"
	"rocketbird/types"
)

// Admin 后台接口。普通运营可以管活动和商品，
// 账号管理只开放给超管。
type Admin struct {
	Config          *config.Config
	AdminService    service.IAdminService
	MemberService   service.IMemberService
	LevelService    service.ILevelService
	CheckinService  service.ICheckinService
	ProductService  service.IProductService
	ExchangeService service.IExchangeService
	ReferralService service.IReferralService
	FeedbackService service.IFeedbackService
}

func (h *Admin) RegisterRouter(r gin.IRouter) {
	secret := []byte(h.Config.Jwt.Secret)
	admin := r.Group("/admin/v1")
	admin.POST("/login", context.Wrap(h.Login))

	authorized := admin.Group("")
	authorized.Use(middleware.AdminAuth(secret))
	{
		authorized.GET("/members", context.Wrap(h.Members))
		authorized.PUT("/members/status", context.Wrap(h.SetMemberStatus))
		authorized.POST("/points/adjust", context.Wrap(h.AdjustPoints))

		authorized.GET("/levels", context.Wrap(h.Levels))
		authorized.POST("/levels", context.Wrap(h.SaveLevel))
		authorized.DELETE("/levels/:id", context.Wrap(h.DeleteLevel))

		authorized.GET("/checkin/themes", context.Wrap(h.Themes))
		authorized.POST("/checkin/themes", context.Wrap(h.SaveTheme))
		authorized.GET("/checkin/pending", context.Wrap(h.PendingCheckins))
		authorized.POST("/checkin/review", context.Wrap(h.ReviewCheckin))

		authorized.GET("/products", context.Wrap(h.Products))
		authorized.POST("/products", context.Wrap(h.SaveProduct))
		authorized.PUT("/products/shelf", context.Wrap(h.SetShelf))
		authorized.PUT("/products/stock", context.Wrap(h.AddStock))
		authorized.DELETE("/products/:id", context.Wrap(h.DeleteProduct))

		authorized.GET("/orders", context.Wrap(h.Orders))
		authorized.POST("/orders/verify", context.Wrap(h.VerifyOrder))

		authorized.GET("/referrals", context.Wrap(h.Referrals))

		authorized.GET("/feedbacks", context.Wrap(h.Feedbacks))
		authorized.POST("/feedbacks/reply", context.Wrap(h.ReplyFeedback))
		authorized.POST("/feedbacks/close", context.Wrap(h.CloseFeedback))
	}

	super := admin.Group("/admins")
	super.Use(middleware.AdminAuth(secret, models.RoleSuper))
	{
		super.GET("", context.Wrap(h.Admins))
		super.POST("", context.Wrap(h.CreateAdmin))
		super.PUT("/status", context.Wrap(h.SetAdminStatus))
		super.PUT("/password", context.Wrap(h.ResetPassword))
	}
}

func (h *Admin) Login(c *gin.Context) error {
	var req types.AdminLoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return service.ErrBadRequest
	}
	admin, err := h.AdminService.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		return err
	}
	expire := time.Duration(h.Config.Jwt.Expire) * time.Second
	token, err := jwt.GenerateToken([]byte(h.Config.Jwt.Secret), admin.ID, "", admin.Role, jwt.TypeAdmin, expire)
	if err != nil {
		return response.NewError(500, err.Error())
	}
	response.Success(c, types.AdminLoginResp{
		Token:    token,
		AdminID:  admin.ID,
		Username: admin.Username,
		Role:     admin.Role,
	})
	return nil
}

func (h *Admin) Members(c *gin.Context) error {
	var page types.PageReq
	if err := c.ShouldBindQuery(&page); err != nil {
		return service.ErrBadRequest
	}
	resp, err := h.MemberService.ListMembers(c.Request.Context(), c.Query("keyword"), page.Page, page.PageSize)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Admin) SetMemberStatus(c *gin.Context) error {
	var req struct {
		MemberID int64 `json:"member_id" binding:"required"`
		Status   int8  `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return service.ErrBadRequest
	}
	if err := h.MemberService.SetStatus(c.Request.Context(), req.MemberID, req.Status); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Admin) AdjustPoints(c *gin.Context) error {
	adminID, err := context.GetAdminID(c)
	if err != nil {
		return err
	}
	var req types.AdjustPointsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return service.ErrBadRequest
	}
	if err := h.AdminService.AdjustPoints(c.Request.Context(), adminID, &req); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Admin) Levels(c *gin.Context) error {
	levels, err := h.LevelService.ListAll(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, levels)
	return nil
}

func (h *Admin) SaveLevel(c *gin.Context) error {
	var req types.SaveLevelReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return service.ErrBadRequest
	}
	lvl, err := h.LevelService.SaveLevel(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, lvl)
	return nil
}

func (h *Admin) DeleteLevel(c *gin.Context) error {
	levelID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return service.ErrBadRequest
	}
	if err := h.LevelService.DeleteLevel(c.Request.Context(), levelID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Admin) Themes(c *gin.Context) error {
	themes, err := h.CheckinService.ListAllThemes(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, themes)
	return nil
}

func (h *Admin) SaveTheme(c *gin.Context) error {
	var req types.SaveThemeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return service.ErrBadRequest
	}
	theme, err := h.CheckinService.SaveTheme(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, theme)
	return nil
}

func (h *Admin) PendingCheckins(c *gin.Context) error {
	var page types.PageReq
	if err := c.ShouldBindQuery(&page); err != nil {
		return service.ErrBadRequest
	}
	records, total, err := h.CheckinService.ListPendingRecords(c.Request.Context(), page.Page, page.PageSize)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"records": records, "total": total})
	return nil
}

func (h *Admin) ReviewCheckin(c *gin.Context) error {
	var req types.ReviewCheckinReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return service.ErrBadRequest
	}
	if err := h.CheckinService.Review(c.Request.Context(), &req); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Admin) Products(c *gin.Context) error {
	var page types.PageReq
	if err := c.ShouldBindQuery(&page); err != nil {
		return service.ErrBadRequest
	}
	products, total, err := h.ProductService.ListAll(c.Request.Context(), page.Page, page.PageSize)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"products": products, "total": total})
	return nil
}

func (h *Admin) SaveProduct(c *gin.Context) error {
	var req types.SaveProductReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return service.ErrBadRequest
	}
	product, err := h.ProductService.SaveProduct(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, product)
	return nil
}

func (h *Admin) SetShelf(c *gin.Context) error {
	var req struct {
		ProductID int64 `json:"product_id" binding:"required"`
		On        bool  `json:"on"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return service.ErrBadRequest
	}
	if err := h.ProductService.SetShelf(c.Request.Context(), req.ProductID, req.On); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Admin) AddStock(c *gin.Context) error {
	var req struct {
		ProductID int64 `json:"product_id" binding:"required"`
		Quantity  int64 `json:"quantity" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return service.ErrBadRequest
	}
	if err := h.ProductService.AddStock(c.Request.Context(), req.ProductID, req.Quantity); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Admin) DeleteProduct(c *gin.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return service.ErrBadRequest
	}
	if err := h.ProductService.DeleteProduct(c.Request.Context(), productID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Admin) Orders(c *gin.Context) error {
	var page types.PageReq
	if err := c.ShouldBindQuery(&page); err != nil {
		return service.ErrBadRequest
	}
	resp, err := h.ExchangeService.ListAllOrders(c.Request.Context(), c.Query("status"), page.Page, page.PageSize)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// VerifyOrder 线下核销入口，扫码拿到 order_sn 后调用
func (h *Admin) VerifyOrder(c *gin.Context) error {
	var req struct {
		OrderSn string `json:"order_sn" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return service.ErrBadRequest
	}
	resp, err := h.ExchangeService.Verify(c.Request.Context(), req.OrderSn)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

// Referrals 按邀请人查看邀请记录
func (h *Admin) Referrals(c *gin.Context) error {
	inviterID, err := strconv.ParseInt(c.Query("inviter_id"), 10, 64)
	if err != nil || inviterID <= 0 {
		return service.ErrBadRequest
	}
	cursor, _ := strconv.ParseInt(c.Query("cursor"), 10, 64)
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	resp, err := h.ReferralService.ListRecords(c.Request.Context(), inviterID, cursor, limit)
	if err != nil {
		return err
	}
	response.Success(c, resp)
	return nil
}

func (h *Admin) Feedbacks(c *gin.Context) error {
	var page types.PageReq
	if err := c.ShouldBindQuery(&page); err != nil {
		return service.ErrBadRequest
	}
	status := -1
	if v := c.Query("status"); v != "" {
		status, _ = strconv.Atoi(v)
	}
	records, total, err := h.FeedbackService.ListAll(c.Request.Context(), status, page.Page, page.PageSize)
	if err != nil {
		return err
	}
	response.Success(c, gin.H{"records": records, "total": total})
	return nil
}

func (h *Admin) ReplyFeedback(c *gin.Context) error {
	var req types.ReplyFeedbackReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return service.ErrBadRequest
	}
	if err := h.FeedbackService.Reply(c.Request.Context(), &req); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Admin) CloseFeedback(c *gin.Context) error {
	var req struct {
		FeedbackID int64 `json:"feedback_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return service.ErrBadRequest
	}
	if err := h.FeedbackService.Close(c.Request.Context(), req.FeedbackID); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Admin) Admins(c *gin.Context) error {
	admins, err := h.AdminService.ListAdmins(c.Request.Context())
	if err != nil {
		return err
	}
	response.Success(c, admins)
	return nil
}

func (h *Admin) CreateAdmin(c *gin.Context) error {
	var req types.CreateAdminReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return service.ErrBadRequest
	}
	admin, err := h.AdminService.CreateAdmin(c.Request.Context(), &req)
	if err != nil {
		return err
	}
	response.Success(c, admin)
	return nil
}

func (h *Admin) SetAdminStatus(c *gin.Context) error {
	var req struct {
		AdminID int64 `json:"admin_id" binding:"required"`
		Status  int8  `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return service.ErrBadRequest
	}
	if err := h.AdminService.SetStatus(c.Request.Context(), req.AdminID, req.Status); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}

func (h *Admin) ResetPassword(c *gin.Context) error {
	var req struct {
		AdminID  int64  `json:"admin_id" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		return service.ErrBadRequest
	}
	if err := h.AdminService.ResetPassword(c.Request.Context(), req.AdminID, req.Password); err != nil {
		return err
	}
	response.Success(c, nil)
	return nil
}
