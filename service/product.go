package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"rocketbird/dao"
	"rocketbird/models"
	"rocketbird/types"
)

type IProductService interface {
	List(ctx context.Context, cursor int64, limit int) (*types.ListProducts, error)
	Detail(ctx context.Context, productID int64) (*types.ProductItem, error)
	ListAll(ctx context.Context, page, pageSize int) ([]*models.Product, int64, error)
	SaveProduct(ctx context.Context, req *types.SaveProductReq) (*models.Product, error)
	SetShelf(ctx context.Context, productID int64, on bool) error
	AddStock(ctx context.Context, productID, quantity int64) error
	DeleteProduct(ctx context.Context, productID int64) error
}

type ProductService struct {
	ProductDAO *dao.Products
}

var _ IProductService = (*ProductService)(nil)

// List 商城列表，只展示上架商品，排序权重高的在前。
func (s *ProductService) List(ctx context.Context, cursor int64, limit int) (*types.ListProducts, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	products, err := s.ProductDAO.ListOnShelf(ctx, cursor, limit+1)
	if err != nil {
		return nil, err
	}
	resp := &types.ListProducts{Products: make([]types.ProductItem, 0, len(products))}
	if len(products) > limit {
		resp.HasMore = true
		products = products[:limit]
	}
	for _, p := range products {
		resp.Products = append(resp.Products, *toProductItem(p))
	}
	if len(products) > 0 {
		resp.NextCursor = products[len(products)-1].ID
	}
	return resp, nil
}

func (s *ProductService) Detail(ctx context.Context, productID int64) (*types.ProductItem, error) {
	product, err := s.ProductDAO.FindOnShelf(ctx, productID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		return nil, err
	}
	return toProductItem(product), nil
}

func (s *ProductService) ListAll(ctx context.Context, page, pageSize int) ([]*models.Product, int64, error) {
	return s.ProductDAO.ListAll(ctx, page, pageSize)
}

func (s *ProductService) SaveProduct(ctx context.Context, req *types.SaveProductReq) (*models.Product, error) {
	if req.PointsCost <= 0 || req.Stock < 0 {
		return nil, ErrBadRequest
	}
	product := &models.Product{
		ID:           req.ID,
		Name:         req.Name,
		CoverImage:   req.CoverImage,
		Description:  req.Description,
		ProductType:  req.ProductType,
		PointsCost:   req.PointsCost,
		Stock:        req.Stock,
		TotalStock:   req.Stock,
		LimitPerUser: req.LimitPerUser,
		ValidDays:    req.ValidDays,
		SortOrder:    req.SortOrder,
		Status:       models.ProductStatusOff, // 新建默认下架，上架单独操作
	}
	if req.ID > 0 {
		if _, err := s.ProductDAO.FindById(ctx, req.ID); err != nil {
			return nil, ErrProductNotFound
		}
		// 编辑不触碰库存，库存变更走 AddStock
		err := s.ProductDAO.UpdateById(ctx, req.ID, map[string]interface{}{
			"name":           req.Name,
			"cover_image":    req.CoverImage,
			"description":    req.Description,
			"product_type":   req.ProductType,
			"points_cost":    req.PointsCost,
			"limit_per_user": req.LimitPerUser,
			"valid_days":     req.ValidDays,
			"sort_order":     req.SortOrder,
		})
		if err != nil {
			return nil, err
		}
		return product, nil
	}
	if err := s.ProductDAO.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) SetShelf(ctx context.Context, productID int64, on bool) error {
	if _, err := s.ProductDAO.FindById(ctx, productID); err != nil {
		return ErrProductNotFound
	}
	status := models.ProductStatusOff
	if on {
		status = models.ProductStatusOn
	}
	return s.ProductDAO.UpdateById(ctx, productID, map[string]interface{}{"status": status})
}

// AddStock 补货，同时抬高 total_stock。
func (s *ProductService) AddStock(ctx context.Context, productID, quantity int64) error {
	if quantity <= 0 {
		return ErrBadRequest
	}
	if _, err := s.ProductDAO.FindById(ctx, productID); err != nil {
		return ErrProductNotFound
	}
	return s.ProductDAO.AddStock(ctx, productID, quantity)
}

func (s *ProductService) DeleteProduct(ctx context.Context, productID int64) error {
	if _, err := s.ProductDAO.FindById(ctx, productID); err != nil {
		return ErrProductNotFound
	}
	return s.ProductDAO.DeleteById(ctx, productID)
}

func toProductItem(p *models.Product) *types.ProductItem {
	return &types.ProductItem{
		ID:           p.ID,
		Name:         p.Name,
		CoverImage:   p.CoverImage,
		Description:  p.Description,
		ProductType:  p.ProductType,
		PointsCost:   p.PointsCost,
		Stock:        p.Stock,
		TotalStock:   p.TotalStock,
		SalesVolume:  p.SalesVolume,
		LimitPerUser: p.LimitPerUser,
		ValidDays:    p.ValidDays,
	}
}
