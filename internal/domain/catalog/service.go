// internal/domain/catalog/service.go
package catalog

import (
	"fmt"
	"strings"

	"github.com/your-org/storefront-backend/internal/config"
	"gorm.io/gorm"
)

// Service handles catalog business logic
type Service struct {
	db     *gorm.DB
	config *config.Config
}

// NewService creates a new catalog service
func NewService(db *gorm.DB, cfg *config.Config) *Service {
	return &Service{
		db:     db,
		config: cfg,
	}
}

// ProductListRequest represents product list query parameters
type ProductListRequest struct {
	Page       int    `form:"page,default=1"`
	Limit      int    `form:"limit,default=20"`
	CategoryID uint   `form:"category_id"`
	Category   string `form:"category"`
	Search     string `form:"search"`
	SortBy     string `form:"sort_by,default=created_at"`
	SortOrder  string `form:"sort_order,default=desc"`
	MinPrice   int64  `form:"min_price"`
	MaxPrice   int64  `form:"max_price"`
	InStock    *bool  `form:"in_stock"`
	IsFeatured *bool  `form:"is_featured"`
}

// ProductCreateRequest represents product creation data
type ProductCreateRequest struct {
	Name          string   `json:"name" binding:"required"`
	Description   string   `json:"description"`
	Label         string   `json:"label"`
	Price         int64    `json:"price" binding:"required,min=1"`
	DiscountPrice *int64   `json:"discount_price"`
	CategoryID    uint     `json:"category_id" binding:"required"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	Images        []string `json:"images"`
	Thumbnail     string   `json:"thumbnail"`
	InStock       bool     `json:"in_stock"`
	IsActive      bool     `json:"is_active"`
	IsFeatured    bool     `json:"is_featured"`
}

// ProductUpdateRequest represents product update data
type ProductUpdateRequest struct {
	Name          *string   `json:"name"`
	Description   *string   `json:"description"`
	Label         *string   `json:"label"`
	Price         *int64    `json:"price"`
	DiscountPrice *int64    `json:"discount_price"`
	CategoryID    *uint     `json:"category_id"`
	Sizes         *[]string `json:"sizes"`
	Colors        *[]string `json:"colors"`
	Images        *[]string `json:"images"`
	Thumbnail     *string   `json:"thumbnail"`
	InStock       *bool     `json:"in_stock"`
	IsActive      *bool     `json:"is_active"`
	IsFeatured    *bool     `json:"is_featured"`
}

// Pagination represents pagination metadata
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
	HasNext    bool  `json:"has_next"`
	HasPrev    bool  `json:"has_prev"`
}

// ProductListResponse represents a paginated product listing
type ProductListResponse struct {
	Products   []Product  `json:"products"`
	Pagination Pagination `json:"pagination"`
}

// CategorySummary represents a category with its product count
type CategorySummary struct {
	Category
	ProductCount int64 `json:"product_count"`
}

// GetProducts retrieves products with filtering and pagination
func (s *Service) GetProducts(req *ProductListRequest) (*ProductListResponse, error) {
	var products []Product
	var total int64

	query := s.db.Model(&Product{}).
		Preload("Category").
		Where("is_active = ?", true)

	// Apply filters
	if req.CategoryID > 0 {
		query = query.Where("category_id = ?", req.CategoryID)
	}

	if req.Category != "" {
		query = query.Joins("JOIN categories ON categories.id = products.category_id").
			Where("categories.slug = ?", req.Category)
	}

	if req.Search != "" {
		search := "%" + strings.ToLower(req.Search) + "%"
		query = query.Where("LOWER(products.name) LIKE ? OR LOWER(products.description) LIKE ?", search, search)
	}

	if req.MinPrice > 0 {
		query = query.Where("COALESCE(discount_price, price) >= ?", req.MinPrice)
	}

	if req.MaxPrice > 0 {
		query = query.Where("COALESCE(discount_price, price) <= ?", req.MaxPrice)
	}

	if req.InStock != nil {
		query = query.Where("in_stock = ?", *req.InStock)
	}

	if req.IsFeatured != nil {
		query = query.Where("is_featured = ?", *req.IsFeatured)
	}

	// Count total records
	if err := query.Count(&total).Error; err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}

	// Apply sorting
	query = query.Order(s.buildOrderClause(req.SortBy, req.SortOrder))

	// Apply pagination
	if req.Limit <= 0 {
		req.Limit = 20
	}
	if req.Page <= 0 {
		req.Page = 1
	}
	offset := (req.Page - 1) * req.Limit
	if err := query.Offset(offset).Limit(req.Limit).Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to retrieve products: %w", err)
	}

	totalPages := int((total + int64(req.Limit) - 1) / int64(req.Limit))
	pagination := Pagination{
		Page:       req.Page,
		Limit:      req.Limit,
		Total:      total,
		TotalPages: totalPages,
		HasNext:    req.Page < totalPages,
		HasPrev:    req.Page > 1,
	}

	return &ProductListResponse{
		Products:   products,
		Pagination: pagination,
	}, nil
}

// GetProduct retrieves a single product by ID
func (s *Service) GetProduct(id uint) (*Product, error) {
	var product Product
	result := s.db.
		Preload("Category").
		Where("id = ?", id).
		First(&product)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product not found")
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", result.Error)
	}

	return &product, nil
}

// GetProductBySlug retrieves a single active product by slug
func (s *Service) GetProductBySlug(slug string) (*Product, error) {
	var product Product
	result := s.db.
		Preload("Category").
		Where("slug = ? AND is_active = ?", slug, true).
		First(&product)

	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product not found")
		}
		return nil, fmt.Errorf("failed to retrieve product: %w", result.Error)
	}

	return &product, nil
}

// GetCategories retrieves active categories with product counts
func (s *Service) GetCategories() ([]CategorySummary, error) {
	var categories []Category
	err := s.db.Where("is_active = ?", true).
		Order("sort_order ASC, name ASC").
		Find(&categories).Error
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve categories: %w", err)
	}

	summaries := make([]CategorySummary, len(categories))
	for i, cat := range categories {
		var count int64
		err := s.db.Model(&Product{}).
			Where("category_id = ? AND is_active = ?", cat.ID, true).
			Count(&count).Error
		if err != nil {
			return nil, fmt.Errorf("failed to count products for category %s: %w", cat.Slug, err)
		}
		summaries[i] = CategorySummary{Category: cat, ProductCount: count}
	}

	return summaries, nil
}

// CreateProduct creates a new product
func (s *Service) CreateProduct(req *ProductCreateRequest) (*Product, error) {
	// Validate category exists
	var category Category
	if err := s.db.Where("id = ?", req.CategoryID).First(&category).Error; err != nil {
		return nil, fmt.Errorf("category not found")
	}

	if req.DiscountPrice != nil && *req.DiscountPrice >= req.Price {
		return nil, fmt.Errorf("discount price must be lower than the original price")
	}

	product := Product{
		Name:          req.Name,
		Slug:          s.generateSlug(req.Name),
		Description:   req.Description,
		Label:         req.Label,
		Price:         req.Price,
		DiscountPrice: req.DiscountPrice,
		CategoryID:    req.CategoryID,
		Sizes:         req.Sizes,
		Colors:        req.Colors,
		Images:        req.Images,
		Thumbnail:     req.Thumbnail,
		InStock:       req.InStock,
		IsActive:      req.IsActive,
		IsFeatured:    req.IsFeatured,
	}

	if err := s.db.Create(&product).Error; err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return s.GetProduct(product.ID)
}

// UpdateProduct updates an existing product
func (s *Service) UpdateProduct(id uint, req *ProductUpdateRequest) (*Product, error) {
	product, err := s.GetProduct(id)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}

	if req.Name != nil {
		updates["name"] = *req.Name
		updates["slug"] = s.generateSlug(*req.Name)
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Label != nil {
		updates["label"] = *req.Label
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.DiscountPrice != nil {
		updates["discount_price"] = *req.DiscountPrice
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
	}
	if req.Thumbnail != nil {
		updates["thumbnail"] = *req.Thumbnail
	}
	if req.InStock != nil {
		updates["in_stock"] = *req.InStock
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if req.IsFeatured != nil {
		updates["is_featured"] = *req.IsFeatured
	}

	if len(updates) > 0 {
		if err := s.db.Model(product).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update product: %w", err)
		}
	}

	// Serialized slice columns go through Save, not the updates map
	if req.Sizes != nil || req.Colors != nil || req.Images != nil {
		if req.Sizes != nil {
			product.Sizes = *req.Sizes
		}
		if req.Colors != nil {
			product.Colors = *req.Colors
		}
		if req.Images != nil {
			product.Images = *req.Images
		}
		if err := s.db.Save(product).Error; err != nil {
			return nil, fmt.Errorf("failed to update product options: %w", err)
		}
	}

	return s.GetProduct(id)
}

// DeleteProduct soft deletes a product
func (s *Service) DeleteProduct(id uint) error {
	result := s.db.Delete(&Product{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product not found")
	}
	return nil
}

// buildOrderClause builds a safe ORDER BY clause from request parameters
func (s *Service) buildOrderClause(sortBy, sortOrder string) string {
	allowedSortFields := map[string]string{
		"name":       "products.name",
		"price":      "COALESCE(discount_price, price)",
		"rating":     "rating",
		"created_at": "products.created_at",
	}

	field, ok := allowedSortFields[sortBy]
	if !ok {
		field = "products.created_at"
	}

	order := "DESC"
	if strings.EqualFold(sortOrder, "asc") {
		order = "ASC"
	}

	return fmt.Sprintf("%s %s", field, order)
}

// generateSlug generates a URL-friendly slug from a product name
func (s *Service) generateSlug(name string) string {
	slug := strings.ToLower(name)
	slug = strings.ReplaceAll(slug, " ", "-")

	var b strings.Builder
	for _, r := range slug {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') || r == '-' {
			b.WriteRune(r)
		}
	}

	slug = b.String()
	for strings.Contains(slug, "--") {
		slug = strings.ReplaceAll(slug, "--", "-")
	}

	return strings.Trim(slug, "-")
}
