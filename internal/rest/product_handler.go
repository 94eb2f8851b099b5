package rest

import (
	"errors"
	"net/http"
	"strconv"

	"minimart-be/internal/product"

	"github.com/gin-gonic/gin"
)

type ProductHandler struct {
	svc product.Service
}

func NewProductHandler(svc product.Service) *ProductHandler {
	return &ProductHandler{svc: svc}
}

// List handles GET /api/products, the public catalog. Only active products
// are visible here.
func (h *ProductHandler) List(c *gin.Context) {
	opts := product.ListOptions{
		OnlyActive: true,
		Sort:       product.SortOption(c.Query("sort")),
	}

	if search := c.Query("search"); search != "" {
		opts.Search = &search
	}
	if category := c.Query("category"); category != "" {
		opts.Category = &category
	}

	var ok bool
	if opts.MinPrice, ok = parsePriceQuery(c, "minPrice"); !ok {
		return
	}
	if opts.MaxPrice, ok = parsePriceQuery(c, "maxPrice"); !ok {
		return
	}

	products, err := h.svc.GetList(c.Request.Context(), opts)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error fetching products")
		return
	}

	respondList(c, http.StatusOK, len(products), toProductResponses(products))
}

// ListAll handles GET /api/admin/products, including inactive products.
func (h *ProductHandler) ListAll(c *gin.Context) {
	products, err := h.svc.GetList(c.Request.Context(), product.ListOptions{})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error fetching products")
		return
	}

	respondList(c, http.StatusOK, len(products), toProductResponses(products))
}

// Get handles GET /api/products/:id.
func (h *ProductHandler) Get(c *gin.Context) {
	p, err := h.svc.GetByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, product.ErrProductNotFound) {
		respondError(c, http.StatusNotFound, "Product not found")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error fetching product")
		return
	}

	respondData(c, http.StatusOK, toProductResponse(p))
}

// Categories handles GET /api/products/categories/all.
func (h *ProductHandler) Categories(c *gin.Context) {
	categories, err := h.svc.GetCategories(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error fetching categories")
		return
	}

	if categories == nil {
		categories = []string{}
	}

	respondData(c, http.StatusOK, categories)
}

type createProductRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	StockQty    int      `json:"stockQty"`
	IsActive    *bool    `json:"isActive"`
}

// Create handles POST /api/admin/products.
func (h *ProductHandler) Create(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := h.svc.Create(c.Request.Context(), product.NewProduct{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Images:      req.Images,
		StockQty:    req.StockQty,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondProductError(c, err, "Error creating product")
		return
	}

	respondMessage(c, http.StatusCreated, "Product created successfully", toProductResponse(p))
}

type updateProductRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *int64   `json:"price"`
	Category    *string  `json:"category"`
	Images      []string `json:"images"`
	StockQty    *int     `json:"stockQty"`
	IsActive    *bool    `json:"isActive"`
}

// Update handles PUT /api/admin/products/:id.
func (h *ProductHandler) Update(c *gin.Context) {
	var req updateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	p, err := h.svc.Update(c.Request.Context(), c.Param("id"), product.UpdateProduct{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Images:      req.Images,
		StockQty:    req.StockQty,
		IsActive:    req.IsActive,
	})
	if err != nil {
		respondProductError(c, err, "Error updating product")
		return
	}

	respondMessage(c, http.StatusOK, "Product updated successfully", toProductResponse(p))
}

// Delete handles DELETE /api/admin/products/:id. The product is
// deactivated, not removed, so historical order snapshots stay consistent.
func (h *ProductHandler) Delete(c *gin.Context) {
	err := h.svc.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondProductError(c, err, "Error deleting product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product deleted successfully",
	})
}

func parsePriceQuery(c *gin.Context, name string) (*int64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		respondError(c, http.StatusBadRequest, "Invalid "+name)
		return nil, false
	}

	return &value, true
}

func respondProductError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, product.ErrProductNotFound):
		respondError(c, http.StatusNotFound, "Product not found")
	case errors.Is(err, product.ErrNameRequired),
		errors.Is(err, product.ErrDescriptionRequired),
		errors.Is(err, product.ErrCategoryRequired),
		errors.Is(err, product.ErrImageRequired),
		errors.Is(err, product.ErrNegativePrice),
		errors.Is(err, product.ErrNegativeStock),
		errors.Is(err, product.ErrNoFieldsToUpdate):
		respondError(c, http.StatusBadRequest, err.Error())
	default:
		respondError(c, http.StatusInternalServerError, fallback)
	}
}
