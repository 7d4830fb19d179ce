package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "impactcat/internal/errors"
	"impactcat/internal/models"
	"impactcat/internal/pagination"
	"impactcat/internal/services"
)

// ProductHandler handles impact product requests. Every operation that
// reaches a successful outcome is followed by a best-effort audit write.
type ProductHandler struct {
	productService services.ProductServicer
	auditService   services.AuditServicer
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(productService services.ProductServicer, auditService services.AuditServicer) *ProductHandler {
	return &ProductHandler{productService: productService, auditService: auditService}
}

// ListProductsRequest represents the query parameters for listing impact products.
type ListProductsRequest struct {
	pagination.PageRequest
	FilterBy string `form:"filter_by"`
	SortBy   string `form:"sort_by"`
	Group    string `form:"group" binding:"omitempty,product_group"`
	Status   string `form:"status" binding:"omitempty,product_status"`
}

// CreateProductRequest represents the request payload for creating an impact product.
type CreateProductRequest struct {
	Name        string `json:"name" binding:"required,min=1,max=100"`
	Category    string `json:"category" binding:"required,min=1,max=100"`
	Group       string `json:"group" binding:"required,product_group"`
	Description string `json:"description" binding:"max=500"`
	Status      string `json:"status" binding:"omitempty,product_status"`
}

// UpdateProductRequest represents the request payload for a partial update.
// Absent fields are left unchanged.
type UpdateProductRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=100"`
	Description *string `json:"description" binding:"omitempty,max=500"`
	Category    *string `json:"category" binding:"omitempty,min=1,max=100"`
	Group       *string `json:"group" binding:"omitempty,product_group"`
	Status      *string `json:"status" binding:"omitempty,product_status"`
}

// ProductResponse represents an impact product in the response.
type ProductResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	Status      models.ProductStatus `json:"status"`
	Group       models.ProductGroup  `json:"group"`
	IsDeleted   bool                 `json:"is_deleted"`
}

// ListProducts handles the paginated, filtered listing of impact products.
// @Summary     List impact products
// @Description Get a filtered, sorted, paginated list of impact products
// @Tags        impact-products
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       page query int false "Page number (default 1)"
// @Param       per_page query int false "Items per page (default 10, max 100)"
// @Param       filter_by query string false "Free-text filter over product or category name"
// @Param       sort_by query string false "Sort field: created_at, name, group, status"
// @Param       group query string false "Filter by group (risk/investment/hybrid)"
// @Param       status query string false "Filter by status (active/inactive/deprecated)"
// @Success     200 {object} map[string]interface{} "Paginated products"
// @Failure     400 {object} ErrorResponse "Invalid sort field or filter"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /impact-products [get]
func (h *ProductHandler) ListProducts(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req ListProductsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	result, err := h.productService.GetProducts(services.ProductQuery{
		Page:     req.PageRequest,
		FilterBy: req.FilterBy,
		SortBy:   req.SortBy,
		Group:    req.Group,
		Status:   req.Status,
	})
	if err != nil {
		respondWithError(c, err)
		return
	}

	// One ACCESS entry per list request, not one per item.
	h.auditService.Record(userID, models.AuditActionAccess, models.ResourceImpactProductList, "",
		fmt.Sprintf("Accessed impact product list (page %d, %d total)", result.CurrentPage, result.Total),
		c.ClientIP(), c.Request.UserAgent())

	c.JSON(http.StatusOK, gin.H{
		"products":     result.Items,
		"total":        result.Total,
		"pages":        result.Pages,
		"current_page": result.CurrentPage,
		"per_page":     result.PerPage,
	})
}

// CreateProduct handles the creation of a new impact product.
// @Summary     Create an impact product
// @Description Create a new impact product in an existing category
// @Tags        impact-products
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       request body CreateProductRequest true "Product details"
// @Success     201 {object} ProductResponse "Product created"
// @Failure     400 {object} ErrorResponse "Invalid input or unknown category"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Insufficient role"
// @Failure     409 {object} ErrorResponse "Duplicate product"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /impact-products [post]
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	product, err := h.productService.CreateProduct(
		req.Name,
		req.Category,
		models.ProductGroup(req.Group),
		req.Description,
		models.ProductStatus(req.Status),
	)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(userID, models.AuditActionCreate, models.ResourceImpactProduct, product.ID,
		fmt.Sprintf("Created impact product '%s'", product.Name),
		c.ClientIP(), c.Request.UserAgent())

	c.JSON(http.StatusCreated, gin.H{"product": product})
}

// GetProductByID handles the retrieval of a single impact product.
// @Summary     Get impact product by ID
// @Description Get a single impact product with its category
// @Tags        impact-products
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Product ID"
// @Success     200 {object} ProductResponse "Product details"
// @Failure     400 {object} ErrorResponse "Invalid product ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     404 {object} ErrorResponse "Product not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /impact-products/{id} [get]
func (h *ProductHandler) GetProductByID(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	productID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	product, err := h.productService.GetProductByID(productID)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(userID, models.AuditActionAccess, models.ResourceImpactProduct, product.ID,
		fmt.Sprintf("Accessed impact product '%s'", product.Name),
		c.ClientIP(), c.Request.UserAgent())

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// UpdateProduct handles a partial update of an impact product.
// @Summary     Update impact product
// @Description Partially update an existing impact product; only supplied fields change
// @Tags        impact-products
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Product ID"
// @Param       request body UpdateProductRequest true "Fields to update"
// @Success     200 {object} ProductResponse "Updated product"
// @Failure     400 {object} ErrorResponse "Invalid input or unknown category"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Insufficient role"
// @Failure     404 {object} ErrorResponse "Product not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /impact-products/{id} [put]
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	productID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, apperrors.WithMessage(apperrors.ErrInvalidInput, err.Error()))
		return
	}

	update := services.ProductUpdate{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
	}
	if req.Group != nil {
		group := models.ProductGroup(*req.Group)
		update.Group = &group
	}
	if req.Status != nil {
		status := models.ProductStatus(*req.Status)
		update.Status = &status
	}

	product, err := h.productService.UpdateProduct(productID, update)
	if err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(userID, models.AuditActionUpdate, models.ResourceImpactProduct, product.ID,
		fmt.Sprintf("Updated impact product '%s'", product.Name),
		c.ClientIP(), c.Request.UserAgent())

	c.JSON(http.StatusOK, gin.H{"product": product})
}

// DeleteProduct handles the soft deletion of an impact product.
// @Summary     Delete impact product
// @Description Soft-delete an impact product; the record is hidden, never removed
// @Tags        impact-products
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Product ID"
// @Success     200 {object} MessageResponse "Product deleted"
// @Failure     400 {object} ErrorResponse "Invalid product ID"
// @Failure     401 {object} ErrorResponse "Unauthorized"
// @Failure     403 {object} ErrorResponse "Insufficient role"
// @Failure     404 {object} ErrorResponse "Product not found"
// @Failure     500 {object} ErrorResponse "Server error"
// @Router      /impact-products/{id} [delete]
func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		respondWithError(c, err)
		return
	}

	productID, err := parsePathID(c, "id")
	if err != nil {
		respondWithError(c, err)
		return
	}

	if err := h.productService.DeleteProduct(productID); err != nil {
		respondWithError(c, err)
		return
	}

	h.auditService.Record(userID, models.AuditActionDelete, models.ResourceImpactProduct, productID,
		"Soft-deleted impact product", c.ClientIP(), c.Request.UserAgent())

	c.JSON(http.StatusOK, gin.H{"message": "Impact product deleted successfully"})
}
