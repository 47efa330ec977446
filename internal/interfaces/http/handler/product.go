package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	appcatalog "github.com/hisabpro/backend/internal/application/catalog"
	"github.com/hisabpro/backend/internal/interfaces/http/dto"
)

// ProductHandler handles inventory endpoints. The whole group requires
// authentication and the paid entitlement.
type ProductHandler struct {
	BaseHandler
	productService *appcatalog.ProductService
	authMW         gin.HandlerFunc
	entitlementMW  gin.HandlerFunc
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService *appcatalog.ProductService, authMW, entitlementMW gin.HandlerFunc) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		authMW:         authMW,
		entitlementMW:  entitlementMW,
	}
}

// RegisterRoutes registers inventory routes
func (h *ProductHandler) RegisterRoutes(rg *gin.RouterGroup) {
	inventory := rg.Group("/inventory", h.authMW, h.entitlementMW)
	{
		inventory.POST("", h.Create)
		inventory.GET("", h.List)
		inventory.GET("/:id", h.Get)
		inventory.PUT("/:id", h.Update)
		inventory.DELETE("/:id", h.Delete)
	}
}

// Create adds a product to the catalog
func (h *ProductHandler) Create(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appcatalog.CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.productService.Create(c.Request.Context(), accountID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, product)
}

// List returns the account's catalog
func (h *ProductHandler) List(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	products, err := h.productService.List(c.Request.Context(), accountID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, products)
}

// Get returns a single product
func (h *ProductHandler) Get(c *gin.Context) {
	accountID, productID, ok := h.bindAccountAndID(c)
	if !ok {
		return
	}

	product, err := h.productService.Get(c.Request.Context(), accountID, productID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// Update overwrites a product's fields
func (h *ProductHandler) Update(c *gin.Context) {
	accountID, productID, ok := h.bindAccountAndID(c)
	if !ok {
		return
	}

	var req appcatalog.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.productService.Update(c.Request.Context(), accountID, productID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, product)
}

// Delete removes a product from the catalog
func (h *ProductHandler) Delete(c *gin.Context) {
	accountID, productID, ok := h.bindAccountAndID(c)
	if !ok {
		return
	}

	if err := h.productService.Delete(c.Request.Context(), accountID, productID); err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, gin.H{"message": "Product deleted"})
}

func (h *ProductHandler) bindAccountAndID(c *gin.Context) (uuid.UUID, uuid.UUID, bool) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return uuid.Nil, uuid.Nil, false
	}

	var idReq dto.IDRequest
	if err := c.ShouldBindUri(&idReq); err != nil {
		h.BadRequest(c, "Invalid product ID")
		return uuid.Nil, uuid.Nil, false
	}
	productID, err := uuid.Parse(idReq.ID)
	if err != nil {
		h.BadRequest(c, "Invalid product ID")
		return uuid.Nil, uuid.Nil, false
	}

	return accountID, productID, true
}
