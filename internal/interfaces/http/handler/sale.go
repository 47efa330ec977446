package handler

import (
	"github.com/gin-gonic/gin"
	appsales "github.com/hisabpro/backend/internal/application/sales"
)

// SaleHandler handles sale recording and history endpoints. The whole
// group requires authentication and the paid entitlement.
type SaleHandler struct {
	BaseHandler
	saleService   *appsales.SaleService
	authMW        gin.HandlerFunc
	entitlementMW gin.HandlerFunc
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(saleService *appsales.SaleService, authMW, entitlementMW gin.HandlerFunc) *SaleHandler {
	return &SaleHandler{
		saleService:   saleService,
		authMW:        authMW,
		entitlementMW: entitlementMW,
	}
}

// RegisterRoutes registers sale routes
func (h *SaleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sales := rg.Group("/sales", h.authMW, h.entitlementMW)
	{
		sales.POST("", h.Record)
		sales.GET("", h.List)
	}
}

// Record applies a sale against stock
func (h *SaleHandler) Record(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appsales.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	sale, err := h.saleService.Record(c.Request.Context(), accountID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, sale)
}

// List returns the account's sales, newest first
func (h *SaleHandler) List(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	sales, err := h.saleService.List(c.Request.Context(), accountID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, sales)
}
