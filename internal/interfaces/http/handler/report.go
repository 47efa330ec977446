package handler

import (
	"github.com/gin-gonic/gin"
	appreport "github.com/hisabpro/backend/internal/application/report"
)

// ReportHandler handles profit and loss reporting endpoints. The whole
// group requires authentication and the paid entitlement.
type ReportHandler struct {
	BaseHandler
	reportService *appreport.ReportService
	authMW        gin.HandlerFunc
	entitlementMW gin.HandlerFunc
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *appreport.ReportService, authMW, entitlementMW gin.HandlerFunc) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
		authMW:        authMW,
		entitlementMW: entitlementMW,
	}
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports", h.authMW, h.entitlementMW)
	{
		reports.GET("/pnl", h.ProfitLoss)
		reports.GET("/daily", h.DailyProfitLoss)
	}
}

// ProfitLoss returns the account's aggregate revenue, cost, and profit
func (h *ReportHandler) ProfitLoss(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	result, err := h.reportService.ProfitLoss(c.Request.Context(), accountID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}

// DailyProfitLoss returns per-day profit and loss slices
func (h *ReportHandler) DailyProfitLoss(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	days, err := h.reportService.DailyProfitLoss(c.Request.Context(), accountID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, days)
}
