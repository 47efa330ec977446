package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	appfinance "github.com/hisabpro/backend/internal/application/finance"
	"github.com/hisabpro/backend/internal/domain/shared"
)

// PaymentHandler handles checkout initiation and the gateway callback.
// Initiation requires authentication; the callback is posted by the
// gateway itself and authenticates with its signature instead.
type PaymentHandler struct {
	BaseHandler
	paymentService *appfinance.PaymentService
	authMW         gin.HandlerFunc
}

// NewPaymentHandler creates a new PaymentHandler
func NewPaymentHandler(paymentService *appfinance.PaymentService, authMW gin.HandlerFunc) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		authMW:         authMW,
	}
}

// RegisterRoutes registers payment routes
func (h *PaymentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	payment := rg.Group("/payment")
	{
		payment.POST("/initiate", h.authMW, h.Initiate)
		payment.POST("/callback", h.Callback)
	}
}

// Initiate starts a checkout for the one-time unlock payment
func (h *PaymentHandler) Initiate(c *gin.Context) {
	accountID, err := getAccountID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appfinance.InitiatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	resp, err := h.paymentService.Initiate(c.Request.Context(), accountID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, resp)
}

// Callback receives the gateway's form-encoded outcome notification.
// A delivery for an unknown or already terminal payment is still
// acknowledged so the gateway stops redelivering; only an unverifiable
// signature or a malformed payload is rejected.
func (h *PaymentHandler) Callback(c *gin.Context) {
	if err := c.Request.ParseForm(); err != nil {
		h.BadRequest(c, "Invalid form payload")
		return
	}

	params := make(map[string]string, len(c.Request.PostForm))
	for key, values := range c.Request.PostForm {
		if len(values) > 0 {
			params[key] = values[0]
		}
	}

	_, err := h.paymentService.HandleCallback(c.Request.Context(), params)
	if err != nil && !errors.Is(err, shared.ErrPaymentNotFound) {
		h.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, appfinance.CallbackAck{Status: "received"})
}
