package handler

import (
	"github.com/gin-gonic/gin"

	billingapp "github.com/summitmind/backend/internal/application/billing"
	domainbilling "github.com/summitmind/backend/internal/domain/billing"
	"github.com/summitmind/backend/internal/infrastructure/telemetry"
	"github.com/summitmind/backend/internal/interfaces/http/dto"
)

// BillingHandler starts checkout and billing portal redirects
type BillingHandler struct {
	BaseHandler
	checkoutService *billingapp.CheckoutService
	metrics         *telemetry.BillingMetrics
}

// NewBillingHandler creates a new BillingHandler
func NewBillingHandler(checkoutService *billingapp.CheckoutService) *BillingHandler {
	return &BillingHandler{checkoutService: checkoutService}
}

// SetMetrics enables billing metrics on the handler
func (h *BillingHandler) SetMetrics(metrics *telemetry.BillingMetrics) {
	h.metrics = metrics
}

// RegisterRoutes registers the billing routes
func (h *BillingHandler) RegisterRoutes(rg *gin.RouterGroup) {
	billingGroup := rg.Group("/billing")
	{
		billingGroup.POST("/checkout", h.StartCheckout)
		billingGroup.POST("/portal", h.OpenPortal)
	}
}

// CheckoutRequest selects the plan to subscribe to
type CheckoutRequest struct {
	Plan string `json:"plan" binding:"required"`
}

// StartCheckout creates a Stripe checkout session and returns its URL
func (h *BillingHandler) StartCheckout(c *gin.Context) {
	athleteID, ok := h.requireAthleteID(c)
	if !ok {
		return
	}

	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid checkout payload")
		return
	}

	plan := domainbilling.PlanType(req.Plan)
	if !plan.IsValid() {
		h.Error(c, dto.GetHTTPStatus("INVALID_PLAN"), "INVALID_PLAN", "Unknown plan type")
		return
	}

	result, err := h.checkoutService.StartCheckout(c.Request.Context(), athleteID, plan)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if h.metrics != nil {
		h.metrics.RecordCheckoutStarted(c.Request.Context(), plan.String())
	}

	h.Success(c, result)
}

// OpenPortal creates a billing portal session for subscription management
func (h *BillingHandler) OpenPortal(c *gin.Context) {
	athleteID, ok := h.requireAthleteID(c)
	if !ok {
		return
	}

	result, err := h.checkoutService.OpenBillingPortal(c.Request.Context(), athleteID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, result)
}
