package handler

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	billingapp "github.com/summitmind/backend/internal/application/billing"
	"github.com/summitmind/backend/internal/infrastructure/telemetry"
)

// WebhookHandler receives Stripe webhook deliveries. The endpoint is called
// by Stripe directly and is not behind authentication; the signature check
// is the authentication.
type WebhookHandler struct {
	webhookService *billingapp.WebhookService
	maxPayloadSize int64
	metrics        *telemetry.BillingMetrics
	logger         *zap.Logger
}

// NewWebhookHandler creates a new WebhookHandler
func NewWebhookHandler(webhookService *billingapp.WebhookService, maxPayloadSize int64, logger *zap.Logger) *WebhookHandler {
	if maxPayloadSize <= 0 {
		maxPayloadSize = 64 << 10
	}
	return &WebhookHandler{
		webhookService: webhookService,
		maxPayloadSize: maxPayloadSize,
		logger:         logger,
	}
}

// SetMetrics enables billing metrics on the handler
func (h *WebhookHandler) SetMetrics(metrics *telemetry.BillingMetrics) {
	h.metrics = metrics
}

// RegisterRoutes registers the webhook routes
func (h *WebhookHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/webhooks/stripe", h.HandleStripeWebhook)
}

// HandleStripeWebhook processes a Stripe webhook delivery. The raw body is
// read before any parsing because signature verification runs over the exact
// bytes Stripe sent. Response bodies are fixed strings: Stripe only looks at
// the status code, and 400 vs 500 decides whether it retries.
func (h *WebhookHandler) HandleStripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, h.maxPayloadSize+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
		return
	}
	if int64(len(payload)) > h.maxPayloadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Payload too large"})
		return
	}

	signature := c.GetHeader("Stripe-Signature")
	if signature == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No signature"})
		return
	}

	start := time.Now()
	result, err := h.webhookService.Process(c.Request.Context(), payload, signature)
	if err != nil {
		if errors.Is(err, billingapp.ErrInvalidSignature) {
			h.recordOutcome(c, result, "invalid_signature", start)
			// 400 tells Stripe not to retry; a forged or stale delivery
			// will never verify.
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid signature"})
			return
		}

		// 500 makes Stripe redeliver later. The merge write is idempotent,
		// so the retry is safe.
		h.recordOutcome(c, result, "failed", start)
		h.logger.Error("Webhook processing failed",
			zap.String("event_id", eventID(result)),
			zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Webhook handler failed"})
		return
	}

	outcome := "processed"
	if result != nil && result.Message != "" {
		outcome = "skipped"
	}
	h.recordOutcome(c, result, outcome, start)

	c.JSON(http.StatusOK, gin.H{"received": true})
}

func (h *WebhookHandler) recordOutcome(c *gin.Context, result *billingapp.WebhookResult, outcome string, start time.Time) {
	if h.metrics == nil {
		return
	}
	eventType := "unknown"
	if result != nil && result.EventType != "" {
		eventType = result.EventType
	}
	h.metrics.RecordWebhookEvent(c.Request.Context(), eventType, outcome, time.Since(start))
}

func eventID(result *billingapp.WebhookResult) string {
	if result == nil {
		return ""
	}
	return result.EventID
}
