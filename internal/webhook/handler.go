package webhook

import (
	"context"
	"net/http"

	"github.com/tlopesdev-arch/simulado-V3/internal/logger"
	"github.com/tlopesdev-arch/simulado-V3/internal/mercadopago"
	"github.com/tlopesdev-arch/simulado-V3/internal/metrics"
	"github.com/tlopesdev-arch/simulado-V3/internal/plan"
	"github.com/tlopesdev-arch/simulado-V3/internal/profile"

	"github.com/gin-gonic/gin"
)

// PaymentGetter is the slice of the processor client this handler needs.
type PaymentGetter interface {
	GetPayment(ctx context.Context, id string) (*mercadopago.Payment, error)
}

type Handler struct {
	payments PaymentGetter
	profiles profile.Store
}

func NewHandler(payments PaymentGetter, profiles profile.Store) *Handler {
	return &Handler{payments: payments, profiles: profiles}
}

// Notification is the processor's webhook envelope. Older webhook
// generations carry the id and topic in query parameters instead of a body.
type Notification struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}

// Receive acknowledges every delivery with 200 unless the verb is wrong:
// the processor redelivers non-2xx responses indefinitely, and none of the
// failure modes here are fixable by a redelivery.
func (h *Handler) Receive(c *gin.Context) {
	var n Notification
	// A missing or unparseable body is not an error; the query parameters
	// may still identify the payment.
	_ = c.ShouldBindJSON(&n)

	id := n.Data.ID
	if id == "" {
		id = c.Query("id")
	}
	if id == "" {
		id = c.Query("data.id")
	}

	isPayment := n.Type == "payment" || c.Query("topic") == "payment"
	if !isPayment || id == "" {
		logger.Info("webhook ignored", "type", n.Type, "topic", c.Query("topic"), "payment_id", id)
		metrics.RecordWebhookEvent("ignored")
		c.String(http.StatusOK, "OK")
		return
	}

	payment, err := h.payments.GetPayment(c.Request.Context(), id)
	if err != nil {
		logger.Error("failed to look up payment", "payment_id", id, "error", err)
		metrics.RecordWebhookEvent("lookup_error")
		c.String(http.StatusOK, "OK")
		return
	}

	if payment.Status != mercadopago.StatusApproved {
		logger.Info("payment not approved", "payment_id", id, "status", payment.Status)
		metrics.RecordWebhookEvent("not_approved")
		c.String(http.StatusOK, "OK")
		return
	}

	userID := payment.MetadataString("user_id")
	planType := payment.MetadataString("plan_type")
	if userID == "" || planType == "" {
		logger.Error("approved payment missing metadata", "payment_id", id, "user_id", userID, "plan_type", planType)
		metrics.RecordWebhookEvent("missing_metadata")
		c.String(http.StatusOK, "OK")
		return
	}

	// The subscription field only ever holds catalog values.
	if _, err := plan.Find(plan.Type(planType)); err != nil {
		logger.Error("approved payment carries unknown plan type", "payment_id", id, "plan_type", planType)
		metrics.RecordWebhookEvent("invalid_plan")
		c.String(http.StatusOK, "OK")
		return
	}

	if err := h.profiles.ActivateSubscription(c.Request.Context(), userID, planType); err != nil {
		logger.Error("failed to activate subscription", "payment_id", id, "user_id", userID, "error", err)
		metrics.RecordWebhookEvent("write_error")
		c.String(http.StatusOK, "OK")
		return
	}

	logger.Info("subscription activated", "user_id", userID, "plan", planType, "payment_id", id)
	metrics.RecordWebhookEvent("activated")
	metrics.RecordSubscriptionActivated(planType)
	c.String(http.StatusOK, "OK")
}
