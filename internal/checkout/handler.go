package checkout

import (
	"context"
	"net/http"
	"strings"

	"github.com/tlopesdev-arch/simulado-V3/internal/api"
	"github.com/tlopesdev-arch/simulado-V3/internal/logger"
	"github.com/tlopesdev-arch/simulado-V3/internal/mercadopago"
	"github.com/tlopesdev-arch/simulado-V3/internal/metrics"
	"github.com/tlopesdev-arch/simulado-V3/internal/plan"

	"github.com/gin-gonic/gin"
)

// Placeholder accepted by the processor when the caller sends no email.
const fallbackPayerEmail = "email@exemplo.com"

// PreferenceCreator is the slice of the processor client this handler needs.
type PreferenceCreator interface {
	CreatePreference(ctx context.Context, pref *mercadopago.PreferenceRequest) (*mercadopago.Preference, error)
}

type Handler struct {
	payments      PreferenceCreator
	publicBaseURL string
}

func NewHandler(payments PreferenceCreator, publicBaseURL string) *Handler {
	return &Handler{
		payments:      payments,
		publicBaseURL: strings.TrimSuffix(publicBaseURL, "/"),
	}
}

type CreatePreferenceRequest struct {
	UserID string      `json:"userId" binding:"required"`
	Email  string      `json:"email"`
	Plan   plan.Type   `json:"plan" binding:"required"`
	Method plan.Method `json:"method" binding:"required"`
}

type CreatePreferenceResponse struct {
	InitPoint    string `json:"init_point"`
	QRCode       string `json:"qr_code,omitempty"`
	QRCodeBase64 string `json:"qr_code_base64,omitempty"`
	ID           string `json:"id"`
	PriceCharged string `json:"price_charged"`
}

func (h *Handler) Create(c *gin.Context) {
	var req CreatePreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: err.Error()})
		return
	}

	selected, err := plan.Find(req.Plan)
	if err != nil {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid plan"})
		return
	}
	if !plan.ValidMethod(req.Method) {
		c.JSON(http.StatusBadRequest, api.ErrorResponse{Error: "invalid payment method"})
		return
	}

	price := selected.Price(req.Method)
	baseURL := h.baseURL(c)

	email := req.Email
	if email == "" {
		email = fallbackPayerEmail
	}

	pref := &mercadopago.PreferenceRequest{
		Items: []mercadopago.Item{{
			Title:      selected.Title,
			UnitPrice:  price.InexactFloat64(),
			Quantity:   1,
			CurrencyID: "BRL",
		}},
		Payer: mercadopago.Payer{Email: email},
		// The webhook attributes the payment to a user through this mapping.
		Metadata: map[string]string{
			"user_id":   req.UserID,
			"plan_type": string(req.Plan),
		},
		NotificationURL: baseURL + "/api/webhook",
		BackURLs: &mercadopago.BackURLs{
			Success: baseURL + "/",
			Failure: baseURL + "/",
			Pending: baseURL + "/",
		},
		AutoReturn: "approved",
		PaymentMethods: &mercadopago.PaymentMethods{
			ExcludedPaymentTypes: excludedTypes(req.Method),
			Installments:         12,
		},
	}

	created, err := h.payments.CreatePreference(c.Request.Context(), pref)
	if err != nil {
		logger.Error("failed to create preference", "user_id", req.UserID, "plan", req.Plan, "error", err)
		metrics.RecordPreferenceFailure()
		c.JSON(http.StatusInternalServerError, api.ErrorResponse{Error: "failed to create payment"})
		return
	}

	logger.Info("preference created", "id", created.ID, "user_id", req.UserID, "plan", req.Plan, "method", req.Method)
	metrics.RecordPreferenceCreated(string(req.Plan), string(req.Method))

	resp := CreatePreferenceResponse{
		InitPoint:    created.InitPoint,
		ID:           created.ID,
		PriceCharged: selected.PriceString(req.Method),
	}
	if poi := created.PointOfInteraction; poi != nil && poi.TransactionData != nil {
		resp.QRCode = poi.TransactionData.QRCode
		resp.QRCodeBase64 = poi.TransactionData.QRCodeBase64
	}

	c.JSON(http.StatusOK, resp)
}

// baseURL derives the public origin for notification/back URLs from the
// incoming request host, unless an explicit override is configured (needed
// behind proxies that rewrite Host).
func (h *Handler) baseURL(c *gin.Context) string {
	if h.publicBaseURL != "" {
		return h.publicBaseURL
	}
	return "https://" + c.Request.Host
}

// PIX checkouts hide card and boleto options; card checkouts hide PIX and
// boleto. Keeps the processor's checkout page to a single flow.
func excludedTypes(m plan.Method) []mercadopago.ExcludedPaymentType {
	if m == plan.MethodPix {
		return []mercadopago.ExcludedPaymentType{{ID: "ticket"}, {ID: "debit_card"}, {ID: "credit_card"}}
	}
	return []mercadopago.ExcludedPaymentType{{ID: "ticket"}, {ID: "pix"}}
}
