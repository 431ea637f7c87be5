package mercadopago

// Payment statuses the webhook cares about. Anything other than approved is
// treated as not payable.
const (
	StatusApproved = "approved"
	StatusPending  = "pending"
	StatusRejected = "rejected"
)

type Item struct {
	Title      string  `json:"title"`
	UnitPrice  float64 `json:"unit_price"`
	Quantity   int     `json:"quantity"`
	CurrencyID string  `json:"currency_id"`
}

type Payer struct {
	Email string `json:"email"`
}

type BackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending,omitempty"`
}

type ExcludedPaymentType struct {
	ID string `json:"id"`
}

type PaymentMethods struct {
	ExcludedPaymentTypes []ExcludedPaymentType `json:"excluded_payment_types,omitempty"`
	Installments         int                   `json:"installments,omitempty"`
}

// PreferenceRequest is the body of POST /checkout/preferences.
type PreferenceRequest struct {
	Items           []Item            `json:"items"`
	Payer           Payer             `json:"payer"`
	Metadata        map[string]string `json:"metadata,omitempty"`
	NotificationURL string            `json:"notification_url,omitempty"`
	BackURLs        *BackURLs         `json:"back_urls,omitempty"`
	AutoReturn      string            `json:"auto_return,omitempty"`
	PaymentMethods  *PaymentMethods   `json:"payment_methods,omitempty"`
}

type TransactionData struct {
	QRCode       string `json:"qr_code"`
	QRCodeBase64 string `json:"qr_code_base64"`
}

type PointOfInteraction struct {
	TransactionData *TransactionData `json:"transaction_data,omitempty"`
}

// Preference is the processor's checkout session. InitPoint is the hosted
// checkout URL; PointOfInteraction carries the native PIX QR payload when
// the processor returns one inline.
type Preference struct {
	ID                 string              `json:"id"`
	InitPoint          string              `json:"init_point"`
	SandboxInitPoint   string              `json:"sandbox_init_point,omitempty"`
	PointOfInteraction *PointOfInteraction `json:"point_of_interaction,omitempty"`
}

// Payment is the lookup result of GET /v1/payments/{id}. Metadata is the
// opaque mapping attached at preference time and echoed back here; it is how
// a payment is correlated to an application user.
type Payment struct {
	ID       int64                  `json:"id"`
	Status   string                 `json:"status"`
	Metadata map[string]interface{} `json:"metadata"`
}

// MetadataString returns the metadata value for key when it is a string,
// or "" when absent or of another type.
func (p *Payment) MetadataString(key string) string {
	if v, ok := p.Metadata[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
