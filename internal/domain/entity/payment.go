package entity

// Payment statuses reported by the provider through the API.
const (
	PaymentStatusPending   = "pending"
	PaymentStatusPaid      = "paid"
	PaymentStatusFailed    = "failed"
	PaymentStatusExpired   = "expired"
	PaymentStatusRefunded  = "refunded"
	PaymentStatusCancelled = "cancelled"
)

// Payment methods accepted at checkout.
const (
	PaymentMethodCard         = "credit_card"
	PaymentMethodBankTransfer = "bank_transfer"
	PaymentMethodCOD          = "cash_on_delivery"
)

// Payment is a payment record tied to an order. Provider references
// (Xendit) are opaque to the client; card collection happens out-of-band
// against the provider's hosted session.
type Payment struct {
	ID            int     `json:"id"`
	UserID        int     `json:"user_id"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Status        string  `json:"status"`
	PaymentMethod string  `json:"payment_method"`

	ReferenceID      string         `json:"reference_id"`
	XenditID         string         `json:"xendit_id"`
	PaymentRequestID string         `json:"payment_request_id"`
	SessionData      map[string]any `json:"session_data"`
	PaymentDetails   map[string]any `json:"payment_details"`

	User *User `json:"user"`

	PaymentDate Timestamp `json:"payment_date"`
	CreatedAt   Timestamp `json:"created_at"`
	UpdatedAt   Timestamp `json:"updated_at"`
}

// Terminal reports whether the payment has reached a final status and
// polling can stop.
func (p *Payment) Terminal() bool {
	switch p.Status {
	case PaymentStatusPaid, PaymentStatusFailed, PaymentStatusExpired,
		PaymentStatusRefunded, PaymentStatusCancelled:
		return true
	default:
		return false
	}
}
