package domain

type Payment struct {
	ID                 int64   `db:"id"`
	OrderID            int64   `db:"order_id"`
	Amount             float64 `db:"amount"`
	PaymentMethod      string  `db:"payment_method"`
	TransactionID      *string `db:"transaction_id"`
	PhoneNumber        string  `db:"phone_number"`
	Status             string  `db:"status"`
	MpesaReceiptNumber *string `db:"mpesa_receipt_number"`
	ErrorMessage       *string `db:"error_message"`
	PaidAt             *int64  `db:"paid_at"`
	CreatedAt          int64   `db:"created_at"`
	UpdatedAt          int64   `db:"updated_at"`
}

// Terminal reports whether the payment has reached a final state. Reconciling
// a terminal payment again is a no-op.
func (p Payment) Terminal() bool {
	return p.Status == PaymentStatusCompleted || p.Status == PaymentStatusFailed
}

// PushRequest correlates a gateway checkout request id back to the payment it
// was issued for. The gateway only ever sees the checkout request id.
type PushRequest struct {
	ID                int64   `db:"id"`
	PaymentID         int64   `db:"payment_id"`
	CheckoutRequestID string  `db:"checkout_request_id"`
	MerchantRequestID *string `db:"merchant_request_id"`
	CreatedAt         int64   `db:"created_at"`
	UpdatedAt         int64   `db:"updated_at"`
}
