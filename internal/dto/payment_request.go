package dto

type MakePaymentRequest struct {
	Phone   string  `json:"phone"`
	Amount  float64 `json:"amount"`
	OrderID int64   `json:"order_id"`
}

type MakePaymentResponse struct {
	CheckoutRequestID string `json:"checkout_request_id"`
}

type QueryPaymentStatusRequest struct {
	CheckoutRequestID string `json:"checkout_request_id"`
}
