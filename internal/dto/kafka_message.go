package dto

type KafkaMessage struct {
	EventType string      `json:"event_type"`
	Data      interface{} `json:"data"`
}

type OrderEvent struct {
	OrderID     int64   `json:"order_id"`
	UserID      int64   `json:"user_id"`
	TotalAmount float64 `json:"total_amount"`
	Status      string  `json:"status"`
}

type PaymentEvent struct {
	PaymentID         int64   `json:"payment_id"`
	OrderID           int64   `json:"order_id"`
	Amount            float64 `json:"amount"`
	Status            string  `json:"status"`
	CheckoutRequestID string  `json:"checkout_request_id"`
	ReceiptNumber     string  `json:"receipt_number,omitempty"`
}
