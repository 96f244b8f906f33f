package dto

type OrderItemResponse struct {
	ID         int64   `json:"id"`
	MenuItemID int64   `json:"menu_item_id"`
	Name       string  `json:"name"`
	Quantity   int64   `json:"quantity"`
	Price      float64 `json:"price"`
	Subtotal   float64 `json:"subtotal"`
}

type OrderStatusHistoryResponse struct {
	OldStatus *string `json:"old_status"`
	NewStatus string  `json:"new_status"`
	CreatedAt int64   `json:"created_at"`
}

type OrderResponse struct {
	ID                 int64               `json:"id"`
	UserID             int64               `json:"user_id"`
	TotalAmount        float64             `json:"total_amount"`
	Status             string              `json:"status"`
	PaymentStatus      string              `json:"payment_status"`
	PaymentMethod      string              `json:"payment_method"`
	MpesaTransactionID *string             `json:"mpesa_transaction_id"`
	CustomerPhone      string              `json:"customer_phone"`
	DeliveryAddress    *string             `json:"delivery_address"`
	CreatedAt          int64               `json:"created_at"`
	UpdatedAt          int64               `json:"updated_at"`
	Items              []OrderItemResponse          `json:"items"`
	History            []OrderStatusHistoryResponse `json:"history,omitempty"`
}

type CreateOrderResponse struct {
	OrderID int64 `json:"order_id"`
}
