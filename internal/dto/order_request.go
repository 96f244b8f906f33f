package dto

type OrderItemRequest struct {
	MenuItemID int64   `json:"menu_item_id"`
	Quantity   int64   `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	Subtotal   float64 `json:"subtotal"`
}

type OrderRequest struct {
	OrderID         int64              `json:"order_id,omitempty"`
	UserID          int64              `json:"-"`
	TotalAmount     *float64           `json:"total_amount"`
	CustomerPhone   string             `json:"customer_phone"`
	Status          string             `json:"status,omitempty"`
	PaymentStatus   string             `json:"payment_status,omitempty"`
	DeliveryAddress *string            `json:"delivery_address,omitempty"`
	Items           []OrderItemRequest `json:"items"`
}

type OrderStatusRequest struct {
	Status string `json:"status"`
}
