package domain

const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCancelled = "cancelled"
	OrderStatusCompleted = "completed"
)

const (
	PaymentStatusPending   = "pending"
	PaymentStatusCompleted = "completed"
	PaymentStatusFailed    = "failed"
)

type Order struct {
	ID                 int64   `db:"id"`
	UserID             int64   `db:"user_id"`
	TotalAmount        float64 `db:"total_amount"`
	Status             string  `db:"status"`
	PaymentStatus      string  `db:"payment_status"`
	PaymentMethod      string  `db:"payment_method"`
	MpesaTransactionID *string `db:"mpesa_transaction_id"`
	CustomerPhone      string  `db:"customer_phone"`
	DeliveryAddress    *string `db:"delivery_address"`
	CreatedAt          int64   `db:"created_at"`
	UpdatedAt          int64   `db:"updated_at"`
	Items              []OrderItem
}

type OrderItem struct {
	ID         int64   `db:"id"`
	OrderID    int64   `db:"order_id"`
	MenuItemID int64   `db:"menu_item_id"`
	Quantity   int64   `db:"quantity"`
	UnitPrice  float64 `db:"unit_price"`
	Subtotal   float64 `db:"subtotal"`
}

type OrderStatusHistory struct {
	ID        int64   `db:"id"`
	OrderID   int64   `db:"order_id"`
	OldStatus *string `db:"old_status"`
	NewStatus string  `db:"new_status"`
	CreatedAt int64   `db:"created_at"`
}
