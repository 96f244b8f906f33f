package dto

type CartItemRequest struct {
	MenuItemID int64 `json:"menu_item_id"`
	Quantity   int64 `json:"quantity"`
}

type CartItemResponse struct {
	ID         int64   `json:"id"`
	MenuItemID int64   `json:"menu_item_id"`
	Name       string  `json:"name"`
	Price      float64 `json:"price"`
	Quantity   int64   `json:"quantity"`
	CreatedAt  int64   `json:"created_at"`
}
