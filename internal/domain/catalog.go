package domain

type Category struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
	ImageURL    *string `db:"image_url"`
	IsActive    bool    `db:"is_active"`
	CreatedAt   int64   `db:"created_at"`
}

type MenuItem struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Description *string `db:"description"`
	Price       float64 `db:"price"`
	ImageURL    *string `db:"image_url"`
	CategoryID  *int64  `db:"category_id"`
	IsAvailable bool    `db:"is_available"`
}

type CartItem struct {
	ID         int64 `db:"id"`
	UserID     int64 `db:"user_id"`
	MenuItemID int64 `db:"menu_item_id"`
	Quantity   int64 `db:"quantity"`
	CreatedAt  int64 `db:"created_at"`
}
