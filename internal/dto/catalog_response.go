package dto

type CategoryResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
	IsActive    bool    `json:"is_active"`
	CreatedAt   int64   `json:"created_at"`
}

type MenuItemResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
	Price       float64 `json:"price"`
	ImageURL    *string `json:"image_url"`
	CategoryID  *int64  `json:"category_id"`
	IsAvailable bool    `json:"is_available"`
}
