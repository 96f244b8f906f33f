package dto

type RegisterRequest struct {
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Contact  string `json:"contact"`
	Password string `json:"password"`
}
