package dto

type UserResponse struct {
	ID       int64  `json:"id"`
	Fullname string `json:"fullname"`
	Email    string `json:"email"`
	Contact  string `json:"contact"`
}

type LoginResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"-"`
}

type SessionResponse struct {
	Valid bool          `json:"valid"`
	User  *UserResponse `json:"user,omitempty"`
}
