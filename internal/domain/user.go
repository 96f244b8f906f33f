package domain

type User struct {
	ID           int64  `db:"id"`
	Fullname     string `db:"fullname"`
	Contact      string `db:"contacts"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	ExternalID   string `db:"external_id"`
	CreatedAt    int64  `db:"created_at"`
	LastLogin    *int64 `db:"last_login"`
}
