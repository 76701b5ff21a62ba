package models

// Admin is the single credential record of the 'admin' table
type Admin struct {
	ID           int64  `json:"id" db:"id" example:"1"`
	Username     string `json:"username" db:"username" example:"admin"`
	PasswordHash string `json:"-" db:"password_hash"`
}
