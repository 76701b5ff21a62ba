package dto

// LoginRequest represents admin credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"admin"`
	Password string `json:"password" binding:"required" example:"admin123"`
}

// TokenResponse is returned after a successful login or username change
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType" example:"Bearer"`
	ExpiresIn int    `json:"expiresIn" example:"3600"`
	Username  string `json:"username" example:"admin"`
}

// ChangePasswordRequest represents a password change
type ChangePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// ChangeUsernameRequest represents a username change, confirmed with the password
type ChangeUsernameRequest struct {
	NewUsername string `json:"newUsername" binding:"required,notblank,max=50" example:"bursar"`
	Password    string `json:"password" binding:"required"`
}

// AdminResponse is the public view of the admin account
type AdminResponse struct {
	ID       int64  `json:"id" example:"1"`
	Username string `json:"username" example:"admin"`
}
