package dto

// LoginRequest represents a login request. Identifier is an email or a username.
type LoginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// DoctorNotesRequest represents a doctor notes update
type DoctorNotesRequest struct {
	DoctorNotes *string `json:"doctorNotes" binding:"required"`
}

// LoginResponse represents the login response envelope
type LoginResponse struct {
	Success bool       `json:"success"`
	Message string     `json:"message,omitempty"`
	Data    *LoginData `json:"data,omitempty"`
}

// LoginData is the payload of a successful login
type LoginData struct {
	User        UserInfo `json:"user"`
	AccessToken string   `json:"accessToken"`
	ExpiresIn   int      `json:"expiresIn"`
}

// UserInfo represents user information in responses
type UserInfo struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Envelope is the standard success response
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// MessageData is returned in place of data that does not exist yet
type MessageData struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}
