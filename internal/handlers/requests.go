package handlers

// LoginRequest is the staff login form
type LoginRequest struct {
	Password string `json:"password"`
}
