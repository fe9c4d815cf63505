package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type LoginResponse struct {
	Token string `json:"token"`
	Admin Admin  `json:"admin"`
}

// OrderResult is what order create/update/remove return: the message
// text the storefront surfaces plus the full order snapshot.
type OrderResult struct {
	Message string `json:"message"`
	Order   *Order `json:"order"`
}
