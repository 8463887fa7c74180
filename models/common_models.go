// models/common_models.go
package models

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error" example:"Invalid request"`         // Short error class
	Message string `json:"message" example:"Domain is required"` // User-facing message
}

// HealthResponse is returned by the health endpoint.
type HealthResponse struct {
	Status    string `json:"status" example:"OK"`
	Timestamp string `json:"timestamp" example:"2025-01-01T00:00:00Z"`
	Service   string `json:"service" example:"whois-api"`
}
