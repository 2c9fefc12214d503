package dto

type ErrorResponse struct {
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
