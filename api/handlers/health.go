// ABOUTME: Health check handler for the Huma API
// ABOUTME: Reports that the server process is up

package handlers

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

// HealthHandler serves the liveness endpoint
type HealthHandler struct{}

// NewHealthHandler creates a new health handler
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// RegisterRoutes registers the health route
func (h *HealthHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "healthCheck",
		Method:      http.MethodGet,
		Path:        "/api/health",
		Summary:     "Health check",
		Tags:        []string{"Health"},
	}, h.Health)
}

// HealthOutput is the health check response
type HealthOutput struct {
	Body struct {
		Status  string `json:"status" example:"OK"`
		Message string `json:"message" example:"Server is running"`
	}
}

// Health handles GET /api/health
func (h *HealthHandler) Health(ctx context.Context, input *struct{}) (*HealthOutput, error) {
	out := &HealthOutput{}
	out.Body.Status = "OK"
	out.Body.Message = "Server is running"
	return out, nil
}
