package handler

import (
	"net/http"
	"time"

	"ipay4u/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// SystemHandler serves unauthenticated liveness endpoints.
type SystemHandler struct {
	clock service.Clock
}

// NewSystemHandler is the constructor for SystemHandler
func NewSystemHandler(clock service.Clock) *SystemHandler {
	return &SystemHandler{clock: clock}
}

// HealthResponse is the body of GET /health
type HealthResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

// HealthCheck reports that the process is serving.
func (h *SystemHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{
		Status: "ok",
		Time:   h.clock.Now().UTC().Format(time.RFC3339),
	})
}

// Root answers the bare service URL with a plain-text banner.
func (h *SystemHandler) Root(c echo.Context) error {
	return c.String(http.StatusOK, "ipay4u server is running")
}
