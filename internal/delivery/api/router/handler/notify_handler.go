package handler

import (
	"net/http"

	"ipay4u/internal/delivery/api/middleware"
	"ipay4u/internal/delivery/api/response"
	domainerrors "ipay4u/internal/domain/errors"
	"ipay4u/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// NotifyHandlerParams holds dependencies for NotifyHandler, injected by Fx.
type NotifyHandlerParams struct {
	fx.In

	Ingestor usecase.EventIngestor
}

// NotifyHandler accepts payment events from authenticated devices.
type NotifyHandler struct {
	ingestor usecase.EventIngestor
}

// NewNotifyHandler is the constructor for NotifyHandler
func NewNotifyHandler(params NotifyHandlerParams) *NotifyHandler {
	return &NotifyHandler{ingestor: params.Ingestor}
}

// Notify records the reported payment. It must run behind DeviceAuthMiddleware.
func (h *NotifyHandler) Notify(c echo.Context) error {
	device, ok := middleware.GetDevice(c)
	if !ok {
		return response.HandleAppError(c, domainerrors.ErrMissingCredentials)
	}

	var payload usecase.NotifyPayload
	if err := c.Bind(&payload); err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidPayload.ErrorCode(), "Event payload is not valid JSON")
	}

	result, err := h.ingestor.Ingest(c.Request().Context(), device, &payload)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result)
}
