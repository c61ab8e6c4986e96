package handler

import (
	"net/http"

	"ipay4u/internal/delivery/api/middleware"
	"ipay4u/internal/delivery/api/response"
	"ipay4u/internal/delivery/api/validator"
	domainerrors "ipay4u/internal/domain/errors"
	"ipay4u/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// DeviceHandlerParams holds dependencies for DeviceHandler, injected by Fx.
type DeviceHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
}

// DeviceHandler serves the device-facing registration and status endpoints.
type DeviceHandler struct {
	deviceUC usecase.DeviceUsecase
}

// NewDeviceHandler is the constructor for DeviceHandler
func NewDeviceHandler(params DeviceHandlerParams) *DeviceHandler {
	return &DeviceHandler{
		deviceUC: params.DeviceUC,
	}
}

// RegisterResponse carries the freshly issued credential.
type RegisterResponse struct {
	Status      string `json:"status"`
	DeviceID    string `json:"device_id"`
	DeviceToken string `json:"device_token"`
}

// DeviceStatusResponse reports the lifecycle state of the calling device.
type DeviceStatusResponse struct {
	Status   string `json:"status"`
	DeviceID string `json:"device_id"`
}

// Register creates the device or rotates its token. Runs behind the registration gate.
func (h *DeviceHandler) Register(c echo.Context) error {
	var req usecase.RegisterDeviceInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidInput.ErrorCode(), "Invalid registration body")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, domainerrors.ErrInvalidInput.ErrorCode(),
			domainerrors.ErrInvalidInput.Message(), validator.FieldErrors(err))
	}

	device, err := h.deviceUC.Register(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, RegisterResponse{
		Status:      "ok",
		DeviceID:    device.DeviceID,
		DeviceToken: device.Token,
	})
}

// DeviceStatus reports whether the device holding the presented token is active.
// Only the token is required; disabled devices can still learn their state.
func (h *DeviceHandler) DeviceStatus(c echo.Context) error {
	device, err := h.deviceUC.Status(c.Request().Context(), middleware.DeviceToken(c))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, DeviceStatusResponse{
		Status:   string(device.Status),
		DeviceID: device.DeviceID,
	})
}
