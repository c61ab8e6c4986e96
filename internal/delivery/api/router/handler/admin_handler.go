package handler

import (
	"log/slog"
	"net/http"

	"ipay4u/internal/delivery/api/middleware"
	"ipay4u/internal/delivery/api/response"
	"ipay4u/internal/delivery/api/validator"
	deliverycontext "ipay4u/internal/delivery/context"
	domainerrors "ipay4u/internal/domain/errors"
	"ipay4u/internal/domain/entity"
	"ipay4u/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	DeviceUC usecase.DeviceUsecase
	Logger   *slog.Logger
}

// AdminHandler serves operator endpoints for device provisioning and lifecycle.
type AdminHandler struct {
	deviceUC usecase.DeviceUsecase
	logger   *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &AdminHandler{deviceUC: params.DeviceUC, logger: logger}
}

// audit records which operator changed which device.
func (h *AdminHandler) audit(c echo.Context, msg, deviceID string, attrs ...slog.Attr) {
	adminID := "unknown"
	if id, ok := middleware.GetAdminID(c); ok {
		adminID = id.String()
	}

	attrs = append(attrs, slog.String("admin_id", adminID), slog.String("device_id", deviceID))
	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
		LogAttrs(c.Request().Context(), slog.LevelInfo, msg, attrs...)
}

// SetDeviceStatusRequest represents the body of a status change
type SetDeviceStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active disabled"`
}

// DeviceEventsResponse is one page of a device's payment events
type DeviceEventsResponse struct {
	DeviceID string                 `json:"device_id"`
	Events   []*entity.PaymentEvent `json:"events"`
}

// HeaderProvisionedDeviceID names the provisioned device on the PNG response.
const HeaderProvisionedDeviceID = "X-Device-Id"

// ProvisionDevice registers a device and returns its provisioning QR code as PNG.
func (h *AdminHandler) ProvisionDevice(c echo.Context) error {
	var req usecase.RegisterDeviceInput
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidInput.ErrorCode(), "Invalid device body")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, domainerrors.ErrInvalidInput.ErrorCode(),
			domainerrors.ErrInvalidInput.Message(), validator.FieldErrors(err))
	}

	provisioned, err := h.deviceUC.Provision(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.audit(c, "Device provisioned", provisioned.Device.DeviceID, slog.String("device_name", provisioned.Device.Name))

	c.Response().Header().Set(HeaderProvisionedDeviceID, provisioned.Device.DeviceID)
	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")

	return c.Blob(http.StatusCreated, "image/png", provisioned.QRCode)
}

// SetDeviceStatus enables or disables a device.
func (h *AdminHandler) SetDeviceStatus(c echo.Context) error {
	var req SetDeviceStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidInput.ErrorCode(), "Invalid status body")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, domainerrors.ErrInvalidInput.ErrorCode(),
			domainerrors.ErrInvalidInput.Message(), validator.FieldErrors(err))
	}

	device, err := h.deviceUC.SetStatus(c.Request().Context(), c.Param("deviceId"), entity.DeviceStatus(req.Status))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	h.audit(c, "Device status changed", device.DeviceID, slog.String("status", string(device.Status)))

	return response.Success(c, http.StatusOK, DeviceStatusResponse{
		Status:   string(device.Status),
		DeviceID: device.DeviceID,
	})
}

// ListDeviceEvents returns the device's payment events, newest first.
// Query parameters: limit (default 50, max 200) and offset.
func (h *AdminHandler) ListDeviceEvents(c echo.Context) error {
	var limit, offset int
	if err := echo.QueryParamsBinder(c).
		Int("limit", &limit).
		Int("offset", &offset).
		BindError(); err != nil {
		return response.BadRequest(c, domainerrors.ErrInvalidInput.ErrorCode(), "limit and offset must be integers")
	}

	deviceID := c.Param("deviceId")
	events, err := h.deviceUC.ListEvents(c.Request().Context(), deviceID, limit, offset)
	if err != nil {
		return response.HandleAppError(c, err)
	}
	if events == nil {
		events = []*entity.PaymentEvent{}
	}

	return response.Success(c, http.StatusOK, DeviceEventsResponse{
		DeviceID: deviceID,
		Events:   events,
	})
}
