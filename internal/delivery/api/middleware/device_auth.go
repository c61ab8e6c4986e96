package middleware

import (
	"bytes"
	"io"
	"log/slog"
	"strings"

	deliverycontext "ipay4u/internal/delivery/context"
	"ipay4u/internal/domain/entity"
	"ipay4u/internal/errors"
	"ipay4u/internal/usecase"

	"github.com/labstack/echo/v4"
)

// Device request headers.
const (
	HeaderDeviceToken = "X-Device-Token"
	HeaderTimestamp   = "X-Timestamp"
	HeaderNonce       = "X-Nonce"
	HeaderSignature   = "X-Signature"

	contextKeyDevice = "device"
)

// DeviceAuthMiddleware authenticates signed device requests before any handler runs.
type DeviceAuthMiddleware struct {
	authenticator usecase.RequestAuthenticator
	logger        *slog.Logger
}

// NewDeviceAuthMiddleware is the constructor for DeviceAuthMiddleware.
func NewDeviceAuthMiddleware(authenticator usecase.RequestAuthenticator, logger *slog.Logger) *DeviceAuthMiddleware {
	return &DeviceAuthMiddleware{authenticator: authenticator, logger: logger}
}

// Authenticate verifies token, timestamp, nonce and signature over the raw body.
// The body is buffered and restored so the handler can still bind it.
func (m *DeviceAuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()

		var body []byte
		if req.Body != nil {
			raw, err := io.ReadAll(req.Body)
			if err != nil {
				return errors.WithStack(err)
			}
			body = raw
		}
		req.Body = io.NopCloser(bytes.NewReader(body))

		device, err := m.authenticator.Authenticate(req.Context(), &usecase.SignedRequest{
			Token:     DeviceToken(c),
			Timestamp: req.Header.Get(HeaderTimestamp),
			Nonce:     req.Header.Get(HeaderNonce),
			Signature: req.Header.Get(HeaderSignature),
			Body:      body,
		})
		if err != nil {
			return err
		}

		c.Set(contextKeyDevice, device)
		deliverycontext.BindDevice(c, device.DeviceID, m.logger)

		return next(c)
	}
}

// DeviceToken extracts the device credential from "Authorization: Bearer" or X-Device-Token.
func DeviceToken(c echo.Context) string {
	if authHeader := c.Request().Header.Get(echo.HeaderAuthorization); authHeader != "" {
		if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}

	return strings.TrimSpace(c.Request().Header.Get(HeaderDeviceToken))
}

// GetDevice returns the device stored by Authenticate.
func GetDevice(c echo.Context) (*entity.Device, bool) {
	device, ok := c.Get(contextKeyDevice).(*entity.Device)

	return device, ok && device != nil
}
