// Package qrcode renders device provisioning payloads as QR codes.
package qrcode

import (
	"encoding/json"

	"ipay4u/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

// ProvisioningType tags payloads produced by this service.
const ProvisioningType = "ipay4u-device"

const defaultSize = 256

type qrcodeService struct {
	size  int
	level qrcode.RecoveryLevel
}

// NewQRCodeService creates a QR code service; unknown levels fall back to M.
func NewQRCodeService(size int, errorCorrectionLevel string) service.QRCodeService {
	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:  size,
		level: recoveryLevel(errorCorrectionLevel),
	}
}

func recoveryLevel(level string) qrcode.RecoveryLevel {
	switch level {
	case "L":
		return qrcode.Low
	case "Q":
		return qrcode.High
	case "H":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// GenerateProvisioningQR encodes the payload as JSON and renders it as PNG.
func (s *qrcodeService) GenerateProvisioningQR(payload *service.ProvisioningPayload) ([]byte, error) {
	if payload == nil || payload.DeviceID == "" || payload.DeviceToken == "" {
		return nil, errors.New("provisioning payload requires device id and token")
	}

	data := *payload
	data.Type = ProvisioningType

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal provisioning payload")
	}

	pngBytes, err := qrcode.Encode(string(jsonData), s.level, s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render QR code")
	}

	return pngBytes, nil
}

// ParseProvisioningQR decodes scanned QR text back into a payload.
func (s *qrcodeService) ParseProvisioningQR(qrData string) (*service.ProvisioningPayload, error) {
	var payload service.ProvisioningPayload
	if err := json.Unmarshal([]byte(qrData), &payload); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal provisioning payload")
	}

	if payload.Type != ProvisioningType {
		return nil, errors.Errorf("invalid QR code type: %s", payload.Type)
	}
	if payload.DeviceID == "" || payload.DeviceToken == "" {
		return nil, errors.New("provisioning payload is missing device credentials")
	}

	return &payload, nil
}
