package qrcode

import (
	"encoding/json"
	"testing"

	"ipay4u/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pngMagic = []byte{0x89, 0x50, 0x4E, 0x47}

func testPayload() *service.ProvisioningPayload {
	return &service.ProvisioningPayload{
		ServerURL:   "https://pay.example.com",
		DeviceID:    "dev-1",
		DeviceToken: "0123456789abcdef",
	}
}

func TestQRCodeService_GenerateProvisioningQR(t *testing.T) {
	tests := []struct {
		name  string
		size  int
		level string
	}{
		{"Low error correction", 128, "L"},
		{"Medium error correction", 256, "M"},
		{"High error correction", 256, "Q"},
		{"Highest error correction", 512, "H"},
		{"Unknown level falls back", 256, "invalid"},
		{"Zero size uses default", 0, "M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewQRCodeService(tt.size, tt.level)

			png, err := svc.GenerateProvisioningQR(testPayload())
			require.NoError(t, err)
			require.Greater(t, len(png), len(pngMagic))
			assert.Equal(t, pngMagic, png[:4])
		})
	}
}

func TestQRCodeService_GenerateProvisioningQR_MissingCredentials(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	_, err := svc.GenerateProvisioningQR(nil)
	require.Error(t, err)

	_, err = svc.GenerateProvisioningQR(&service.ProvisioningPayload{DeviceID: "dev-1"})
	require.Error(t, err)
}

func TestQRCodeService_ParseProvisioningQR(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	payload := testPayload()
	payload.Type = ProvisioningType
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	parsed, err := svc.ParseProvisioningQR(string(raw))
	require.NoError(t, err)
	assert.Equal(t, payload, parsed)
}

func TestQRCodeService_ParseProvisioningQR_Invalid(t *testing.T) {
	svc := NewQRCodeService(256, "M")

	tests := []struct {
		name string
		data string
	}{
		{"Not JSON", "hello"},
		{"Wrong type", `{"type":"subscription","device_id":"dev-1","device_token":"t"}`},
		{"Missing token", `{"type":"` + ProvisioningType + `","device_id":"dev-1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ParseProvisioningQR(tt.data)
			assert.Error(t, err)
		})
	}
}
