package service

// ProvisioningPayload is encoded into the QR code scanned by a device app.
type ProvisioningPayload struct {
	ServerURL   string `json:"server_url"`
	DeviceID    string `json:"device_id"`
	DeviceToken string `json:"device_token"`
	Type        string `json:"type"`
}

// QRCodeService defines the interface for provisioning QR generation and parsing.
type QRCodeService interface {
	// GenerateProvisioningQR renders the payload as a PNG QR code.
	GenerateProvisioningQR(payload *ProvisioningPayload) ([]byte, error)

	// ParseProvisioningQR decodes the JSON text carried by a scanned QR code.
	ParseProvisioningQR(qrData string) (*ProvisioningPayload, error)
}
