package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateCityQR generates a PNG QR code linking to a city's safety map
	GenerateCityQR(citySlug string) ([]byte, error)

	// ParseCityQR extracts the city slug from scanned QR code data
	ParseCityQR(qrData string) (string, error)
}
