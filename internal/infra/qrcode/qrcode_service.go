package qrcode

import (
	"fmt"
	"net/url"
	"path"
	"regexp"
	"strings"

	"safemap/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const (
	defaultSize    = 256
	cityPathPrefix = "/cities/"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              *url.URL
}

// NewQRCodeService creates a QR code service that links to city maps under baseURL
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) (service.QRCodeService, error) {
	base, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid QR base URL: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("QR base URL must be absolute: %q", baseURL)
	}

	if size <= 0 {
		size = defaultSize
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: recoveryLevel(errorCorrectionLevel),
		baseURL:              base,
	}, nil
}

func recoveryLevel(name string) qrcode.RecoveryLevel {
	switch strings.ToLower(name) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// CityURL is the link encoded in a city's share code
func (s *qrcodeService) CityURL(citySlug string) string {
	link := *s.baseURL
	link.Path = path.Join(link.Path, cityPathPrefix, citySlug)

	return link.String()
}

// GenerateCityQR renders the city link as a PNG
func (s *qrcodeService) GenerateCityQR(citySlug string) ([]byte, error) {
	if !slugPattern.MatchString(citySlug) {
		return nil, fmt.Errorf("invalid city slug: %q", citySlug)
	}

	qrCode, err := qrcode.New(s.CityURL(citySlug), s.errorCorrectionLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}

// ParseCityQR returns the slug of a scanned city link. Links to other hosts are rejected.
func (s *qrcodeService) ParseCityQR(qrData string) (string, error) {
	link, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return "", fmt.Errorf("failed to parse QR code data: %w", err)
	}

	if !strings.EqualFold(link.Host, s.baseURL.Host) {
		return "", fmt.Errorf("QR code points to foreign host: %s", link.Host)
	}

	prefix := strings.TrimRight(s.baseURL.Path, "/") + cityPathPrefix
	slug, ok := strings.CutPrefix(link.Path, prefix)
	if !ok || !slugPattern.MatchString(slug) {
		return "", fmt.Errorf("invalid city link: %s", link.Path)
	}

	return slug, nil
}
