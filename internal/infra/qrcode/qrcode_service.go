// Package qrcode renders QR codes for document signing links.
package qrcode

import (
	"fmt"

	"stockhub/internal/domain/service"

	"github.com/skip2/go-qrcode"
)

const defaultSize = 256

type qrcodeService struct{}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService() service.QRCodeService {
	return &qrcodeService{}
}

// GeneratePNG encodes the content into a PNG image of the given edge size.
func (s *qrcodeService) GeneratePNG(content string, size int) ([]byte, error) {
	if size <= 0 {
		size = defaultSize
	}

	qrCode, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to create QR code: %w", err)
	}

	pngBytes, err := qrCode.PNG(size)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %w", err)
	}

	return pngBytes, nil
}
