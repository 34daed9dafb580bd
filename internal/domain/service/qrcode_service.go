package service

// QRCodeService renders QR code images for document signing links.
type QRCodeService interface {
	// GeneratePNG encodes the content into a PNG image of the given edge size
	// in pixels.
	GeneratePNG(content string, size int) ([]byte, error)
}
