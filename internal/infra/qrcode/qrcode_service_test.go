package qrcode

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQRCodeService_GeneratePNG(t *testing.T) {
	svc := NewQRCodeService()

	data, err := svc.GeneratePNG("https://app.example.com/sign/ORD-1?token=abc", 256)

	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 256, img.Bounds().Dx())
}

func TestQRCodeService_DefaultSize(t *testing.T) {
	svc := NewQRCodeService()

	data, err := svc.GeneratePNG("hello", 0)

	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, defaultSize, img.Bounds().Dx())
}

func TestQRCodeService_EmptyContent(t *testing.T) {
	svc := NewQRCodeService()

	_, err := svc.GeneratePNG("", 256)

	assert.Error(t, err)
}
