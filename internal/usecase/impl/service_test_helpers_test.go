package impl

import (
	"io"
	"log/slog"

	"stockhub/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			BcryptCost: 12,
		},
		Mail: &config.MailConfig{
			Host:     "smtp.example.com",
			Port:     587,
			From:     "noreply@stockhub.example",
			Password: "relay-secret",
		},
		CORS: &config.CORSConfig{
			Origin: "https://app.stockhub.example",
		},
		QRCode: &config.QRCodeConfig{
			Size:    256,
			BaseURL: "https://app.stockhub.example",
		},
		Storage: &config.StorageConfig{
			BucketURL:     "file:///tmp/stockhub-bucket",
			PublicBaseURL: "https://cdn.stockhub.example",
		},
	}
	cfg.SecretKey.Session = "session-secret"
	cfg.SecretKey.Action = "action-secret"

	return cfg
}
