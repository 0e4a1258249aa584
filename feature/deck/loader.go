package deck

import (
	"altered-knowledge/core/session"
	"altered-knowledge/core/storage"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Deck feature.
func NewFeature(sessions *session.Store, client storage.Client, bucket string, data session.Config, logger *zap.Logger, recorder Recorder) *Feature {
	svc := NewService(sessions, client, bucket, data, logger, recorder)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "deck"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the feature's service for use outside HTTP, such as the CLI.
func (f *Feature) Service() *Service {
	return f.service
}
