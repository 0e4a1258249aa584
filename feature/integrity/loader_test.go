package integrity

import (
	"testing"

	"altered-knowledge/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestLoader(t *testing.T) {
	// A nil db is fine until the server check runs.
	feature := NewFeature(new(mocks.Client), "kb", zap.NewNop(), nil, testData())

	assert.Equal(t, "integrity", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NotNil(t, feature.Service())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))
}
