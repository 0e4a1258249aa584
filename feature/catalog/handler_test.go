package catalog

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"altered-knowledge/core/catalog"
	"altered-knowledge/core/session"
	"altered-knowledge/core/storage/mocks"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) *fiber.App {
	client := mocks.Bucket(map[string]string{
		"CARDS/EN/CORE/AX/ALT_CORE_B_AX_04_C.json":  `{"name":"Daring Porter","cost":2}`,
		"CARDS/DE/CORE/AX/ALT_CORE_B_AX_04_R1.json": `{"name":"Daring Porter","cost":2}`,
		"CARDS/EN/CORE/LY/ALT_CORE_B_LY_10_C.json":  `{"name":"Kélon","cost":3}`,
	})
	cfg := session.Config{Player: "me", CardsPrefix: "CARDS/", CollectionPrefix: "COLLECTION/", UniquesPrefix: "UNIQUES/cards/"}
	store := session.NewStore(time.Minute, func(ctx context.Context, player string) (*session.Session, error) {
		return session.Open(ctx, client, "kb", cfg, zap.NewNop())
	})
	t.Cleanup(store.Close)

	app := fiber.New()
	NewHandler(NewService(store, "me", zap.NewNop())).RegisterRoutes(app)
	return app
}

func TestHandleCard(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/cards/ALT_CORE_B_LY_10_C", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var card catalog.Card
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&card))
	assert.Equal(t, "Kélon", card.Name)
	assert.Equal(t, "LY", card.Faction)
	assert.Equal(t, catalog.RarityCommon, card.Rarity)

	resp, err = app.Test(httptest.NewRequest("GET", "/cards/NOPE", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestHandleSearch(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/cards?name=kelon", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	var cards []catalog.Card
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cards))
	require.Len(t, cards, 1)
	assert.Equal(t, "ALT_CORE_B_LY_10_C", cards[0].ID)

	resp, err = app.Test(httptest.NewRequest("GET", "/cards?name=Daring%20Porter", nil))
	require.NoError(t, err)
	cards = nil
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&cards))
	assert.Len(t, cards, 2)

	resp, err = app.Test(httptest.NewRequest("GET", "/cards", nil))
	require.NoError(t, err)
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleCounts(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/cards/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var counts catalog.Counts
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&counts))
	assert.Equal(t, 3, counts.Total)
	assert.Equal(t, map[string]int{"Common": 2, "Rare": 1}, counts.ByRarity)
	assert.Equal(t, map[string]int{"AX": 2, "LY": 1}, counts.ByFaction)
}
