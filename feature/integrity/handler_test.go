package integrity

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"altered-knowledge/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T, client *mocks.Client) (*fiber.App, sqlmock.Sqlmock) {
	app := fiber.New()
	db, sqlMock := setupMockDB(t)
	svc := NewService(client, "kb", zap.NewNop(), db, testData())
	NewHandler(svc).RegisterRoutes(app)
	return app, sqlMock
}

func decode(t *testing.T, r io.Reader) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(r).Decode(&body))
	return body
}

func TestHandleStructureCheck(t *testing.T) {
	t.Run("Checked", func(t *testing.T) {
		app, _ := setupTestApp(t, mocks.Bucket(map[string]string{"CARDS/x.json": "{}"}))

		resp, err := app.Test(httptest.NewRequest("GET", "/integrity/structure", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		body := decode(t, resp.Body)
		assert.Equal(t, "checked", body["status"])
		assert.Equal(t, []any{"COLLECTION", "DECKS", "RULES", "UNIQUES"}, body["missing"])
	})

	t.Run("Fixed", func(t *testing.T) {
		client := mocks.Bucket(map[string]string{"CARDS/x.json": "{}"})
		app, _ := setupTestApp(t, client)

		resp, err := app.Test(httptest.NewRequest("GET", "/integrity/structure?fix=true", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		body := decode(t, resp.Body)
		assert.Equal(t, "fixed", body["status"])
		client.AssertNumberOfCalls(t, "PutObject", 4)
	})

	t.Run("Bucket Error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "kb").Return(false, assert.AnError)
		app, _ := setupTestApp(t, client)

		resp, err := app.Test(httptest.NewRequest("GET", "/integrity/structure", nil))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
	})

	t.Run("Fix Error", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("BucketExists", mock.Anything, "kb").Return(true, nil)
		client.On("ListObjects", mock.Anything, "kb", mock.Anything).Return(mocks.Objects())
		client.On("PutObject", mock.Anything, "kb", mock.Anything, mock.Anything, int64(0), mock.Anything).
			Return(minio.UploadInfo{}, assert.AnError)
		app, _ := setupTestApp(t, client)

		resp, err := app.Test(httptest.NewRequest("GET", "/integrity/structure?fix=true", nil))
		require.NoError(t, err)
		assert.Equal(t, 500, resp.StatusCode)
	})
}

func TestHandleCollectionCheck(t *testing.T) {
	app, _ := setupTestApp(t, mocks.Bucket(map[string]string{
		"COLLECTION/me.json": `[{"card_id":"A","count":120}]`,
	}))

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/collection", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decode(t, resp.Body)
	assert.Equal(t, float64(1), body["warnings"])
	assert.Equal(t, float64(0), body["errors"])
}

func TestHandleRulesCheck(t *testing.T) {
	app, _ := setupTestApp(t, mocks.Bucket(map[string]string{}))

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity/rules", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "missing", decode(t, resp.Body)["status"])
}

func TestHandleServerCheck(t *testing.T) {
	t.Run("Report", func(t *testing.T) {
		app, sqlMock := setupTestApp(t, new(mocks.Client))
		sqlMock.ExpectQuery("SHOW COLUMNS FROM `validation_runs`").
			WillReturnRows(sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"}))

		resp, err := app.Test(httptest.NewRequest("GET", "/integrity/server", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		body := decode(t, resp.Body)
		assert.Equal(t, false, body["matched"])
	})

	t.Run("No Database", func(t *testing.T) {
		app := fiber.New()
		NewHandler(NewService(new(mocks.Client), "kb", zap.NewNop(), nil, testData())).RegisterRoutes(app)

		resp, err := app.Test(httptest.NewRequest("GET", "/integrity/server", nil))
		require.NoError(t, err)
		assert.Equal(t, 503, resp.StatusCode)
	})
}

func TestHandleIntegrityCheck(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "kb").Return(false, assert.AnError)
	client.On("ListObjects", mock.Anything, "kb", mock.Anything).Return(mocks.Objects())
	client.On("GetObject", mock.Anything, "kb", "RULES/constructed.yaml", mock.Anything).
		Return(nil, mocks.NoSuchKey("RULES/constructed.yaml"))
	app, sqlMock := setupTestApp(t, client)
	sqlMock.ExpectQuery(".*").WillReturnError(assert.AnError)

	resp, err := app.Test(httptest.NewRequest("GET", "/integrity", nil), 2000)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body := decode(t, resp.Body)
	assert.Equal(t, "error", body["structure"].(map[string]any)["status"])
	assert.Equal(t, float64(0), body["collection"].(map[string]any)["files"])
	assert.Equal(t, "missing", body["rules"].(map[string]any)["status"])
	assert.Equal(t, false, body["server"].(map[string]any)["matched"])
}
