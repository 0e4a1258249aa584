package integrity

import (
	"context"
	"testing"

	"altered-knowledge/core/session"
	"altered-knowledge/core/storage/mocks"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB creates a mock GORM DB for testing.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("Failed to open mock sql db: %v", err)
	}

	dialector := mysql.New(mysql.Config{
		Conn:                      db,
		SkipInitializeWithVersion: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open gorm db: %v", err)
	}

	return gormDB, mock
}

func testData() session.Config {
	return session.Config{
		Player:           "me",
		CardsPrefix:      "CARDS/",
		CollectionPrefix: "COLLECTION/",
		UniquesPrefix:    "UNIQUES/cards/",
		DecksPrefix:      "DECKS/",
		RulesObject:      "RULES/constructed.yaml",
		Concurrency:      2,
	}
}

func TestService_Structure(t *testing.T) {
	mockClient := new(mocks.Client)
	svc := NewService(mockClient, "kb", zap.NewNop(), nil, testData())

	t.Run("CheckStructure", func(t *testing.T) {
		mockClient.On("BucketExists", mock.Anything, "kb").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "kb", mock.Anything).Return(mocks.Objects())

		missing, err := svc.CheckStructure(context.Background())
		assert.NoError(t, err)
		assert.Len(t, missing, 5)
	})

	t.Run("FixStructure", func(t *testing.T) {
		mockClient.On("PutObject", mock.Anything, "kb", "DECKS/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)
		err := svc.FixStructure(context.Background(), []string{"DECKS"})
		assert.NoError(t, err)
		mockClient.AssertCalled(t, "PutObject", mock.Anything, "kb", "DECKS/", mock.Anything, int64(0), mock.Anything)
	})
}

func TestService_CollectionAndRules(t *testing.T) {
	client := mocks.Bucket(map[string]string{
		"COLLECTION/me.json":     `[{"card_id":"A","count":2},{"card_id":"B"}]`,
		"RULES/constructed.yaml": "format: constructed\ndefault_copy_limit: 3\n",
	})
	svc := NewService(client, "kb", zap.NewNop(), nil, testData())

	colReport, err := svc.CheckCollection(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, colReport.Rows)
	assert.Equal(t, 1, colReport.Errors)

	rulesReport, err := svc.CheckRules(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "ok", rulesReport.Status)
}

func TestService_CheckServer(t *testing.T) {
	t.Run("No Database", func(t *testing.T) {
		svc := NewService(new(mocks.Client), "kb", zap.NewNop(), nil, testData())
		_, err := svc.CheckServer()
		assert.ErrorIs(t, err, ErrNoDatabase)
	})

	t.Run("Query Error", func(t *testing.T) {
		db, sqlMock := setupMockDB(t)
		sqlMock.ExpectQuery("SHOW COLUMNS FROM `validation_runs`").WillReturnError(assert.AnError)

		svc := NewService(new(mocks.Client), "kb", zap.NewNop(), db, testData())
		report, err := svc.CheckServer()
		require.NoError(t, err)
		assert.False(t, report.Matched)
		assert.NotEmpty(t, report.Errors)
	})
}
