package checks

import (
	"path/filepath"
	"testing"

	"altered-knowledge/core/database"
	"altered-knowledge/feature/history"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

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

func validationRunColumns() *sqlmock.Rows {
	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	rows.AddRow("id", "bigint(20) unsigned", "NO", "PRI", nil, "auto_increment")
	rows.AddRow("player", "varchar(64)", "YES", "MUL", nil, "")
	rows.AddRow("owner", "varchar(64)", "YES", "", nil, "")
	rows.AddRow("deck", "varchar(128)", "YES", "MUL", nil, "")
	rows.AddRow("format", "varchar(64)", "YES", "", nil, "")
	rows.AddRow("mode", "varchar(16)", "YES", "", nil, "")
	rows.AddRow("verdict", "varchar(16)", "YES", "", nil, "")
	rows.AddRow("total_cards", "int(11)", "YES", "", nil, "")
	rows.AddRow("not_owned", "int(11)", "YES", "", nil, "")
	rows.AddRow("issues", "int(11)", "YES", "", nil, "")
	rows.AddRow("report", "text", "YES", "", nil, "")
	rows.AddRow("created_at", "datetime(3)", "YES", "", nil, "")
	return rows
}

func TestCheckServerIntegrity_NilDB(t *testing.T) {
	report, err := CheckServerIntegrity(nil)
	assert.Error(t, err)
	assert.Nil(t, report)
}

func TestCheckServerIntegrity_Matched(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SHOW COLUMNS FROM `validation_runs`").WillReturnRows(validationRunColumns())

	report, err := CheckServerIntegrity(db)
	require.NoError(t, err)
	assert.True(t, report.Matched)
	assert.Equal(t, "mysql", report.Driver)

	tbl := report.Tables["validation_runs"]
	assert.Equal(t, "ok", tbl.Status)
	assert.Empty(t, tbl.MissingColumns)
	assert.Empty(t, tbl.TypeMismatches)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCheckServerIntegrity_MissingAndMismatch(t *testing.T) {
	db, mock := setupMockDB(t)

	rows := sqlmock.NewRows([]string{"Field", "Type", "Null", "Key", "Default", "Extra"})
	rows.AddRow("id", "int(11)", "NO", "PRI", nil, "")
	rows.AddRow("deck", "int(11)", "YES", "", nil, "")
	mock.ExpectQuery("SHOW COLUMNS FROM `validation_runs`").WillReturnRows(rows)

	report, err := CheckServerIntegrity(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)

	tbl := report.Tables["validation_runs"]
	assert.Equal(t, "error", tbl.Status)
	assert.Contains(t, tbl.MissingColumns, "report")
	assert.Contains(t, tbl.MissingColumns, "player")
	assert.Equal(t, []string{"deck: expected varchar(128), got int(11)"}, tbl.TypeMismatches)
}

func TestCheckServerIntegrity_QueryError(t *testing.T) {
	db, mock := setupMockDB(t)
	mock.ExpectQuery("SHOW COLUMNS FROM `validation_runs`").WillReturnError(assert.AnError)

	report, err := CheckServerIntegrity(db)
	require.NoError(t, err)
	assert.False(t, report.Matched)
	assert.Len(t, report.Errors, 1)
}

func TestCheckServerIntegrity_SQLiteMigrated(t *testing.T) {
	db, err := database.Connect(database.Config{
		Driver: database.DriverSQLite,
		Name:   filepath.Join(t.TempDir(), "history.db"),
	})
	require.NoError(t, err)
	require.NoError(t, history.NewStore(db, 10).Migrate())

	report, err := CheckServerIntegrity(db)
	require.NoError(t, err)
	assert.True(t, report.Matched, "%+v", report.Tables)
}

func TestParseGormTags(t *testing.T) {
	assert.Equal(t, "id", parseGormColumn("column:id;primaryKey"))
	assert.Equal(t, "deck", parseGormColumn("column:deck;type:varchar(128);index"))
	assert.Equal(t, "int", parseGormType("column:issues;type:int"))
	assert.Equal(t, "", parseGormType("column:id"))
}
