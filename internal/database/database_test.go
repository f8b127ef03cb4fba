package database

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSchemaStatements(t *testing.T) {
	stmts := SchemaStatements()
	require.NotEmpty(t, stmts)

	tables := []string{
		"company_info", "product_categories", "products", "gallery", "online_shops",
		"blog_articles", "job_postings", "job_applications", "contact_messages",
		"admin_profiles", "menu_items",
	}
	for _, table := range tables {
		found := false
		for _, s := range stmts {
			if strings.HasPrefix(s, "CREATE TABLE IF NOT EXISTS "+table+" ") {
				found = true
				break
			}
		}
		assert.True(t, found, "missing table %s", table)
	}
	for _, s := range stmts {
		assert.NotContains(t, s, ";")
	}
}

func TestMigrate(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer mockDB.Close()
	db := sqlx.NewDb(mockDB, "sqlmock")

	for _, s := range SchemaStatements() {
		mock.ExpectExec(s).WillReturnResult(sqlmock.NewResult(0, 0))
	}

	require.NoError(t, Migrate(context.Background(), db))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMigrate_StopsOnError(t *testing.T) {
	mockDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	defer mockDB.Close()
	db := sqlx.NewDb(mockDB, "sqlmock")

	stmts := SchemaStatements()
	mock.ExpectExec(stmts[0]).WillReturnError(errors.New("access denied"))

	err = Migrate(context.Background(), db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "schema statement 1")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNormalizeDSN(t *testing.T) {
	dsn, err := NormalizeDSN("user:pass@tcp(db:3306)/umkm_web")
	require.NoError(t, err)
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "clientFoundRows=true")
	assert.True(t, strings.HasPrefix(dsn, "user:pass@tcp(db:3306)/umkm_web?"))

	_, err = NormalizeDSN("this is not a dsn")
	assert.Error(t, err)
}
