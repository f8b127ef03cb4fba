package database

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/01moynul/umkm-web-golang/internal/config"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

//go:embed schema.sql
var schemaSQL string

// OpenDB creates the MySQL connection pool from the database config
// and pings it before handing it out.
func OpenDB(ctx context.Context, cfg config.DatabaseConfig) (*sqlx.DB, error) {
	dsn, err := NormalizeDSN(cfg.DSN)
	if err != nil {
		return nil, err
	}

	db, err := sqlx.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return db, nil
}

// NormalizeDSN forces the driver options the store relies on: DATETIME
// columns scan into time.Time, and UPDATE reports matched rather than changed
// rows so saving an unchanged form is not mistaken for a missing record.
func NormalizeDSN(dsn string) (string, error) {
	mcfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("parse DSN: %w", err)
	}
	mcfg.ParseTime = true
	mcfg.ClientFoundRows = true
	if mcfg.Loc == nil {
		mcfg.Loc = time.UTC
	}
	return mcfg.FormatDSN(), nil
}

// Migrate applies the embedded schema. Every statement is idempotent,
// so it is safe to run on each start.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	for i, stmt := range SchemaStatements() {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}
	return nil
}

// SchemaStatements splits the embedded schema into single statements,
// since the driver runs one statement per Exec by default.
func SchemaStatements() []string {
	var stmts []string
	for _, part := range strings.Split(schemaSQL, ";") {
		if s := strings.TrimSpace(part); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
