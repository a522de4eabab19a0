package db

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"

	"github.com/estolo/spaza-backend/internal/config"
	"github.com/estolo/spaza-backend/internal/repo"
)

// Open connects to the configured storage engine and returns the handle
// together with the matching SQL dialect.
func Open(cfg config.Config) (*sql.DB, repo.Dialect, error) {
	var driver, dsn string
	var dialect repo.Dialect

	switch cfg.Engine {
	case config.EngineSQLite:
		driver = "sqlite"
		dsn = cfg.SQLitePath
		dialect = repo.SQLiteDialect{}
	case config.EngineMySQL:
		driver = "mysql"
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%d)/%s", cfg.DBUser, cfg.DBPassword, cfg.DBHost, cfg.DBPort, cfg.DBName)
		dialect = repo.MySQLDialect{}
	case config.EnginePostgres:
		driver = "pgx"
		dsn = fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
			url.QueryEscape(cfg.DBUser), url.QueryEscape(cfg.DBPassword), cfg.DBHost, cfg.DBPort, cfg.DBName)
		dialect = repo.PostgresDialect{}
	default:
		return nil, nil, fmt.Errorf("unsupported storage engine %q", cfg.Engine)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, dialect, nil
}
