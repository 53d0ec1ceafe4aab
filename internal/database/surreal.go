package database

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/nfrund/sculpt/internal/config"
	"github.com/surrealdb/surrealdb.go"
)

// NewSurrealDB opens, authenticates and scopes a SurrealDB connection.
func NewSurrealDB(ctx context.Context, cfg config.Provider) (*surrealdb.DB, error) {
	db, err := surrealdb.FromEndpointURLString(ctx, cfg.GetDBURL())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to surrealdb at %s: %w", redactDBURL(cfg.GetDBURL()), err)
	}

	authData := &surrealdb.Auth{
		Username: cfg.GetDBUser(),
		Password: cfg.GetDBPass(),
	}
	if _, err = db.SignIn(ctx, authData); err != nil {
		db.Close(ctx)
		return nil, fmt.Errorf("failed to sign in: %w", err)
	}

	if err = db.Use(ctx, cfg.GetDBNs(), cfg.GetDBDb()); err != nil {
		db.Close(ctx)
		return nil, fmt.Errorf("failed to use namespace/db: %w", err)
	}

	slog.InfoContext(ctx, "Connected to SurrealDB",
		"db_url", redactDBURL(cfg.GetDBURL()),
		"namespace", cfg.GetDBNs(),
		"database", cfg.GetDBDb(),
	)
	return db, nil
}

// Query executes a SurrealQL statement and returns the rows of its first result.
func Query[T any](ctx context.Context, db *surrealdb.DB, query string, params map[string]any) ([]T, error) {
	queryResults, err := surrealdb.Query[[]T](ctx, db, query, params)
	if err != nil {
		return nil, fmt.Errorf("query execution failed: %w", err)
	}
	if queryResults == nil || len(*queryResults) == 0 {
		return nil, nil
	}
	return (*queryResults)[0].Result, nil
}

// QueryOne returns the first row of Query, or nil when there is none.
func QueryOne[T any](ctx context.Context, db *surrealdb.DB, query string, params map[string]any) (*T, error) {
	results, err := Query[T](ctx, db, query, params)
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return &results[0], nil
}

// redactDBURL hides credentials embedded in a connection URL.
func redactDBURL(dbURL string) string {
	u, err := url.Parse(dbURL)
	if err != nil || u.User == nil {
		return dbURL
	}
	u.User = url.User("REDACTED")
	return strings.Replace(u.String(), "REDACTED@", "***@", 1)
}
