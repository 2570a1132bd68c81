package migrations

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v4/pgxpool"
)

//go:embed schema.sql
var schema string

// Apply runs the embedded schema statements one by one. All statements are
// idempotent (IF NOT EXISTS), so Apply is safe to call on every startup.
func Apply(ctx context.Context, db *pgxpool.Pool) error {
	const op = "migrations.Apply"

	for _, stmt := range strings.Split(schema, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}

		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	return nil
}
