// Package migrations embeds the SQL migration files and hands them to goose
// for server bootstrap and integration tests.
package migrations

import (
	"database/sql"
	"embed"

	"github.com/pressly/goose/v3"
)

// FS holds the itineraries/days/activities schema migrations.
//
//go:embed *.sql
var FS embed.FS

// NewProvider returns a goose provider for the embedded schema on db.
func NewProvider(db *sql.DB) (*goose.Provider, error) {
	return goose.NewProvider(goose.DialectPostgres, db, FS)
}
