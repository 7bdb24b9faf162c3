// Package database provides integration test helpers for the capture store.
package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/funnel-ops/funnel/pkg/database"
	"github.com/funnel-ops/funnel/test/util"
)

// NewTestClient creates a capture store client on an isolated test schema.
// Cleanup is registered by SetupTestDatabase.
func NewTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)

	drv := entsql.OpenDB(dialect.Postgres, db)
	require.NoError(t, database.CreateSearchIndexes(ctx, drv))

	return database.NewClientFromEnt(entClient, db)
}
