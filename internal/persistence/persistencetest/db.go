// Package persistencetest opens throwaway in-memory databases for
// storage-backed tests.
package persistencetest

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"

	"threadline/internal/core"
	"threadline/internal/persistence"
)

// Open returns a migrated in-memory database scoped to the test.
func Open(t *testing.T) *persistence.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := persistence.Open(sqlite.Open(dsn))
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&core.UserModel{},
		&core.PostModel{},
		&core.CommentModel{},
		&core.LikeModel{},
		&core.NotificationModel{},
	))

	t.Cleanup(func() {
		db.Shutdown(context.Background()) //nolint:errcheck
	})

	return db
}
