package trips

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/planmytrip/tripstore/internal/logging"
)

var fixedNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func newTestRepository(t *testing.T) (*TripRepository, *memStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store := newMemStore()
	s := NewTripRepository(db, &fakeRepoManager{m: store}, logging.Nop(), sql.LevelReadCommitted)
	s.now = func() time.Time { return fixedNow }
	return s, store, mock
}
