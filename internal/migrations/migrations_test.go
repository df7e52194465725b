package migrations

import (
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrations_EmbeddedAndAnnotated(t *testing.T) {
	files, err := fs.Glob(Migrations, "*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, name := range files {
		b, err := fs.ReadFile(Migrations, name)
		require.NoError(t, err)
		body := string(b)
		assert.Contains(t, body, "-- +goose Up", name)
		assert.Contains(t, body, "-- +goose Down", name)
	}
}

func TestMigrations_InitCreatesAllTables(t *testing.T) {
	b, err := fs.ReadFile(Migrations, "00001_init.sql")
	require.NoError(t, err)
	body := string(b)

	for _, table := range []string{"users", "itineraries", "user_itineraries", "places", "itinerary_places"} {
		assert.True(t, strings.Contains(body, "CREATE TABLE "+table+" ("), "missing table %s", table)
	}
	assert.Contains(t, body, "UNIQUE (itinerary_id, place_id)")
}
