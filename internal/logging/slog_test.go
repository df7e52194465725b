package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlogLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log := NewSlogLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	ctx := context.Background()

	log.Debug(ctx, "loading itinerary", "link_id", 21)
	log.Info(ctx, "place added", "entry_id", 33)
	log.Warn(ctx, "place not found", "google_place_id", "tower")
	log.Error(ctx, "failed to add place", "err", "db down")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.Contains(t, lines[0], "level=DEBUG")
	assert.Contains(t, lines[0], "link_id=21")
	assert.Contains(t, lines[1], "level=INFO")
	assert.Contains(t, lines[1], `msg="place added"`)
	assert.Contains(t, lines[2], "level=WARN")
	assert.Contains(t, lines[2], "google_place_id=tower")
	assert.Contains(t, lines[3], "level=ERROR")
	assert.Contains(t, lines[3], `err="db down"`)
}

func TestNewSlogJSON(t *testing.T) {
	var buf bytes.Buffer
	log, err := newSlogJSON("warn", &buf)
	require.NoError(t, err)

	op := log.With("op", "RemoveItineraryEntryByGoogleID", "user_id", 7)
	op.Info(context.Background(), "place removed")
	assert.Empty(t, buf.String())

	op.Warn(context.Background(), "version conflict", "link_id", 21)
	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "WARN", lines[0]["level"])
	assert.Equal(t, "version conflict", lines[0]["msg"])
	assert.Equal(t, "RemoveItineraryEntryByGoogleID", lines[0]["op"])
	assert.EqualValues(t, 7, lines[0]["user_id"])
	assert.EqualValues(t, 21, lines[0]["link_id"])

	_, err = newSlogJSON("verbose", &buf)
	assert.ErrorContains(t, err, `invalid log level "verbose"`)
}
