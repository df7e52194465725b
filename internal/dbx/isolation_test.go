package dbx

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIsolation(t *testing.T) {
	tests := []struct {
		in   string
		want sql.IsolationLevel
	}{
		{"", sql.LevelDefault},
		{"default", sql.LevelDefault},
		{"read_committed", sql.LevelReadCommitted},
		{"READ-COMMITTED", sql.LevelReadCommitted},
		{"repeatable read", sql.LevelRepeatableRead},
		{" serializable ", sql.LevelSerializable},
		{"read_uncommitted", sql.LevelReadUncommitted},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseIsolation(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseIsolation_Unknown(t *testing.T) {
	_, err := ParseIsolation("snapshot")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"snapshot"`)
}
