package dbx

import (
	"database/sql"
	"fmt"
	"strings"
)

var isolationLevels = map[string]sql.IsolationLevel{
	"":                 sql.LevelDefault,
	"default":          sql.LevelDefault,
	"read_uncommitted": sql.LevelReadUncommitted,
	"read_committed":   sql.LevelReadCommitted,
	"repeatable_read":  sql.LevelRepeatableRead,
	"serializable":     sql.LevelSerializable,
}

// ParseIsolation maps a configuration name such as "read_committed" onto a
// sql.IsolationLevel. Names are case-insensitive; dashes and spaces are
// accepted in place of underscores.
func ParseIsolation(name string) (sql.IsolationLevel, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	key = strings.NewReplacer("-", "_", " ", "_").Replace(key)

	level, ok := isolationLevels[key]
	if !ok {
		return sql.LevelDefault, fmt.Errorf("unknown isolation level %q", name)
	}
	return level, nil
}
