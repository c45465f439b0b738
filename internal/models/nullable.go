package models

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// NullInt64 is a nullable integer column. On the wire it accepts a JSON
// number, a numeric string, an empty string or null, because the dashboard
// posts raw form values.
type NullInt64 struct {
	sql.NullInt64
}

// NewNullInt64 returns a valid NullInt64 holding v.
func NewNullInt64(v int64) NullInt64 {
	return NullInt64{sql.NullInt64{Int64: v, Valid: true}}
}

// Present reports whether the value names a row: non-null and non-zero.
func (n NullInt64) Present() bool {
	return n.Valid && n.Int64 != 0
}

// MarshalJSON emits a number or null.
func (n NullInt64) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return strconv.AppendInt(nil, n.Int64, 10), nil
}

// UnmarshalJSON implements json.Unmarshaler.
func (n *NullInt64) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*n = NullInt64{}
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*n = NullInt64{}
			return nil
		}
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid integer value %s", data)
	}
	*n = NewNullInt64(v)
	return nil
}
