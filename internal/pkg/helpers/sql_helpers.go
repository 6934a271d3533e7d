package helpers

import "database/sql"

// NullString converts a string value to sql.NullString.
// An empty string maps to SQL NULL.
func NullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// NullInt64 converts an int64 to sql.NullInt64.
// A zero value maps to SQL NULL.
func NullInt64(i int64) sql.NullInt64 {
	if i == 0 {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: i, Valid: true}
}
