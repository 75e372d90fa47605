package repository

import "database/sql"

// NullString writes s as SQL NULL when it is empty.
func NullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

// EmptyIfNull scans a nullable text column into dst, storing "" for NULL.
func EmptyIfNull(dst *string) sql.Scanner {
	return emptyIfNull{dst: dst}
}

type emptyIfNull struct {
	dst *string
}

func (e emptyIfNull) Scan(src any) error {
	var ns sql.NullString
	if err := ns.Scan(src); err != nil {
		return err
	}
	*e.dst = ns.String
	return nil
}
