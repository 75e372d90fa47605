package query

import "strings"

// SortField is one key of a multi-key ordering.
type SortField struct {
	Field      string `json:"field"`
	Descending bool   `json:"descending"`
}

// ParseSortFields parses a comma-separated sort expression such as "-createdAt,name".
// A leading "-" marks a descending key. Empty segments are dropped.
// Field names are not validated here; sources skip names they do not recognize.
func ParseSortFields(s string) []SortField {
	if strings.TrimSpace(s) == "" {
		return nil
	}

	var fields []SortField
	for part := range strings.SplitSeq(s, ",") {
		part = strings.TrimSpace(part)

		desc := strings.HasPrefix(part, "-")
		if desc {
			part = strings.TrimSpace(part[1:])
		}

		if part == "" {
			continue
		}

		fields = append(fields, SortField{Field: part, Descending: desc})
	}

	return fields
}

// String renders the fields back into sort expression form.
func String(fields []SortField) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		if f.Descending {
			parts[i] = "-" + f.Field
		} else {
			parts[i] = f.Field
		}
	}
	return strings.Join(parts, ",")
}
