package repository

import "strings"

// joinList flattens a list column into its comma separated storage form.
func joinList(items []string) string {
	return strings.Join(items, ",")
}

// splitList reverses joinList.  An empty column yields an empty slice,
// never nil, so JSON encodes [] instead of null.
func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

// nullableID maps 0 to NULL for optional foreign key columns.
func nullableID(id uint64) any {
	if id == 0 {
		return nil
	}
	return id
}
