package utils

import "strings"

var sortFields = map[string]bool{
	"createdAt": true,
	"updatedAt": true,
	"dueDate":   true,
	"title":     true,
	"status":    true,
	"priority":  true,
}

// ParseSort interprets a sort token such as "-createdAt" or "title". A
// leading dash means descending. Unknown or empty fields fall back to
// newest-created-first so the value is always safe to feed into an ORDER BY.
func ParseSort(sortBy string) (field string, desc bool) {
	desc = strings.HasPrefix(sortBy, "-")
	field = strings.TrimPrefix(sortBy, "-")
	if !sortFields[field] {
		return "createdAt", true
	}
	return field, desc
}
