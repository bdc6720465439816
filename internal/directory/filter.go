// Package directory holds the view-independent logic of the employee screen:
// search filtering and the presentation state the screen renders.
package directory

import (
	"strings"

	"github.com/Makepad-fr/staff/internal/model"
)

// Filter returns the employees matching query, in their original order.
// Name and position match case-insensitively; phone matches the raw digits as typed.
func Filter(list []model.Employee, query string) []model.Employee {
	query = strings.TrimSpace(query)
	if query == "" {
		return list
	}
	lower := strings.ToLower(query)

	out := make([]model.Employee, 0, len(list))
	for _, e := range list {
		if matches(e, query, lower) {
			out = append(out, e)
		}
	}
	return out
}

// matches reports whether e matches query; lower is query already lowercased.
func matches(e model.Employee, query, lower string) bool {
	return strings.Contains(strings.ToLower(e.Name), lower) ||
		strings.Contains(strings.ToLower(e.Position), lower) ||
		strings.Contains(e.Phone, query)
}
