// Package resource builds the locator strings returned alongside every DTO.
package resource

import (
	"strconv"
	"strings"
)

// URL returns the location of a single entity within its collection,
// e.g. URL("/api/v1/vendors", 1) == "/api/v1/vendors/1".
func URL(base string, id int64) string {
	return strings.TrimRight(base, "/") + "/" + strconv.FormatInt(id, 10)
}
