package cloud

import "strings"

// Category is a single (name, page count) pair produced by a data source.
// Name is the underscore-normalized identifier used by the wiki's storage
// layer; Count is the number of pages in the category and is never negative.
type Category struct {
	Name  string `json:"name" bson:"name"`
	Count int    `json:"count" bson:"count"`
}

// Entry is a category with its computed font size, ready for rendering.
type Entry struct {
	Category
	FontPercent int `json:"font_percent"`
}

// Normalize converts a raw attribute item to the identifier form used by
// the data source: surrounding whitespace is trimmed and internal spaces
// become underscores. Empty input normalizes to the empty string.
func Normalize(name string) string {
	return strings.ReplaceAll(strings.TrimSpace(name), " ", "_")
}

// DisplayName converts a normalized identifier back to its human-readable
// form by replacing underscores with spaces.
func DisplayName(name string) string {
	return strings.ReplaceAll(name, "_", " ")
}
