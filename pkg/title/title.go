// Package title resolves category identifiers to navigable wiki URLs.
//
// The wiki's storage layer identifies categories by underscore-normalized
// names ("Fly_Fishing"). Not every stored string is a valid page title, so
// resolution can fail: renderers treat a failed resolution as a signal to
// silently drop the entry, never as a fatal error.
package title

import (
	"net/url"
	"strings"

	"github.com/mhelmke/wikicloud/pkg/errors"
)

// Resolver maps a normalized category name to a navigable target URL.
//
// Implementations return an error wrapping [errors.ErrCodeInvalidTitle]
// when the name can never form a valid page title. Callers use that signal
// to skip the entry.
type Resolver interface {
	CategoryURL(name string) (string, error)
}

// DefaultNamespace is the page namespace for category listing pages.
const DefaultNamespace = "Category"

// Characters that can never appear in a wiki page title.
const invalidTitleChars = "#<>[]|{}"

// WikiResolver builds category URLs under a wiki base URL, e.g.
// https://wiki.example.org/wiki/Category:Fly_Fishing.
type WikiResolver struct {
	base      string
	namespace string
}

// NewWikiResolver creates a resolver rooted at base. A trailing slash on
// base is tolerated. If namespace is empty, [DefaultNamespace] is used.
func NewWikiResolver(base, namespace string) *WikiResolver {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &WikiResolver{base: strings.TrimRight(base, "/"), namespace: namespace}
}

// CategoryURL returns the listing page URL for the named category.
func (r *WikiResolver) CategoryURL(name string) (string, error) {
	if err := Validate(name); err != nil {
		return "", err
	}
	return r.base + "/wiki/" + r.namespace + ":" + url.PathEscape(name), nil
}

// Validate reports whether name can form a valid page title.
//
// Rules follow the usual wiki title restrictions: non-empty, no characters
// from the reserved set, no control bytes, and no relative-path segments.
func Validate(name string) error {
	if name == "" {
		return errors.New(errors.ErrCodeInvalidTitle, "empty category name")
	}
	if strings.ContainsAny(name, invalidTitleChars) {
		return errors.New(errors.ErrCodeInvalidTitle, "reserved character in %q", name)
	}
	for _, r := range name {
		if r < 0x20 || r == 0x7f {
			return errors.New(errors.ErrCodeInvalidTitle, "control character in %q", name)
		}
	}
	if name == "." || name == ".." || strings.Contains(name, "./") || strings.Contains(name, "/.") {
		return errors.New(errors.ErrCodeInvalidTitle, "relative path segment in %q", name)
	}
	return nil
}

// Ensure WikiResolver implements Resolver.
var _ Resolver = (*WikiResolver)(nil)
