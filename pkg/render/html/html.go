package html

import (
	"bytes"
	"fmt"
	stdhtml "html"

	"github.com/microcosm-cc/bluemonday"

	"github.com/mhelmke/wikicloud/pkg/cloud"
	"github.com/mhelmke/wikicloud/pkg/title"
)

// Default fragment classes and empty-state message.
const (
	DefaultContainerClass = "tagcloud"
	DefaultEmptyClass     = "tagcloud-empty"
	DefaultEmptyMessage   = "No categories found."
)

// Option configures the fragment renderer.
type Option func(*renderer)

type renderer struct {
	containerClass string
	emptyClass     string
	emptyMessage   string
	policy         *bluemonday.Policy
}

// WithContainerClass overrides the CSS class of the populated container.
func WithContainerClass(class string) Option {
	return func(r *renderer) { r.containerClass = class }
}

// WithEmptyClass overrides the CSS class of the empty-state element.
func WithEmptyClass(class string) Option {
	return func(r *renderer) { r.emptyClass = class }
}

// WithEmptyMessage overrides the empty-state message text.
func WithEmptyMessage(msg string) Option {
	return func(r *renderer) { r.emptyMessage = msg }
}

// Render produces the tag-cloud HTML fragment for the given entries.
//
// Entries are emitted in slice order; callers shuffle beforehand. An entry
// whose name fails URL resolution is skipped without error. An empty entry
// list yields the empty-state fragment, never an error.
func Render(entries []cloud.Entry, resolver title.Resolver, opts ...Option) []byte {
	r := newRenderer(opts...)

	var buf bytes.Buffer
	wrote := 0
	for _, e := range entries {
		url, err := resolver.CategoryURL(e.Name)
		if err != nil {
			continue
		}
		display := cloud.DisplayName(e.Name)
		fmt.Fprintf(&buf, "<a href=%q style=\"font-size: %d%%\" title=%q>%s</a>\n",
			url,
			e.FontPercent,
			stdhtml.EscapeString(fmt.Sprintf("%s (%d)", display, e.Count)),
			r.policy.Sanitize(display))
		wrote++
	}

	if wrote == 0 {
		return []byte(fmt.Sprintf("<div class=%q>%s</div>\n",
			r.emptyClass, stdhtml.EscapeString(r.emptyMessage)))
	}

	var out bytes.Buffer
	fmt.Fprintf(&out, "<div class=%q>\n", r.containerClass)
	out.Write(buf.Bytes())
	out.WriteString("</div>\n")
	return out.Bytes()
}

func newRenderer(opts ...Option) renderer {
	r := renderer{
		containerClass: DefaultContainerClass,
		emptyClass:     DefaultEmptyClass,
		emptyMessage:   DefaultEmptyMessage,
		policy:         bluemonday.StrictPolicy(),
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
