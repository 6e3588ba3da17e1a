// Package html renders a sized tag cloud as an HTML fragment.
//
// # Output
//
// The populated fragment is a single container element with one anchor per
// entry, carrying the category URL, an inline font-size percentage, a
// hover title with the display name and raw count, and the display name as
// visible text:
//
//	<div class="tagcloud">
//	<a href=".../wiki/Category:Rivers" style="font-size: 200%" title="Rivers (14)">Rivers</a>
//	...
//	</div>
//
// When no entries survive selection, a distinct empty-state element is
// emitted instead so hosts can style the two cases separately.
//
// # Safety
//
// Category names originate from user-created pages. Visible text passes
// through a strict bluemonday policy that strips and escapes any markup;
// attribute values are HTML-escaped. Entries whose name cannot be resolved
// to a valid page title are silently dropped, per the graceful-omission
// contract of pkg/title.
package html
