// Package render provides the output renderers for tag clouds.
//
// # Overview
//
// Every renderer consumes the same input: sized, shuffled entry slices
// produced by the cloud package. The subpackages differ only in the
// surface they target:
//
//   - [html] - the embeddable fragment a wiki serves inline
//   - [dot] - Graphviz DOT source, plus SVG and PNG rasterization
//   - [term] - styled terminal output via lipgloss
//
// Selection, sizing, and ordering are decided before rendering; renderers
// never reorder or re-filter beyond dropping entries whose category name
// cannot be resolved to a link.
package render
