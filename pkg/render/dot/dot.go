// Package dot renders a tag cloud as a Graphviz graph.
//
// The cloud maps naturally onto an edge-less graph: one node per category,
// with the node font size driven by the computed percentage. Graphviz's
// neato engine packs the nodes into a compact arrangement, which gives a
// serviceable image rendition of the cloud for docs and dashboards.
//
// [ToDOT] produces the DOT source; [RenderSVG] and [RenderPNG] rasterize it
// with goccy/go-graphviz.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/mhelmke/wikicloud/pkg/cloud"
	"github.com/mhelmke/wikicloud/pkg/title"
)

// BasePointSize is the font size in points of an entry at 100%.
const BasePointSize = 14.0

// Options configures DOT generation.
type Options struct {
	// Resolver adds a clickable URL to each node and drops entries whose
	// name cannot be resolved. When nil, nodes carry no URL and nothing
	// is dropped.
	Resolver title.Resolver
}

// ToDOT converts sized entries to Graphviz DOT source. Entries are emitted
// in slice order; callers shuffle beforehand.
func ToDOT(entries []cloud.Entry, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("graph cloud {\n")
	buf.WriteString("  layout=\"neato\";\n")
	buf.WriteString("  overlap=false;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=plaintext, fontname=\"Helvetica\"];\n")
	buf.WriteString("\n")

	for _, e := range entries {
		attrs := fmt.Sprintf("label=%q, fontsize=%.1f",
			cloud.DisplayName(e.Name), BasePointSize*float64(e.FontPercent)/100)
		if opts.Resolver != nil {
			url, err := opts.Resolver.CategoryURL(e.Name)
			if err != nil {
				continue
			}
			attrs += fmt.Sprintf(", URL=%q", url)
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", e.Name, attrs)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders DOT source to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG, normalizeViewBox)
}

// RenderPNG renders DOT source to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG, nil)
}

func render(dot string, format graphviz.Format, post func([]byte) []byte) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if post != nil {
		return post(buf.Bytes()), nil
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the Graphviz SVG header so the fragment embeds
// cleanly: origin at 0 0 and explicit pixel dimensions.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
