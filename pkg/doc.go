// Package pkg provides the core libraries for wikicloud tag-cloud rendering.
//
// # Overview
//
// Wikicloud turns wiki category page counts into weighted tag clouds: the
// bigger a category, the bigger its link. The pkg directory is organized
// into five main areas:
//
//  1. [cloud] - Domain logic (filtering, sorting, shuffling, font scaling)
//  2. [source] - Category-count backends (file, MongoDB, in-memory)
//  3. [render] - Output renderers (HTML fragment, Graphviz, terminal)
//  4. [cache] - Fragment caching (file, Redis, null)
//  5. [pipeline] - Orchestration (parse attributes → fetch → shape → render)
//
// # Architecture
//
// The typical data flow through wikicloud:
//
//	Tag attributes (min, max, exclude, ...)
//	         ↓
//	    [cloud] package (parse config, select, size, shuffle)
//	         ↓
//	    [source] package (fetch name/count pairs)
//	         ↓
//	    [render] package (HTML fragment, DOT/SVG/PNG, terminal)
//	         ↓
//	    [cache] package (store the fragment under its config key)
//
// # Quick Start
//
//	src, err := file.Load("counts.json")
//	if err != nil {
//	    return err
//	}
//	resolver := title.NewWikiResolver("https://wiki.example.org", "")
//	runner := pipeline.NewRunner(src, resolver, nil, nil)
//	result, err := runner.Execute(ctx, map[string]string{"min": "2"})
package pkg
