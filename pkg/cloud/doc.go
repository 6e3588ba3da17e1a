// Package cloud implements the core category tag-cloud transformation.
//
// A tag cloud displays category names with font size proportional to the
// number of pages in each category, in randomized visual order. This package
// owns the full selection and sizing pipeline; rendering to HTML, DOT, or
// the terminal lives in pkg/render.
//
// # Pipeline
//
// The transformation runs in four stages, each a small pure function:
//
//  1. [ParseConfig]: raw tag attributes → validated [Config]
//  2. [Select]: filter by min count / only / exclude, sort desc, limit
//  3. [Sizes]: map counts to font-size percentages over the selected set
//  4. [Shuffle]: uniform random permutation of the display order
//
// Shuffling is a pure display concern: it never changes which entries were
// selected nor their computed sizes. Callers that need reproducible output
// (tests, cached previews) pass a seeded *rand.Rand.
//
// # Name normalization
//
// Category identifiers use the underscore form ("Fly_Fishing"). Attribute
// lists are normalized with [Normalize] before set membership is evaluated,
// so the attribute value "Fly Fishing" matches the stored identifier.
// [DisplayName] converts back to the spaced form for presentation.
package cloud
