// Package model provides the intermediate representation (IR) for document
// layout and for the reconstructed outline.
//
// This package defines the data structures produced by the layout-ingestion
// collaborators and consumed by the heuristic pipeline, together with the
// final output artifact. The pipeline never mutates a Document; it only
// derives new structures from it.
//
// # Document Structure
//
// The [Document] type represents one document as a sequence of pages:
//
//	doc := model.NewDocument("report.pdf")
//	doc.AddPage(page)
//
// Each [Page] contains its dimensions and an ordered list of [Block] values
// in document reading order. Blocks contain [Line] values, and lines contain
// [Span] values, runs of text sharing one font size and style.
//
// # Geometry
//
// Geometric primitives support position and layout calculations:
//
//   - [BBox] - bounding box with intersection and union calculations
//   - [Point] - 2D point
//
// Coordinates follow the ingestion contract: the origin is the top-left
// corner of the page, Y increases downward, and units are typographic points.
//
// # Outline
//
// The [ExtractionResult] type is the sole externally visible artifact per
// document: a title plus an ordered sequence of [OutlineEntry] values. It
// serializes to the JSON shape
//
//	{"title": "...", "outline": [{"level": "H1", "text": "...", "page": 1}]}
package model
