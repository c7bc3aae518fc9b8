// Package ingest adapts the output of layout-ingestion collaborators to the
// model used by the outline pipeline.
//
// The page-layout parsing itself is external: a collaborator reads the page
// description format and reports, per page, blocks of lines of spans with
// text, bounding boxes, and font information. This package consumes two
// forms of that contract:
//
//   - [OpenLayout] / [ReadLayout] - a JSON layout dump with geometry in
//     points, validated against an embedded JSON Schema before decoding
//   - [OpenHTML] / [ReadHTML] - HTML documents, mapped to synthetic layout
//     geometry so they flow through the same pipeline
//
// Both return a [model.Document] ready for outline extraction:
//
//	doc, err := ingest.OpenLayout("report.json")
//	if err != nil {
//	    // ingestion failure; emit a placeholder result
//	}
//	result := outline.NewExtractor().Extract(doc)
package ingest
