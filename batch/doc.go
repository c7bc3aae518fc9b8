// Package batch runs outline extraction over a directory of documents.
//
// A Processor scans an input directory for layout dumps (.json) and HTML
// files (.html, .htm), extracts an outline from each, and writes one
// result file per input into the output directory. Documents are
// processed concurrently with a bounded worker count; each document is
// an independent failure domain, so one bad input never aborts the run.
// A document that cannot be ingested still produces a result file with
// the error title and an empty outline.
//
// Basic usage:
//
//	p := batch.NewProcessor(batch.Options{
//		InputDir:  "input",
//		OutputDir: "output",
//	})
//	summary, err := p.Run(context.Background())
//
// Extraction settings can be loaded from a YAML file with LoadConfig and
// passed through Options.Config.
package batch
