// Package outline reconstructs a document's semantic outline (title plus a
// hierarchy of H1-H5 headings) from geometric and typographic layout
// information.
//
// The input is a [model.Document] produced by a layout-ingestion
// collaborator (see the ingest package); the output is a
// [model.ExtractionResult]. The pipeline is entirely heuristic: it performs
// no semantic analysis of the text.
//
// # Pipeline
//
// The [Extractor] orchestrates the stages, each of which can also be used
// on its own:
//
//	extractor := outline.NewExtractor()
//	result := extractor.Extract(doc)
//
//   - [FontAnalyzer] - weighted font size histogram; body size and heading tiers
//   - [HeaderFooterDetector] - recurring margin text; builds the [SuppressionSet]
//   - [TitleExtractor] - merges large/centered/bold first-page blocks
//   - [Classifier] - the layered per-block heading predicate
//   - [LevelAssigner] - numbering depth first, font tier otherwise
//   - [NormalizeHierarchy] - forward-pass level clamp
//   - [Assembler] - document ordering, (text, page) dedup, title promotion
//
// # Configuration
//
// Every heuristic threshold is a named field of [Config]:
//
//	config := outline.DefaultConfig()
//	config.HeadingSizeRatio = 1.15
//	extractor := outline.NewExtractorWithConfig(config)
//
// # Concurrency
//
// Extract is a pure function over an immutable document snapshot. Documents
// are independent, so callers may run one extraction per goroutine with no
// synchronization; see the batch package.
package outline
