package outline

import (
	"github.com/tsawler/outliner/model"
)

// ErrorTitle is the placeholder title emitted when a document cannot be
// ingested at all
const ErrorTitle = "Error processing document"

// Extractor runs the full heuristic pipeline over one document: font
// statistics, header/footer suppression, title reconstruction, heading
// classification, level assignment, hierarchy repair, and assembly.
type Extractor struct {
	config Config

	fonts      *FontAnalyzer
	suppressor *HeaderFooterDetector
	titles     *TitleExtractor
	classifier *Classifier
	levels     *LevelAssigner
	assembler  *Assembler
}

// NewExtractor creates an extractor with default configuration
func NewExtractor() *Extractor {
	return NewExtractorWithConfig(DefaultConfig())
}

// NewExtractorWithConfig creates an extractor with custom configuration
func NewExtractorWithConfig(config Config) *Extractor {
	config.defaults()
	return &Extractor{
		config:     config,
		fonts:      NewFontAnalyzerWithConfig(config),
		suppressor: NewHeaderFooterDetectorWithConfig(config),
		titles:     NewTitleExtractorWithConfig(config),
		classifier: NewClassifierWithConfig(config),
		levels:     NewLevelAssignerWithConfig(config),
		assembler:  NewAssemblerWithConfig(config),
	}
}

// Extract reconstructs the document's semantic outline. It is a pure
// function of the document snapshot: no shared state survives between
// calls, so a batch driver may run one Extract per document concurrently
// with no synchronization.
//
// Extract never fails. Degenerate input (no pages, no text) yields a
// result with a fallback title and an empty outline.
func (e *Extractor) Extract(doc *model.Document) *model.ExtractionResult {
	if doc == nil || len(doc.Pages) == 0 {
		return model.NewExtractionResult(fallbackTitle(doc))
	}

	stats := e.fonts.Analyze(doc)
	suppressed := e.suppressor.Detect(doc)

	title := e.titles.Extract(doc)
	if title == "" {
		title = fallbackTitle(doc)
	}

	result := model.NewExtractionResult(title)

	// Forms typically lack a semantic outline; extract the title only
	if doc.IsForm {
		e.config.Logger.Debug("form document, extracting title only", "name", doc.Name)
		return result
	}

	candidates := e.classifier.Classify(doc, stats, suppressed)
	candidates = e.assembler.Assemble(candidates)

	entries := make([]model.OutlineEntry, 0, len(candidates))
	for _, cand := range candidates {
		entries = append(entries, model.OutlineEntry{
			Level: e.levels.Assign(cand, stats.Tiers),
			Text:  cand.Text,
			Page:  cand.Page,
		})
	}

	entries = e.assembler.PromoteTitle(entries, title)
	result.Outline = NormalizeHierarchy(entries)

	e.config.Logger.Debug("outline extracted",
		"name", doc.Name, "title", title, "entries", len(result.Outline))

	return result
}

// fallbackTitle derives a title from the document's source identifier
func fallbackTitle(doc *model.Document) string {
	if doc == nil {
		return ""
	}
	return doc.DisplayName()
}
