// Package outliner provides a fluent API for reconstructing document
// outlines from positioned text.
//
// Basic usage:
//
//	result, err := outliner.Open("document.json").Extract()
//	if err != nil {
//	    // handle error
//	}
//	fmt.Println(result.Title)
//
// With options:
//
//	result, err := outliner.Open("report.html").
//	    WithConfig(cfg).
//	    Extract()
//
// The input format is chosen by file extension: .json is read as a
// layout dump, .html and .htm are parsed as HTML. For advanced use
// cases, the lower-level ingest and outline packages are also available.
package outliner

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/tsawler/outliner/ingest"
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/outline"
)

// Source is a document source under fluent configuration. Create one
// with Open or FromDocument, adjust it with the With* methods, then call
// Extract.
type Source struct {
	filename string
	doc      *model.Document
	cfg      outline.Config
}

// Open prepares a file for extraction. The file is not read until
// Extract is called.
//
// Example:
//
//	result, err := outliner.Open("document.json").Extract()
func Open(filename string) *Source {
	return &Source{
		filename: filename,
		cfg:      outline.DefaultConfig(),
	}
}

// FromDocument prepares an already-ingested document for extraction.
// This is useful when the document was built by a custom ingestion
// layer.
//
// Example:
//
//	doc, err := ingest.OpenLayout("document.json")
//	if err != nil {
//	    // handle error
//	}
//	result, err := outliner.FromDocument(doc).Extract()
func FromDocument(doc *model.Document) *Source {
	return &Source{
		doc: doc,
		cfg: outline.DefaultConfig(),
	}
}

// Extract runs the pipeline and returns the result. Opening or parsing
// failures surface here; extraction itself always produces a result.
func (s *Source) Extract() (*model.ExtractionResult, error) {
	doc := s.doc
	if doc == nil {
		var err error
		doc, err = loadFile(s.filename)
		if err != nil {
			return nil, err
		}
	}
	return outline.NewExtractorWithConfig(s.cfg).Extract(doc), nil
}

// ExtractJSON runs the pipeline and returns the result serialized as
// indented JSON
func (s *Source) ExtractJSON() ([]byte, error) {
	result, err := s.Extract()
	if err != nil {
		return nil, err
	}
	return result.ToJSONIndent()
}

func loadFile(filename string) (*model.Document, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		return ingest.OpenLayout(filename)
	case ".html", ".htm":
		return ingest.OpenHTML(filename)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(filename))
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	result := outliner.Must(outliner.Open("document.json").Extract())
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
