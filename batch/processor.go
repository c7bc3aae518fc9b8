package batch

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/tsawler/outliner/ingest"
	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/outline"
)

// DefaultWorkers is the worker count used when Options.Workers is unset
const DefaultWorkers = 4

// Output formats
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Options configures a batch run
type Options struct {
	// InputDir is scanned non-recursively for .json, .html, and .htm files
	InputDir string

	// OutputDir receives one result file per input, named after the
	// input's stem. It is created if it does not exist.
	OutputDir string

	// Workers bounds concurrent document processing. Zero or negative
	// means DefaultWorkers.
	Workers int

	// Format selects the result encoding, FormatJSON or FormatMarkdown.
	// Empty means FormatJSON.
	Format string

	// Config holds extraction settings. The zero value means defaults.
	Config outline.Config

	// Logger for per-document progress and failures. Nil means
	// slog.Default().
	Logger *slog.Logger
}

// Summary reports the outcome of a batch run
type Summary struct {
	// Processed is the number of documents extracted successfully
	Processed int

	// Failed is the number of documents that could not be ingested.
	// Each still produced a result file with the error title.
	Failed int
}

// Processor runs outline extraction over a directory
type Processor struct {
	opts      Options
	extractor *outline.Extractor
	logger    *slog.Logger
}

// NewProcessor creates a processor for the given options
func NewProcessor(opts Options) *Processor {
	if opts.Workers <= 0 {
		opts.Workers = DefaultWorkers
	}
	if opts.Format == "" {
		opts.Format = FormatJSON
	}
	if opts.Config == (outline.Config{}) {
		opts.Config = outline.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	return &Processor{
		opts:      opts,
		extractor: outline.NewExtractorWithConfig(opts.Config),
		logger:    opts.Logger,
	}
}

// Run processes every supported file in the input directory. It returns
// a non-nil error only for run-level failures (unreadable input
// directory, uncreatable output directory, cancelled context); documents
// that fail ingestion are counted in the summary instead.
func (p *Processor) Run(ctx context.Context) (Summary, error) {
	inputs, err := p.scanInputs()
	if err != nil {
		return Summary{}, err
	}
	if err := os.MkdirAll(p.opts.OutputDir, 0o755); err != nil {
		return Summary{}, fmt.Errorf("creating output directory: %w", err)
	}

	var processed, failed atomic.Int64

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(p.opts.Workers)

	for _, name := range inputs {
		name := name
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := p.processOne(name); err != nil {
				failed.Add(1)
				p.logger.Warn("document failed", "file", name, "error", err)
				return nil
			}
			processed.Add(1)
			p.logger.Debug("document processed", "file", name)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Summary{}, err
	}

	return Summary{
		Processed: int(processed.Load()),
		Failed:    int(failed.Load()),
	}, nil
}

// scanInputs lists supported files in the input directory, sorted by
// name for a stable processing order
func (p *Processor) scanInputs() ([]string, error) {
	entries, err := os.ReadDir(p.opts.InputDir)
	if err != nil {
		return nil, fmt.Errorf("reading input directory: %w", err)
	}

	var inputs []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(e.Name())) {
		case ".json", ".html", ".htm":
			inputs = append(inputs, e.Name())
		}
	}
	sort.Strings(inputs)
	return inputs, nil
}

// processOne ingests and extracts a single document. On ingestion
// failure it still writes a result file carrying the error title, then
// reports the failure.
func (p *Processor) processOne(name string) error {
	src := filepath.Join(p.opts.InputDir, name)
	dst := p.outputPath(name)

	doc, err := loadDocument(src)
	if err != nil {
		if werr := p.writeResult(dst, model.NewExtractionResult(outline.ErrorTitle)); werr != nil {
			return fmt.Errorf("writing error result: %w", werr)
		}
		return fmt.Errorf("ingesting: %w", err)
	}

	return p.writeResult(dst, p.extractor.Extract(doc))
}

func loadDocument(path string) (*model.Document, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return ingest.OpenLayout(path)
	case ".html", ".htm":
		return ingest.OpenHTML(path)
	default:
		return nil, fmt.Errorf("unsupported file type: %s", filepath.Ext(path))
	}
}

// outputPath maps an input file name to its result path in the output
// directory
func (p *Processor) outputPath(name string) string {
	stem := strings.TrimSuffix(name, filepath.Ext(name))
	ext := ".json"
	if p.opts.Format == FormatMarkdown {
		ext = ".md"
	}
	return filepath.Join(p.opts.OutputDir, stem+ext)
}

func (p *Processor) writeResult(path string, result *model.ExtractionResult) error {
	var data []byte
	switch p.opts.Format {
	case FormatMarkdown:
		var sb strings.Builder
		sb.WriteString("# " + result.Title + "\n")
		if toc := result.MarkdownTOC(); toc != "" {
			sb.WriteString("\n" + toc)
		}
		data = []byte(sb.String())
	default:
		encoded, err := result.ToJSONIndent()
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		data = append(encoded, '\n')
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}
	return nil
}
