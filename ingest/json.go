package ingest

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"

	"github.com/tsawler/outliner/model"
)

//go:embed schema.json
var layoutSchemaJSON []byte

// layoutSchemaID matches the $id inside schema.json
const layoutSchemaID = "https://github.com/tsawler/outliner/ingest/layout.json"

// layoutSchema validates layout dumps before decoding
var layoutSchema = mustCompileSchema()

func mustCompileSchema() *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(layoutSchemaJSON))
	if err != nil {
		panic(fmt.Sprintf("ingest: invalid embedded schema: %v", err))
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(layoutSchemaID, doc); err != nil {
		panic(fmt.Sprintf("ingest: adding schema resource: %v", err))
	}
	schema, err := compiler.Compile(layoutSchemaID)
	if err != nil {
		panic(fmt.Sprintf("ingest: compiling schema: %v", err))
	}
	return schema
}

// Wire form of the layout dump. The geometry is in points with the origin
// at the top-left; bboxes are [x0, y0, x1, y1].
type layoutDump struct {
	Name   string       `json:"name"`
	IsForm bool         `json:"is_form"`
	Pages  []layoutPage `json:"pages"`
}

type layoutPage struct {
	Width  float64       `json:"width"`
	Height float64       `json:"height"`
	Blocks []layoutBlock `json:"blocks"`
}

type layoutBlock struct {
	Type  int          `json:"type"`
	BBox  [4]float64   `json:"bbox"`
	Lines []layoutLine `json:"lines"`
}

type layoutLine struct {
	BBox  [4]float64   `json:"bbox"`
	Spans []layoutSpan `json:"spans"`
}

type layoutSpan struct {
	Text  string     `json:"text"`
	Size  float64    `json:"size"`
	Font  string     `json:"font"`
	Flags int        `json:"flags"`
	BBox  [4]float64 `json:"bbox"`
}

// boldFlag is the style-flag bit collaborators set for bold spans
const boldFlag = 1 << 4

// OpenLayout reads a JSON layout dump from a file
func OpenLayout(filename string) (*model.Document, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("opening layout dump: %w", err)
	}
	return ReadLayout(data, filepath.Base(filename))
}

// ReadLayout parses a JSON layout dump. The data is validated against the
// embedded schema first; validation failure is an ingestion failure. The
// name is the source identifier used for fallback titles when the dump
// itself does not carry one.
func ReadLayout(data []byte, name string) (*model.Document, error) {
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parsing layout dump: %w", err)
	}
	if err := layoutSchema.Validate(inst); err != nil {
		return nil, fmt.Errorf("layout dump does not match contract: %w", err)
	}

	var dump layoutDump
	if err := json.Unmarshal(data, &dump); err != nil {
		return nil, fmt.Errorf("decoding layout dump: %w", err)
	}

	if dump.Name != "" {
		name = dump.Name
	}

	doc := model.NewDocument(name)
	doc.IsForm = dump.IsForm

	for _, p := range dump.Pages {
		page := model.NewPage(p.Width, p.Height)
		for _, b := range p.Blocks {
			page.AddBlock(buildBlock(b))
		}
		doc.AddPage(page)
	}

	return doc, nil
}

// buildBlock converts a wire block into a model block
func buildBlock(b layoutBlock) *model.Block {
	block := &model.Block{
		Type: model.BlockType(b.Type),
		BBox: bboxFromCorners(b.BBox),
	}

	for _, l := range b.Lines {
		line := &model.Line{BBox: bboxFromCorners(l.BBox)}
		for _, s := range l.Spans {
			line.Spans = append(line.Spans, model.Span{
				Text:     s.Text,
				Size:     s.Size,
				FontName: s.Font,
				Bold:     s.Flags&boldFlag != 0 || isBoldFont(s.Font),
				BBox:     bboxFromCorners(s.BBox),
			})
		}
		// Some collaborators omit line geometry; recover it from the spans,
		// or from the block as a last resort
		if line.BBox.IsEmpty() {
			line.BBox = spanUnion(line.Spans)
		}
		if line.BBox.IsEmpty() {
			line.BBox = block.BBox
		}
		block.Lines = append(block.Lines, line)
	}

	return block
}

func bboxFromCorners(corners [4]float64) model.BBox {
	return model.NewBBoxFromCorners(corners[0], corners[1], corners[2], corners[3])
}

func spanUnion(spans []model.Span) model.BBox {
	var union model.BBox
	for _, s := range spans {
		if s.BBox.IsEmpty() {
			continue
		}
		if union.IsEmpty() {
			union = s.BBox
		} else {
			union = union.Union(s.BBox)
		}
	}
	return union
}

// isBoldFont reports whether a font family name indicates a bold weight
func isBoldFont(name string) bool {
	lower := strings.ToLower(name)
	for _, marker := range []string{"bold", "black", "heavy", "semibold", "demibold"} {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
