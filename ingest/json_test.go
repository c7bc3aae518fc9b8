package ingest

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleLayout = `{
  "name": "report.pdf",
  "is_form": false,
  "pages": [
    {
      "width": 612,
      "height": 792,
      "blocks": [
        {
          "type": 0,
          "bbox": [72, 100, 540, 124],
          "lines": [
            {
              "bbox": [72, 100, 540, 124],
              "spans": [
                {"text": "Annual Report", "size": 24, "font": "Helvetica-Bold", "flags": 0, "bbox": [72, 100, 300, 124]}
              ]
            }
          ]
        },
        {
          "type": 1,
          "bbox": [72, 200, 540, 400],
          "lines": []
        }
      ]
    }
  ]
}`

func TestReadLayout(t *testing.T) {
	doc, err := ReadLayout([]byte(sampleLayout), "report.json")
	if err != nil {
		t.Fatalf("ReadLayout failed: %v", err)
	}

	if doc.Name != "report.pdf" {
		t.Errorf("Name = %q, want name from the dump", doc.Name)
	}
	if doc.IsForm {
		t.Error("IsForm should be false")
	}
	if doc.PageCount() != 1 {
		t.Fatalf("Expected 1 page, got %d", doc.PageCount())
	}

	page := doc.GetPage(1)
	if page.Width != 612 || page.Height != 792 {
		t.Errorf("Page size = %.0fx%.0f, want 612x792", page.Width, page.Height)
	}
	if len(page.Blocks) != 2 {
		t.Fatalf("Expected 2 blocks, got %d", len(page.Blocks))
	}
	if len(page.TextBlocks()) != 1 {
		t.Errorf("Expected 1 text block, got %d", len(page.TextBlocks()))
	}

	block := page.TextBlocks()[0]
	if block.Text() != "Annual Report" {
		t.Errorf("Block text = %q", block.Text())
	}
	if block.BBox.Top() != 100 || block.BBox.Bottom() != 124 {
		t.Errorf("Block bbox = %+v, want top 100 bottom 124", block.BBox)
	}

	span := block.Spans()[0]
	if span.Size != 24 {
		t.Errorf("Span size = %.1f, want 24", span.Size)
	}
	if !span.Bold {
		t.Error("Span with a bold font name should be bold")
	}
}

func TestReadLayoutNameFallback(t *testing.T) {
	data := `{"pages": [{"width": 612, "height": 792, "blocks": []}]}`

	doc, err := ReadLayout([]byte(data), "scan_42.json")
	if err != nil {
		t.Fatalf("ReadLayout failed: %v", err)
	}
	if doc.Name != "scan_42.json" {
		t.Errorf("Name = %q, want the caller-supplied name", doc.Name)
	}
}

func TestReadLayoutBoldFlags(t *testing.T) {
	data := `{
  "pages": [{"width": 612, "height": 792, "blocks": [
    {"bbox": [0, 0, 100, 20], "lines": [
      {"spans": [
        {"text": "flagged", "size": 12, "font": "Helvetica", "flags": 16, "bbox": [0, 0, 50, 20]},
        {"text": "plain", "size": 12, "font": "Helvetica", "flags": 0, "bbox": [50, 0, 100, 20]}
      ]}
    ]}
  ]}]
}`

	doc, err := ReadLayout([]byte(data), "flags.json")
	if err != nil {
		t.Fatalf("ReadLayout failed: %v", err)
	}

	spans := doc.GetPage(1).Blocks[0].Spans()
	if !spans[0].Bold {
		t.Error("Span with the bold style flag should be bold")
	}
	if spans[1].Bold {
		t.Error("Plain span should not be bold")
	}
}

func TestReadLayoutLineBBoxFromSpans(t *testing.T) {
	data := `{
  "pages": [{"width": 612, "height": 792, "blocks": [
    {"bbox": [0, 0, 200, 20], "lines": [
      {"spans": [
        {"text": "left", "size": 12, "bbox": [10, 2, 90, 18]},
        {"text": "right", "size": 12, "bbox": [100, 2, 190, 18]}
      ]}
    ]}
  ]}]
}`

	doc, err := ReadLayout([]byte(data), "nolinebbox.json")
	if err != nil {
		t.Fatalf("ReadLayout failed: %v", err)
	}

	line := doc.GetPage(1).Blocks[0].Lines[0]
	if line.BBox.Left() != 10 || line.BBox.Right() != 190 {
		t.Errorf("Line bbox = %+v, want the span union", line.BBox)
	}
}

func TestReadLayoutInvalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not json", `{"pages": `},
		{"pages wrong type", `{"pages": 42}`},
		{"missing page size", `{"pages": [{"blocks": []}]}`},
		{"span missing size", `{"pages": [{"width": 612, "height": 792, "blocks": [
			{"bbox": [0,0,1,1], "lines": [{"spans": [{"text": "x"}]}]}
		]}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ReadLayout([]byte(tt.data), "bad.json"); err == nil {
				t.Errorf("Expected error for %s", tt.name)
			}
		})
	}
}

func TestOpenLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "report.json")
	if err := os.WriteFile(path, []byte(sampleLayout), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := OpenLayout(path)
	if err != nil {
		t.Fatalf("OpenLayout failed: %v", err)
	}
	if doc.Name != "report.pdf" {
		t.Errorf("Name = %q", doc.Name)
	}

	if _, err := OpenLayout(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Expected error for missing file")
	}
}
