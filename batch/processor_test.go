package batch

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tsawler/outliner/model"
	"github.com/tsawler/outliner/outline"
)

const goodLayout = `{
  "name": "minutes.pdf",
  "pages": [
    {
      "width": 612,
      "height": 792,
      "blocks": [
        {
          "type": 0,
          "bbox": [150, 80, 462, 108],
          "lines": [
            {"bbox": [150, 80, 462, 108], "spans": [
              {"text": "Board Meeting Minutes", "size": 24, "font": "Helvetica-Bold", "bbox": [150, 80, 462, 108]}
            ]}
          ]
        },
        {
          "type": 0,
          "bbox": [72, 300, 272, 316],
          "lines": [
            {"bbox": [72, 300, 272, 316], "spans": [
              {"text": "2.1 Budget Review", "size": 14, "font": "Helvetica", "bbox": [72, 300, 272, 316]}
            ]}
          ]
        },
        {
          "type": 0,
          "bbox": [72, 340, 540, 380],
          "lines": [
            {"bbox": [72, 340, 540, 380], "spans": [
              {"text": "The committee reviewed the quarterly numbers in detail", "size": 10, "font": "Helvetica", "bbox": [72, 340, 540, 380]}
            ]}
          ]
        }
      ]
    }
  ]
}`

func writeInput(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestProcessorRun(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := filepath.Join(t.TempDir(), "results")

	writeInput(t, inputDir, "good.json", goodLayout)
	writeInput(t, inputDir, "broken.json", `{"pages": 42}`)
	writeInput(t, inputDir, "notes.txt", "not a document")

	p := NewProcessor(Options{
		InputDir:  inputDir,
		OutputDir: outputDir,
		Workers:   2,
	})

	summary, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if summary.Processed != 1 || summary.Failed != 1 {
		t.Errorf("Summary = %+v, want 1 processed and 1 failed", summary)
	}

	// The good document produces a full result
	data, err := os.ReadFile(filepath.Join(outputDir, "good.json"))
	if err != nil {
		t.Fatalf("Missing result for good.json: %v", err)
	}
	var result model.ExtractionResult
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Result is not valid JSON: %v", err)
	}
	if result.Title != "Board Meeting Minutes" {
		t.Errorf("Title = %q, want %q", result.Title, "Board Meeting Minutes")
	}
	if len(result.Outline) == 0 {
		t.Error("Expected a non-empty outline")
	}

	// The broken document still produces a result file
	data, err = os.ReadFile(filepath.Join(outputDir, "broken.json"))
	if err != nil {
		t.Fatalf("Missing result for broken.json: %v", err)
	}
	if err := json.Unmarshal(data, &result); err != nil {
		t.Fatalf("Error result is not valid JSON: %v", err)
	}
	if result.Title != outline.ErrorTitle {
		t.Errorf("Error title = %q, want %q", result.Title, outline.ErrorTitle)
	}
	if len(result.Outline) != 0 {
		t.Errorf("Error result should have an empty outline, got %v", result.Outline)
	}

	// Unsupported files are ignored entirely
	if _, err := os.Stat(filepath.Join(outputDir, "notes.json")); !os.IsNotExist(err) {
		t.Error("Unsupported input should not produce a result")
	}
}

func TestProcessorMarkdownFormat(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()

	writeInput(t, inputDir, "good.json", goodLayout)

	p := NewProcessor(Options{
		InputDir:  inputDir,
		OutputDir: outputDir,
		Format:    FormatMarkdown,
	})

	if _, err := p.Run(context.Background()); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(outputDir, "good.md"))
	if err != nil {
		t.Fatalf("Missing markdown result: %v", err)
	}
	text := string(data)
	if !strings.HasPrefix(text, "# Board Meeting Minutes") {
		t.Errorf("Markdown should open with the title, got %q", text)
	}
	if !strings.Contains(text, "- ") {
		t.Error("Markdown should contain outline list items")
	}
}

func TestProcessorMissingInputDir(t *testing.T) {
	p := NewProcessor(Options{
		InputDir:  filepath.Join(t.TempDir(), "nope"),
		OutputDir: t.TempDir(),
	})

	if _, err := p.Run(context.Background()); err == nil {
		t.Error("Expected error for missing input directory")
	}
}

func TestProcessorCancelledContext(t *testing.T) {
	inputDir := t.TempDir()
	writeInput(t, inputDir, "good.json", goodLayout)

	p := NewProcessor(Options{
		InputDir:  inputDir,
		OutputDir: t.TempDir(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Run(ctx); err == nil {
		t.Error("Expected error for cancelled context")
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	content := "max_level: 3\ntitle_min_size: 18\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.MaxLevel != 3 {
		t.Errorf("MaxLevel = %d, want 3", cfg.MaxLevel)
	}
	if cfg.TitleMinSize != 18 {
		t.Errorf("TitleMinSize = %.1f, want 18", cfg.TitleMinSize)
	}
	// Untouched fields keep their defaults
	if cfg.HeadingSizeRatio != outline.DefaultConfig().HeadingSizeRatio {
		t.Errorf("HeadingSizeRatio = %.2f, want default", cfg.HeadingSizeRatio)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected error for missing config file")
	}
}
