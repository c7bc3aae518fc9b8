package outline

import (
	"testing"

	"github.com/tsawler/outliner/model"
)

func TestAnalyzeBodyAndTiers(t *testing.T) {
	blocks := append(
		[]*model.Block{textBlock("SECTION ONE", 16, false, model.NewBBox(72, 100, 200, 18))},
		bodyParagraphs(4, 150)...)
	doc := onePageDoc("report.json", blocks...)

	stats := NewFontAnalyzer().Analyze(doc)

	if stats.BodySize != 10 {
		t.Errorf("BodySize = %.1f, want 10", stats.BodySize)
	}
	if stats.TierCount() != 1 || stats.Tiers[0] != 16 {
		t.Errorf("Tiers = %v, want [16]", stats.Tiers)
	}
}

func TestAnalyzeMergesNearbySizes(t *testing.T) {
	blocks := append(
		[]*model.Block{
			textBlock("First Heading", 16, false, model.NewBBox(72, 100, 200, 18)),
			textBlock("Second Heading", 15.8, false, model.NewBBox(72, 150, 200, 18)),
			textBlock("Minor Heading", 12, false, model.NewBBox(72, 200, 200, 14)),
		},
		bodyParagraphs(4, 250)...)
	doc := onePageDoc("report.json", blocks...)

	stats := NewFontAnalyzer().Analyze(doc)

	// 15.8 folds into the 16 tier; 12 stays its own tier
	if stats.TierCount() != 2 {
		t.Fatalf("Tiers = %v, want 2 tiers", stats.Tiers)
	}
	if stats.Tiers[0] != 16 || stats.Tiers[1] != 12 {
		t.Errorf("Tiers = %v, want [16 12]", stats.Tiers)
	}
}

func TestAnalyzeIgnoresBoldForBodySize(t *testing.T) {
	// Bold text outweighs plain text here, but body size detection only
	// trusts non-bold spans
	blocks := []*model.Block{
		textBlock("Important notice repeated in bold across the whole page region",
			14, true, model.NewBBox(72, 100, 468, 40)),
		textBlock("Important notice repeated in bold across the whole page region",
			14, true, model.NewBBox(72, 150, 468, 40)),
		textBlock("Plain sentence", 10, false, model.NewBBox(72, 200, 200, 12)),
	}
	doc := onePageDoc("notice.json", blocks...)

	stats := NewFontAnalyzer().Analyze(doc)

	if stats.BodySize != 10 {
		t.Errorf("BodySize = %.1f, want 10 (non-bold)", stats.BodySize)
	}
}

func TestAnalyzeAllBoldFallsBack(t *testing.T) {
	doc := onePageDoc("shouty.json",
		textBlock("EVERYTHING IS BOLD HERE", 12, true, model.NewBBox(72, 100, 300, 14)))

	stats := NewFontAnalyzer().Analyze(doc)

	if stats.BodySize != 12 {
		t.Errorf("BodySize = %.1f, want 12 from all-span fallback", stats.BodySize)
	}
}

func TestAnalyzeEmptyDocument(t *testing.T) {
	doc := model.NewDocument("empty.json")
	doc.AddPage(model.NewPage(612, 792))

	stats := NewFontAnalyzer().Analyze(doc)

	if stats.BodySize != DefaultConfig().BodySizeDefault {
		t.Errorf("BodySize = %.1f, want default", stats.BodySize)
	}
	if stats.TierCount() != 0 {
		t.Errorf("Expected no tiers, got %v", stats.Tiers)
	}
}

func TestAnalyzeNilDocument(t *testing.T) {
	stats := NewFontAnalyzer().Analyze(nil)
	if stats.BodySize != DefaultConfig().BodySizeDefault {
		t.Errorf("BodySize = %.1f, want default", stats.BodySize)
	}
}

func TestAnalyzeMaxTiers(t *testing.T) {
	blocks := []*model.Block{
		textBlock("Heading A", 30, false, model.NewBBox(72, 60, 200, 30)),
		textBlock("Heading B", 26, false, model.NewBBox(72, 100, 200, 26)),
		textBlock("Heading C", 22, false, model.NewBBox(72, 140, 200, 22)),
		textBlock("Heading D", 18, false, model.NewBBox(72, 180, 200, 18)),
		textBlock("Heading E", 15, false, model.NewBBox(72, 220, 200, 15)),
		textBlock("Heading F", 12, false, model.NewBBox(72, 260, 200, 12)),
	}
	blocks = append(blocks, bodyParagraphs(6, 300)...)
	doc := onePageDoc("deep.json", blocks...)

	stats := NewFontAnalyzer().Analyze(doc)

	if stats.TierCount() > DefaultConfig().MaxTiers {
		t.Errorf("Tier count %d exceeds cap %d", stats.TierCount(), DefaultConfig().MaxTiers)
	}
}
