package assist

import (
	"strings"
	"testing"
)

func TestParseStrictJSON(t *testing.T) {
	p := Parse(`["Built X", "Led Y"]`)
	if p.Kind != KindJSON {
		t.Fatalf("expected KindJSON, got %v", p.Kind)
	}
}

func TestParseFencedJSON(t *testing.T) {
	p := Parse("```json\n[{\"summary\":\"s\",\"experience_level\":\"Senior\"}]\n```")
	if p.Kind != KindJSON {
		t.Fatalf("expected KindJSON after unfencing, got %v", p.Kind)
	}
}

func TestParsePrefixedJSONBlock(t *testing.T) {
	p := Parse(`Sure, here you go: ["one", "two"] hope this helps`)
	if p.Kind != KindJSON {
		t.Fatalf("expected salvaged JSON block, got %v", p.Kind)
	}
	if string(p.JSON) != `["one", "two"]` {
		t.Fatalf("unexpected block: %s", p.JSON)
	}
}

func TestParseBulletLines(t *testing.T) {
	p := Parse("• Built the pipeline\n• Led the migration")
	if p.Kind != KindDelimitedLines {
		t.Fatalf("expected KindDelimitedLines, got %v", p.Kind)
	}
	if len(p.Lines) != 2 || p.Lines[0] != "Built the pipeline" {
		t.Fatalf("unexpected lines: %v", p.Lines)
	}
}

func TestParseUnrecognized(t *testing.T) {
	if p := Parse("   "); p.Kind != KindUnrecognized {
		t.Fatalf("expected KindUnrecognized for blank input, got %v", p.Kind)
	}
}

func TestNormalizeBulletsHTMLFromJSONArray(t *testing.T) {
	out, err := NormalizeBulletsHTML(`["Built X", "Led Y"]`)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if out != "<ul><li>Built X</li><li>Led Y</li></ul>" {
		t.Fatalf("unexpected html: %s", out)
	}
}

func TestNormalizeBulletsHTMLFromWrappedObject(t *testing.T) {
	out, err := NormalizeBulletsHTML(`{"bullet_points":["Shipped A","Owned B"]}`)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if !strings.Contains(out, "<li>Shipped A</li>") || !strings.Contains(out, "<li>Owned B</li>") {
		t.Fatalf("unexpected html: %s", out)
	}
}

func TestNormalizeBulletsHTMLPassesThroughExistingList(t *testing.T) {
	in := "<ul><li>Kept as-is</li></ul>"
	out, err := NormalizeBulletsHTML(in)
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if out != in {
		t.Fatalf("expected passthrough, got %s", out)
	}
}

func TestNormalizeBulletsHTMLFromLines(t *testing.T) {
	out, err := NormalizeBulletsHTML("First point\nSecond point")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if out != "<ul><li>First point</li><li>Second point</li></ul>" {
		t.Fatalf("unexpected html: %s", out)
	}
}

func TestNormalizeBulletsHTMLRejectsEmpty(t *testing.T) {
	if _, err := NormalizeBulletsHTML(""); err == nil {
		t.Fatalf("expected error for empty response")
	}
}

func TestParseSummarySuggestionsArray(t *testing.T) {
	raw := `[{"summary":"Seasoned engineer.","experience_level":"Senior"},{"summary":"Growing fast.","experience_level":"Fresher"}]`
	list, err := ParseSummarySuggestions(raw)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(list) != 2 || list[0].ExperienceLevel != "Senior" {
		t.Fatalf("unexpected suggestions: %+v", list)
	}
}

func TestParseSummarySuggestionsSingleObject(t *testing.T) {
	list, err := ParseSummarySuggestions(`{"summary":"One liner.","experience_level":"Mid Level"}`)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(list) != 1 || list[0].Summary != "One liner." {
		t.Fatalf("unexpected suggestions: %+v", list)
	}
}

func TestParseSummarySuggestionsRejectsProse(t *testing.T) {
	if _, err := ParseSummarySuggestions("I cannot help with that."); err == nil {
		t.Fatalf("expected error for non-JSON response")
	}
}

func TestNormalizeDescriptionUnfences(t *testing.T) {
	out, err := NormalizeDescription("```\nA clean project description.\n```")
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if out != "A clean project description." {
		t.Fatalf("unexpected description: %q", out)
	}
}
