package render

import (
	"strings"
	"testing"

	"resume-builder/internal/resume"
)

func sampleDoc() resume.Document {
	return resume.Document{
		FirstName:  "Ann",
		LastName:   "Lee",
		JobTitle:   "Backend Engineer",
		ThemeColor: "#336699",
		Summary:    "Ships reliable services.",
		Experience: []resume.Experience{{
			Title:       "Staff Engineer",
			CompanyName: "Acme",
			City:        "Berlin",
			StartDate:   "2020",
			EndDate:     "2024",
			WorkSummary: "<ul><li>Built things</li></ul>",
		}},
		Skills:    []resume.Skill{{Name: "React", Rating: 4}},
		Interests: []string{},
	}
}

func TestUnsetTemplateProjectsClassic(t *testing.T) {
	doc := sampleDoc()
	doc.Template = ""

	out := Document(doc)
	if !strings.Contains(out, `class="resume classic"`) {
		t.Fatalf("expected classic layout, got: %.120s", out)
	}
}

func TestUnknownTemplateProjectsClassic(t *testing.T) {
	doc := sampleDoc()
	doc.Template = "holographic"

	if out := Document(doc); !strings.Contains(out, `class="resume classic"`) {
		t.Fatalf("unknown template did not fall back to classic")
	}
}

func TestEmptySectionsRenderNothingInEveryTemplate(t *testing.T) {
	doc := sampleDoc()
	doc.Experience = nil
	doc.Projects = nil
	doc.Education = nil
	doc.Certifications = nil
	doc.Interests = nil

	for _, tmpl := range resume.Templates() {
		doc.Template = string(tmpl)
		out := Document(doc)
		for _, class := range []string{"experience", "projects", "education", "certifications", "interests"} {
			if strings.Contains(out, `class="`+class+`"`) {
				t.Fatalf("template %s rendered empty section %s", tmpl, class)
			}
		}
	}
}

func TestEmptyShapedEntriesCountAsEmpty(t *testing.T) {
	doc := sampleDoc()
	doc.Template = "classic"
	doc.Experience = []resume.Experience{{}}
	doc.Certifications = []resume.Certification{{}}

	out := Document(doc)
	if strings.Contains(out, `class="experience"`) || strings.Contains(out, `class="certifications"`) {
		t.Fatalf("placeholder entries rendered a section block")
	}
}

func TestSkillsChipAndEmptyInterests(t *testing.T) {
	doc := resume.Document{
		Skills:    []resume.Skill{{Name: "React", Rating: 4}},
		Interests: []string{},
	}

	skills := skillsSection(doc)
	if !strings.Contains(skills, ">React</span>") {
		t.Fatalf("expected one React chip, got: %s", skills)
	}
	if strings.Count(skills, `class="chip"`) != 1 {
		t.Fatalf("expected exactly one chip: %s", skills)
	}
	if interests := interestsSection(doc); interests != "" {
		t.Fatalf("empty interests rendered: %s", interests)
	}
}

func TestSkillIconFirstMatchWins(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"JavaScript", "code"},
		{"Java", "code"},
		{"CSS Grid", "palette"},
		{"PostgreSQL", "database"},
		{"Web Performance", "globe"},
		{"iOS", "smartphone"},
		{"Kubernetes", "zap"},
		// "MySQL design" hits the design entry before sql: table order wins.
		{"design of sql schemas", "palette"},
	}
	for _, tc := range cases {
		if got := SkillIcon(tc.name); got != tc.want {
			t.Fatalf("SkillIcon(%q) = %q, want %q", tc.name, got, tc.want)
		}
	}
}

func TestExperienceKeepsRichTextFragment(t *testing.T) {
	out := experienceSection(sampleDoc())
	if !strings.Contains(out, "<ul><li>Built things</li></ul>") {
		t.Fatalf("rich text fragment was escaped or dropped: %s", out)
	}
}

func TestUserContentIsEscaped(t *testing.T) {
	doc := sampleDoc()
	doc.FirstName = `<script>alert("x")</script>`
	out := Document(doc)
	if strings.Contains(out, "<script>") {
		t.Fatalf("unescaped user content in output")
	}
}

func TestTemplatesDifferInLayout(t *testing.T) {
	doc := sampleDoc()
	seen := map[string]bool{}
	for _, tmpl := range resume.Templates() {
		doc.Template = string(tmpl)
		out := Document(doc)
		if seen[out] {
			t.Fatalf("template %s produced a duplicate layout", tmpl)
		}
		seen[out] = true
	}
}

func TestPageWrapsDocument(t *testing.T) {
	doc := sampleDoc()
	page := Page(doc)
	if !strings.HasPrefix(page, "<!DOCTYPE html>") {
		t.Fatalf("expected standalone page")
	}
	if !strings.Contains(page, "Untitled Resume") {
		t.Fatalf("expected default title in page head")
	}
}
