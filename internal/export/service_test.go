package export

import (
	"archive/zip"
	"bytes"
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"resume-builder/internal/resume"
	"resume-builder/internal/shared/storage/object/local"
)

type fakeAssist struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeAssist) SendPrompt(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

type fakeRenderer struct {
	pdf  []byte
	jpg  []byte
	html []string
}

func (f *fakeRenderer) PDF(_ context.Context, html string) ([]byte, error) {
	f.html = append(f.html, html)
	return f.pdf, nil
}

func (f *fakeRenderer) JPEG(_ context.Context, html string) ([]byte, error) {
	f.html = append(f.html, html)
	return f.jpg, nil
}

type fakeStore struct {
	objects map[string][]byte
}

func (f *fakeStore) SaveWithKey(_ context.Context, key, _ string, r io.Reader) (int64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, err
	}
	if f.objects == nil {
		f.objects = map[string][]byte{}
	}
	f.objects[key] = data
	return int64(len(data)), nil
}

func (f *fakeStore) Open(_ context.Context, key string) (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(f.objects[key])), nil
}

type fakeSource struct {
	doc resume.Document
	err error
}

func (f *fakeSource) GetByID(_ context.Context, _ string) (resume.Document, error) {
	return f.doc, f.err
}

func newTestService(assist *fakeAssist, renderer *fakeRenderer, source *fakeSource) (*Service, *fakeStore, *MemoryArtifactsRepo) {
	store := &fakeStore{}
	repo := NewMemoryArtifactsRepo()
	svc := &Service{
		Assist:    assist,
		Renderer:  renderer,
		Store:     store,
		Artifacts: repo,
		Docs:      source,
	}
	return svc, store, repo
}

func TestEnhanceUnfencesModelOutput(t *testing.T) {
	assist := &fakeAssist{reply: "```\nEnhanced resume.\n\nSecond paragraph.\n```"}
	svc, _, _ := newTestService(assist, &fakeRenderer{}, &fakeSource{})

	out, err := svc.Enhance(context.Background(), "raw resume", "job desc", "Backend Engineer")
	if err != nil {
		t.Fatalf("Enhance: %v", err)
	}
	if out != "Enhanced resume.\n\nSecond paragraph." {
		t.Fatalf("unexpected enhanced text: %q", out)
	}
	if len(assist.prompts) != 1 || !strings.Contains(assist.prompts[0], "Backend Engineer") {
		t.Fatalf("prompt missing job title: %v", assist.prompts)
	}
	if !strings.Contains(assist.prompts[0], "raw resume") {
		t.Fatalf("prompt missing resume text")
	}
}

func TestEnhanceRequiresText(t *testing.T) {
	svc, _, _ := newTestService(&fakeAssist{}, &fakeRenderer{}, &fakeSource{})

	if _, err := svc.Enhance(context.Background(), "  ", "", ""); err == nil {
		t.Fatalf("expected error for empty text")
	}
}

func TestAnalyzeParsesGuidance(t *testing.T) {
	assist := &fakeAssist{reply: "```json\n{\"ats_score\": 64, \"resume_score\": \"71\", \"skills\": [\"Go\"], \"strengths\": \"Clear history.\"}\n```"}
	svc, _, _ := newTestService(assist, &fakeRenderer{}, &fakeSource{})

	g, err := svc.Analyze(context.Background(), "ten years of Go")
	if err != nil {
		t.Fatalf("Analyze: %v", err)
	}
	if g.ATSScore != 64 || g.ResumeScore != 71 {
		t.Fatalf("unexpected scores: ats=%d resume=%d", g.ATSScore, g.ResumeScore)
	}
	if len(g.Skills) != 1 || g.Skills[0] != "Go" {
		t.Fatalf("unexpected skills: %v", g.Skills)
	}
	if len(assist.prompts) != 1 || !strings.Contains(assist.prompts[0], "ten years of Go") {
		t.Fatalf("prompt missing resume text: %v", assist.prompts)
	}
}

func TestAnalyzeRequiresText(t *testing.T) {
	svc, _, _ := newTestService(&fakeAssist{}, &fakeRenderer{}, &fakeSource{})

	if _, err := svc.Analyze(context.Background(), "  "); err == nil {
		t.Fatalf("expected error for empty text")
	}
}

func TestConvertTXTStoresAndRecordsArtifact(t *testing.T) {
	svc, store, repo := newTestService(&fakeAssist{}, &fakeRenderer{}, &fakeSource{})

	art, payload, err := svc.Convert(context.Background(), "resume-1", FormatTXT, "hello resume")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if string(payload) != "hello resume" {
		t.Fatalf("unexpected payload: %q", payload)
	}
	if stored, ok := store.objects[art.StorageKey]; !ok || string(stored) != "hello resume" {
		t.Fatalf("artifact not stored under %s", art.StorageKey)
	}

	arts, err := repo.ListByResume(context.Background(), "resume-1")
	if err != nil {
		t.Fatalf("ListByResume: %v", err)
	}
	if len(arts) != 1 || arts[0].Format != FormatTXT {
		t.Fatalf("artifact not recorded: %+v", arts)
	}
}

func TestConvertRejectsUnknownFormat(t *testing.T) {
	svc, _, _ := newTestService(&fakeAssist{}, &fakeRenderer{}, &fakeSource{})

	if _, _, err := svc.Convert(context.Background(), "", "gif", "text"); err == nil {
		t.Fatalf("expected error for unknown format")
	}
}

func TestExportResumePDFRendersChosenTemplate(t *testing.T) {
	doc := resume.Document{FirstName: "Ann", Template: "classic"}
	renderer := &fakeRenderer{pdf: []byte("%PDF")}
	svc, _, repo := newTestService(&fakeAssist{}, renderer, &fakeSource{doc: doc})

	art, payload, err := svc.ExportResume(context.Background(), "resume-1", "modern", FormatPDF)
	if err != nil {
		t.Fatalf("ExportResume: %v", err)
	}
	if string(payload) != "%PDF" {
		t.Fatalf("unexpected payload: %q", payload)
	}
	if len(renderer.html) != 1 || !strings.Contains(renderer.html[0], `class="resume modern"`) {
		t.Fatalf("template override did not reach the renderer")
	}

	arts, _ := repo.ListByResume(context.Background(), "resume-1")
	if len(arts) != 1 || arts[0].ID != art.ID {
		t.Fatalf("artifact not recorded")
	}
}

func TestWriteDOCXProducesWordDocument(t *testing.T) {
	out, err := WriteDOCX("First line\nSecond <line>")
	if err != nil {
		t.Fatalf("WriteDOCX: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	if err != nil {
		t.Fatalf("output is not a zip: %v", err)
	}
	var docXML string
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			rc, err := f.Open()
			if err != nil {
				t.Fatalf("open document.xml: %v", err)
			}
			raw, _ := io.ReadAll(rc)
			rc.Close()
			docXML = string(raw)
		}
	}
	if docXML == "" {
		t.Fatalf("no document.xml in output")
	}
	if !strings.Contains(docXML, "First line") {
		t.Fatalf("first paragraph missing: %s", docXML)
	}
	if !strings.Contains(docXML, "Second &lt;line&gt;") {
		t.Fatalf("markup not escaped: %s", docXML)
	}
}

func TestPlainTextRendition(t *testing.T) {
	doc := resume.Document{
		FirstName: "Ann",
		LastName:  "Lee",
		JobTitle:  "Backend Engineer",
		Summary:   "Ships reliable services.",
		Experience: []resume.Experience{
			{Title: "Staff Engineer", CompanyName: "Acme", StartDate: "2020", EndDate: "2024", WorkSummary: "<ul><li>Built things</li></ul>"},
			{},
		},
		Skills:    []resume.Skill{{Name: "Go", Rating: 5}, {Name: "SQL", Rating: 4}},
		Interests: []string{"chess", " "},
	}

	out := PlainText(doc)
	for _, want := range []string{
		"Ann Lee",
		"SUMMARY",
		"Staff Engineer - Acme (2020 to 2024)",
		"- Built things",
		"Go, SQL",
		"INTERESTS\nchess",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
	if strings.Contains(out, "<ul>") || strings.Contains(out, "<li>") {
		t.Fatalf("markup leaked into plain text:\n%s", out)
	}
	if strings.Contains(out, "PROJECTS") {
		t.Fatalf("empty section rendered:\n%s", out)
	}
}

func TestTextPageEscapesContent(t *testing.T) {
	page := TextPage("<script>alert(1)</script>")
	if strings.Contains(page, "<script>") {
		t.Fatalf("unescaped content in page")
	}
	if !strings.HasPrefix(page, "<!DOCTYPE html>") {
		t.Fatalf("expected standalone page")
	}
}

func TestEnhanceFileRetainsUpload(t *testing.T) {
	assist := &fakeAssist{reply: "Polished resume."}
	svc, _, _ := newTestService(assist, &fakeRenderer{}, &fakeSource{})
	dir := t.TempDir()
	svc.Uploads = local.New(dir)

	data := buildDocx(t, `<w:document><w:body><w:p><w:r><w:t>Ten years of Go.</w:t></w:r></w:p></w:body></w:document>`)
	out, err := svc.EnhanceFile(context.Background(), data, mimeDOCX, "resume.docx", "ann@example.com", "", "")
	if err != nil {
		t.Fatalf("EnhanceFile: %v", err)
	}
	if out != "Polished resume." {
		t.Fatalf("unexpected enhancement: %q", out)
	}

	var retained []string
	filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err == nil && !d.IsDir() {
			retained = append(retained, path)
		}
		return nil
	})
	if len(retained) != 1 || !strings.HasSuffix(retained[0], "_resume.docx") {
		t.Fatalf("upload not retained: %v", retained)
	}
	saved, err := os.ReadFile(retained[0])
	if err != nil {
		t.Fatalf("read retained upload: %v", err)
	}
	if !bytes.Equal(saved, data) {
		t.Fatalf("retained upload differs from original")
	}
}
