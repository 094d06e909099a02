package export

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/assist"
	"resume-builder/internal/render"
	"resume-builder/internal/resume"
	"resume-builder/internal/shared/metrics"
	"resume-builder/internal/shared/storage/object"
)

// ArtifactStore is the slice of the object store the exporter needs. Both
// the local and the S3 stores satisfy it.
type ArtifactStore interface {
	SaveWithKey(ctx context.Context, storageKey string, contentType string, r io.Reader) (int64, error)
	Open(ctx context.Context, storageKey string) (io.ReadCloser, error)
}

// DocumentSource resolves stored documents for rendering. The content API
// client satisfies it; so does a local adapter over the content service.
type DocumentSource interface {
	GetByID(ctx context.Context, id string) (resume.Document, error)
}

// Service contains the enhancement and conversion logic.
type Service struct {
	Assist    assist.Client
	Renderer  Renderer
	Store     ArtifactStore
	Artifacts ArtifactsRepo
	Docs      DocumentSource

	// Uploads, when set, retains the original uploaded files under the
	// owner's namespace.
	Uploads object.ObjectStore
}

// Enhance rewrites resume text for a target job via the AI gateway. The raw
// model output is unfenced but otherwise kept verbatim so paragraph breaks
// survive.
func (s *Service) Enhance(ctx context.Context, resumeText, jobDescription, jobTitle string) (string, error) {
	if strings.TrimSpace(resumeText) == "" {
		return "", fmt.Errorf("%w: resume text is required", ErrInvalidInput)
	}

	metrics.IncAssistRequested()
	start := time.Now()
	raw, err := s.Assist.SendPrompt(ctx, assist.EnhancePrompt(resumeText, jobDescription, jobTitle))
	metrics.ObserveAssistDurationMs(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.IncAssistFailed()
		return "", err
	}
	metrics.IncAssistCompleted()
	return assist.Unfence(raw)
}

// EnhanceFile extracts text from an uploaded PDF or DOCX and enhances it.
// The original file is retained in the upload store before enhancement so a
// failed prompt never loses the user's source document.
func (s *Service) EnhanceFile(ctx context.Context, data []byte, mimeType, fileName, owner, jobDescription, jobTitle string) (string, error) {
	text, err := ExtractText(data, mimeType, fileName)
	if err != nil {
		return "", err
	}
	if s.Uploads != nil {
		if _, _, _, err := s.Uploads.Save(ctx, owner, fileName, bytes.NewReader(data)); err != nil {
			return "", fmt.Errorf("retain upload: %w", err)
		}
	}
	return s.Enhance(ctx, text, jobDescription, jobTitle)
}

// Analyze produces structured career guidance for resume text via the AI
// gateway.
func (s *Service) Analyze(ctx context.Context, resumeText string) (assist.Guidance, error) {
	if strings.TrimSpace(resumeText) == "" {
		return assist.Guidance{}, fmt.Errorf("%w: resume text is required", ErrInvalidInput)
	}

	metrics.IncAssistRequested()
	start := time.Now()
	raw, err := s.Assist.SendPrompt(ctx, assist.GuidancePrompt(resumeText))
	metrics.ObserveAssistDurationMs(float64(time.Since(start).Milliseconds()))
	if err != nil {
		metrics.IncAssistFailed()
		return assist.Guidance{}, err
	}

	guidance, err := assist.ParseGuidance(raw)
	if err != nil {
		metrics.IncAssistFailed()
		return assist.Guidance{}, err
	}
	metrics.IncAssistCompleted()
	return guidance, nil
}

// AnalyzeFile extracts text from an uploaded PDF or DOCX and analyzes it.
// Like EnhanceFile, the original upload is retained first.
func (s *Service) AnalyzeFile(ctx context.Context, data []byte, mimeType, fileName, owner string) (assist.Guidance, error) {
	text, err := ExtractText(data, mimeType, fileName)
	if err != nil {
		return assist.Guidance{}, err
	}
	if s.Uploads != nil {
		if _, _, _, err := s.Uploads.Save(ctx, owner, fileName, bytes.NewReader(data)); err != nil {
			return assist.Guidance{}, fmt.Errorf("retain upload: %w", err)
		}
	}
	return s.Analyze(ctx, text)
}

// Convert turns plain text into a downloadable artifact, persists a copy in
// object storage and records it. resumeID may be empty for ad-hoc text.
func (s *Service) Convert(ctx context.Context, resumeID, format, text string) (Artifact, []byte, error) {
	if strings.TrimSpace(text) == "" {
		return Artifact{}, nil, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}

	var (
		payload []byte
		err     error
	)
	switch format {
	case FormatTXT:
		payload = []byte(text)
	case FormatDOCX:
		payload, err = WriteDOCX(text)
	case FormatPDF:
		payload, err = s.Renderer.PDF(ctx, TextPage(text))
	case FormatJPG:
		payload, err = s.Renderer.JPEG(ctx, TextPage(text))
	default:
		return Artifact{}, nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return Artifact{}, nil, err
	}

	art, err := s.record(ctx, resumeID, format, payload)
	if err != nil {
		return Artifact{}, nil, err
	}
	return art, payload, nil
}

// RenderResume projects a stored document into a printable HTML page. A
// non-empty template overrides the stored presentation choice.
func (s *Service) RenderResume(ctx context.Context, id, template string) (string, error) {
	doc, err := s.Docs.GetByID(ctx, id)
	if err != nil {
		return "", err
	}
	if template != "" {
		doc.Template = template
	}
	return render.Page(doc), nil
}

// ExportResume converts a stored document into the requested format.
func (s *Service) ExportResume(ctx context.Context, id, template, format string) (Artifact, []byte, error) {
	doc, err := s.Docs.GetByID(ctx, id)
	if err != nil {
		return Artifact{}, nil, err
	}
	if template != "" {
		doc.Template = template
	}

	var payload []byte
	switch format {
	case FormatTXT:
		payload = []byte(PlainText(doc))
	case FormatDOCX:
		payload, err = WriteDOCX(PlainText(doc))
	case FormatPDF:
		payload, err = s.Renderer.PDF(ctx, render.Page(doc))
	case FormatJPG:
		payload, err = s.Renderer.JPEG(ctx, render.Page(doc))
	default:
		return Artifact{}, nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}
	if err != nil {
		return Artifact{}, nil, err
	}

	art, err := s.record(ctx, id, format, payload)
	if err != nil {
		return Artifact{}, nil, err
	}
	return art, payload, nil
}

// ListArtifacts returns the recorded downloads for a resume.
func (s *Service) ListArtifacts(ctx context.Context, resumeID string) ([]Artifact, error) {
	return s.Artifacts.ListByResume(ctx, resumeID)
}

func (s *Service) record(ctx context.Context, resumeID, format string, payload []byte) (Artifact, error) {
	art := Artifact{
		ID:         uuid.NewString(),
		ResumeID:   resumeID,
		Format:     format,
		StorageKey: "exports/" + uuid.NewString() + "." + format,
		SizeBytes:  int64(len(payload)),
		CreatedAt:  time.Now().UTC(),
	}
	if _, err := s.Store.SaveWithKey(ctx, art.StorageKey, contentTypeFor(format), bytes.NewReader(payload)); err != nil {
		return Artifact{}, err
	}
	if err := s.Artifacts.Create(ctx, art); err != nil {
		return Artifact{}, err
	}
	metrics.IncExportArtifact()
	return art, nil
}
