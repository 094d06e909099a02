package export

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/assist"
	"resume-builder/internal/contentapi"
	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/server/respond"
)

const maxUploadSize = 10 << 20 // 10MB

// Handler wires the enhancement and download endpoints.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches export routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/tool", h.tool)
	rg.POST("/career_guidance", h.careerGuidance)
	rg.POST("/download_pdf", h.download(FormatPDF))
	rg.POST("/download_docx", h.download(FormatDOCX))
	rg.POST("/download_jpg", h.download(FormatJPG))
	rg.POST("/download_txt", h.download(FormatTXT))
	rg.GET("/resumes/:id/render", h.renderResume)
	rg.GET("/resumes/:id/artifacts", h.listArtifacts)
}

type toolRequest struct {
	Text           string `json:"text"`
	JobDescription string `json:"jobDescription"`
	JobTitle       string `json:"jobTitle"`
}

// tool accepts either a JSON body with resume text or a multipart upload
// with a "file" part, and returns the enhanced text.
func (h *Handler) tool(c *gin.Context) {
	var (
		enhanced string
		err      error
	)

	if fileHeader, fileErr := c.FormFile("file"); fileErr == nil {
		data, ok := readUpload(c, fileHeader)
		if !ok {
			return
		}
		enhanced, err = h.Svc.EnhanceFile(
			c.Request.Context(),
			data,
			fileHeader.Header.Get("Content-Type"),
			fileHeader.Filename,
			c.PostForm("userEmail"),
			c.PostForm("jobDescription"),
			c.PostForm("jobTitle"),
		)
	} else {
		var req toolRequest
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}
		enhanced, err = h.Svc.Enhance(c.Request.Context(), req.Text, req.JobDescription, req.JobTitle)
	}

	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrUnsupportedFile):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, assist.ErrEmptyResponse), errors.Is(err, assist.ErrUnusableResponse):
			respond.Error(c, http.StatusBadGateway, "assist_error", "assistant returned no usable text", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to enhance resume", nil)
		}
		return
	}

	respond.OK(c, gin.H{"text": enhanced})
}

type guidanceRequest struct {
	Text string `json:"text"`
}

// careerGuidance analyzes a resume and returns structured guidance with ATS
// and quality scores. It accepts a JSON body with resume text or a multipart
// upload; the older dashboard posts the part as "resume_file".
func (h *Handler) careerGuidance(c *gin.Context) {
	var (
		guidance assist.Guidance
		err      error
	)

	if fileHeader := uploadedFile(c); fileHeader != nil {
		data, ok := readUpload(c, fileHeader)
		if !ok {
			return
		}
		guidance, err = h.Svc.AnalyzeFile(
			c.Request.Context(),
			data,
			fileHeader.Header.Get("Content-Type"),
			fileHeader.Filename,
			c.PostForm("userEmail"),
		)
	} else {
		var req guidanceRequest
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}
		guidance, err = h.Svc.Analyze(c.Request.Context(), req.Text)
	}

	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrUnsupportedFile):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		case errors.Is(err, assist.ErrEmptyResponse), errors.Is(err, assist.ErrUnusableResponse):
			respond.Error(c, http.StatusBadGateway, "assist_error", "assistant returned no usable analysis", nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to analyze resume", nil)
		}
		return
	}

	respond.OK(c, guidance)
}

// uploadedFile finds the resume part of a multipart request under either
// accepted field name.
func uploadedFile(c *gin.Context) *multipart.FileHeader {
	for _, field := range []string{"resume_file", "file"} {
		if fileHeader, err := c.FormFile(field); err == nil {
			return fileHeader
		}
	}
	return nil
}

// readUpload enforces the size cap and reads the part into memory. The cap
// is checked against the parsed part's size; by the time FormFile returns
// the body has already been consumed, so a body-level limit would never
// trip.
func readUpload(c *gin.Context, fileHeader *multipart.FileHeader) ([]byte, bool) {
	if fileHeader.Size > maxUploadSize {
		respond.Error(c, http.StatusRequestEntityTooLarge, "validation_error", "file exceeds the 10MB upload limit", nil)
		return nil, false
	}
	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file", nil)
		return nil, false
	}
	return data, true
}

type downloadRequest struct {
	Text     string `json:"text"`
	ResumeID string `json:"resumeId"`
}

func (h *Handler) download(format string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req downloadRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
			return
		}

		art, payload, err := h.Svc.Convert(c.Request.Context(), req.ResumeID, format, req.Text)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrUnsupportedFormat):
				respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
			default:
				respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to generate download", nil)
			}
			return
		}

		c.Header("Content-Disposition", `attachment; filename="resume.`+format+`"`)
		c.Data(http.StatusOK, contentTypeFor(art.Format), payload)
	}
}

func (h *Handler) renderResume(c *gin.Context) {
	id := c.Param("id")
	template := c.Query("template")

	if format := c.Query("format"); format != "" && format != "html" {
		art, payload, err := h.Svc.ExportResume(c.Request.Context(), id, template, format)
		if err != nil {
			h.renderError(c, err)
			return
		}
		c.Header("Content-Disposition", `attachment; filename="resume.`+art.Format+`"`)
		c.Data(http.StatusOK, contentTypeFor(art.Format), payload)
		return
	}

	page, err := h.Svc.RenderResume(c.Request.Context(), id, template)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
}

func (h *Handler) renderError(c *gin.Context, err error) {
	var apiErr *contentapi.APIError
	switch {
	case errors.Is(err, resumes.ErrNotFound),
		errors.As(err, &apiErr) && apiErr.Status == http.StatusNotFound:
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, ErrUnsupportedFormat):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to render resume", nil)
	}
}

func (h *Handler) listArtifacts(c *gin.Context) {
	arts, err := h.Svc.ListArtifacts(c.Request.Context(), c.Param("id"))
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list artifacts", nil)
		return
	}

	out := make([]gin.H, 0, len(arts))
	for _, art := range arts {
		out = append(out, gin.H{
			"id":         art.ID,
			"format":     art.Format,
			"sizeBytes":  art.SizeBytes,
			"storageKey": art.StorageKey,
			"createdAt":  art.CreatedAt,
		})
	}
	respond.OK(c, out)
}
