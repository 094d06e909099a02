package resumes

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-builder/internal/shared/server/respond"
)

// Handler exposes the resume collection over HTTP. The wire shape follows
// the headless-CMS convention the builder client speaks: payloads travel in
// a "data" envelope and responses nest attributes under the record ID.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches resume routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/user-resumes", h.create)
	rg.GET("/user-resumes", h.list)
	rg.GET("/user-resumes/:id", h.get)
	rg.PUT("/user-resumes/:id", h.update)
	rg.DELETE("/user-resumes/:id", h.remove)
}

type dataRequest struct {
	Data map[string]any `json:"data"`
}

func toEnvelope(rec Record) gin.H {
	return gin.H{
		"data": gin.H{
			"id":         rec.ID,
			"attributes": rec.Attributes,
		},
	}
}

func (h *Handler) create(c *gin.Context) {
	var req dataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	rec, err := h.Svc.Create(c.Request.Context(), req.Data)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to create resume", nil)
		}
		return
	}

	respond.Created(c, toEnvelope(rec))
}

func (h *Handler) list(c *gin.Context) {
	owner := c.Query("filters[userEmail][$eq]")
	if owner == "" {
		owner = c.Query("userEmail")
	}

	recs, err := h.Svc.ListByOwner(c.Request.Context(), owner)
	if err != nil {
		switch {
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list resumes", nil)
		}
		return
	}

	items := make([]gin.H, 0, len(recs))
	for _, rec := range recs {
		items = append(items, gin.H{
			"id":         rec.ID,
			"attributes": rec.Attributes,
		})
	}
	respond.OK(c, gin.H{"data": items})
}

func (h *Handler) get(c *gin.Context) {
	rec, err := h.Svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to fetch resume", nil)
		}
		return
	}

	respond.OK(c, toEnvelope(rec))
}

func (h *Handler) update(c *gin.Context) {
	var req dataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	rec, err := h.Svc.Update(c.Request.Context(), c.Param("id"), req.Data)
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to update resume", nil)
		}
		return
	}

	respond.OK(c, toEnvelope(rec))
}

func (h *Handler) remove(c *gin.Context) {
	if err := h.Svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		case errors.Is(err, ErrInvalidInput):
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
		default:
			respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to delete resume", nil)
		}
		return
	}

	respond.JSON(c, http.StatusOK, gin.H{"ok": true})
}
