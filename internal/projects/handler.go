package projects

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"portfolio-backend/internal/shared/server/respond"
)

// Handler wires HTTP handlers to the service.
type Handler struct {
	Svc *Service
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches project routes. Reads go on the public group,
// mutations on the owner group.
func (h *Handler) RegisterRoutes(public, owner *gin.RouterGroup) {
	public.GET("/projects", h.list)
	public.GET("/projects/featured", h.featured)
	public.GET("/projects/technologies", h.technologies)
	public.GET("/projects/:id", h.get)

	owner.POST("/projects", h.create)
	owner.PUT("/projects/:id", h.update)
	owner.DELETE("/projects/:id", h.remove)
	owner.POST("/projects/:id/featured", h.setFeatured)
	owner.POST("/projects/:id/technologies", h.addTechnology)
	owner.DELETE("/projects/:id/technologies/:tech", h.removeTechnology)
}

func (h *Handler) list(c *gin.Context) {
	filter := Filter{
		Technology: strings.TrimSpace(c.Query("technology")),
		Search:     strings.TrimSpace(c.Query("search")),
	}
	if raw := c.Query("featured"); raw != "" {
		featured := raw == "true" || raw == "1"
		filter.Featured = &featured
	}
	if v := c.Query("limit"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			filter.Limit = parsed
		}
	}
	if v := c.Query("offset"); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil {
			filter.Offset = parsed
		}
	}

	items, err := h.Svc.List(c.Request.Context(), filter)
	if err != nil {
		h.fail(c, err, "failed to list projects")
		return
	}
	respond.OK(c, toResponseList(items))
}

func (h *Handler) featured(c *gin.Context) {
	items, err := h.Svc.Featured(c.Request.Context())
	if err != nil {
		h.fail(c, err, "failed to list featured projects")
		return
	}
	respond.OK(c, toResponseList(items))
}

func (h *Handler) technologies(c *gin.Context) {
	items, err := h.Svc.Technologies(c.Request.Context())
	if err != nil {
		h.fail(c, err, "failed to list technologies")
		return
	}
	if items == nil {
		items = []string{}
	}
	respond.OK(c, gin.H{"technologies": items})
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	c.Set("projectId", id)

	project, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to fetch project")
		return
	}
	respond.OK(c, toResponse(project))
}

func (h *Handler) create(c *gin.Context) {
	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	project, err := h.Svc.Create(c.Request.Context(), req.toModel())
	if err != nil {
		h.fail(c, err, "failed to create project")
		return
	}
	c.Set("projectId", project.ID)
	respond.Created(c, toResponse(project))
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")
	c.Set("projectId", id)

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	project := req.toModel()
	project.ID = id
	updated, err := h.Svc.Update(c.Request.Context(), project)
	if err != nil {
		h.fail(c, err, "failed to update project")
		return
	}
	respond.OK(c, toResponse(updated))
}

func (h *Handler) remove(c *gin.Context) {
	id := c.Param("id")
	c.Set("projectId", id)

	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err, "failed to delete project")
		return
	}
	c.Status(http.StatusNoContent)
}

type featuredRequest struct {
	Featured bool `json:"featured"`
}

func (h *Handler) setFeatured(c *gin.Context) {
	id := c.Param("id")
	c.Set("projectId", id)

	var req featuredRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	project, err := h.Svc.SetFeatured(c.Request.Context(), id, req.Featured)
	if err != nil {
		h.fail(c, err, "failed to update featured flag")
		return
	}
	respond.OK(c, toResponse(project))
}

type technologyRequest struct {
	Technology string `json:"technology"`
}

func (h *Handler) addTechnology(c *gin.Context) {
	id := c.Param("id")
	c.Set("projectId", id)

	var req technologyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	project, err := h.Svc.AddTechnology(c.Request.Context(), id, req.Technology)
	if err != nil {
		h.fail(c, err, "failed to add technology")
		return
	}
	respond.OK(c, toResponse(project))
}

func (h *Handler) removeTechnology(c *gin.Context) {
	id := c.Param("id")
	c.Set("projectId", id)

	project, err := h.Svc.RemoveTechnology(c.Request.Context(), id, c.Param("tech"))
	if err != nil {
		h.fail(c, err, "failed to remove technology")
		return
	}
	respond.OK(c, toResponse(project))
}

func (h *Handler) fail(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "project not found", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", action, nil)
	}
}
