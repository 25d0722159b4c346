package resumes

import (
	"errors"
	"net/http"

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

// RegisterRoutes attaches resume routes. Reads go on the public group,
// mutations on the owner group.
func (h *Handler) RegisterRoutes(public, owner *gin.RouterGroup) {
	public.GET("/resumes", h.list)
	public.GET("/resumes/active", h.active)
	public.GET("/resumes/:id", h.get)
	public.GET("/resumes/:id/pdf", h.downloadPDF)

	owner.POST("/resumes", h.create)
	owner.PUT("/resumes/:id", h.update)
	owner.DELETE("/resumes/:id", h.remove)
	owner.POST("/resumes/:id/activate", h.activate)
	owner.POST("/resumes/:id/pdf", h.regeneratePDF)
	owner.DELETE("/resumes/:id/pdf", h.deletePDF)

	owner.POST("/resumes/:id/experiences", h.addExperience)
	owner.PUT("/resumes/:id/experiences/:itemId", h.updateExperience)
	owner.DELETE("/resumes/:id/experiences/:itemId", h.deleteExperience)

	owner.POST("/resumes/:id/educations", h.addEducation)
	owner.PUT("/resumes/:id/educations/:itemId", h.updateEducation)
	owner.DELETE("/resumes/:id/educations/:itemId", h.deleteEducation)

	owner.POST("/resumes/:id/skills", h.addSkill)
	owner.PUT("/resumes/:id/skills/:itemId", h.updateSkill)
	owner.DELETE("/resumes/:id/skills/:itemId", h.deleteSkill)

	owner.POST("/resumes/:id/projects", h.addProject)
	owner.PUT("/resumes/:id/projects/:itemId", h.updateProject)
	owner.DELETE("/resumes/:id/projects/:itemId", h.deleteProject)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.Svc.List(c.Request.Context())
	if err != nil {
		h.fail(c, err, "failed to list resumes")
		return
	}
	resp := make([]ResumeResponse, 0, len(items))
	for _, resume := range items {
		resp = append(resp, toResponse(resume))
	}
	respond.OK(c, resp)
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")
	c.Set("resumeId", id)

	detail, err := h.Svc.Detail(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to fetch resume")
		return
	}
	respond.OK(c, toDetailResponse(detail))
}

func (h *Handler) active(c *gin.Context) {
	detail, err := h.Svc.Active(c.Request.Context())
	if err != nil {
		h.fail(c, err, "failed to fetch active resume")
		return
	}
	c.Set("resumeId", detail.ID)
	respond.OK(c, toDetailResponse(detail))
}

func (h *Handler) create(c *gin.Context) {
	var req resumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	resume, err := h.Svc.Create(c.Request.Context(), req.toModel())
	if err != nil {
		h.fail(c, err, "failed to create resume")
		return
	}
	c.Set("resumeId", resume.ID)
	respond.Created(c, toResponse(resume))
}

func (h *Handler) update(c *gin.Context) {
	id := c.Param("id")
	c.Set("resumeId", id)

	var req resumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}

	resume := req.toModel()
	resume.ID = id
	updated, err := h.Svc.Update(c.Request.Context(), resume)
	if err != nil {
		h.fail(c, err, "failed to update resume")
		return
	}
	respond.OK(c, toResponse(updated))
}

func (h *Handler) remove(c *gin.Context) {
	id := c.Param("id")
	c.Set("resumeId", id)

	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err, "failed to delete resume")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) activate(c *gin.Context) {
	id := c.Param("id")
	c.Set("resumeId", id)

	resume, err := h.Svc.Activate(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to activate resume")
		return
	}
	respond.OK(c, toResponse(resume))
}

func (h *Handler) downloadPDF(c *gin.Context) {
	id := c.Param("id")
	c.Set("resumeId", id)

	data, fileName, err := h.Svc.DownloadPDF(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err, "failed to render pdf")
		return
	}
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Data(http.StatusOK, "application/pdf", data)
}

func (h *Handler) regeneratePDF(c *gin.Context) {
	id := c.Param("id")
	c.Set("resumeId", id)

	if err := h.Svc.RegeneratePDF(c.Request.Context(), id); err != nil {
		h.fail(c, err, "failed to regenerate pdf")
		return
	}
	respond.OK(c, gin.H{"resumeId": id, "regenerated": true})
}

func (h *Handler) deletePDF(c *gin.Context) {
	id := c.Param("id")
	c.Set("resumeId", id)

	if err := h.Svc.DeletePDF(c.Request.Context(), id); err != nil {
		h.fail(c, err, "failed to delete pdf")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) addExperience(c *gin.Context) {
	id := c.Param("id")
	c.Set("resumeId", id)

	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	exp, err := req.toModel()
	if err != nil {
		h.fail(c, err, "failed to add experience")
		return
	}
	exp.ResumeID = id

	created, err := h.Svc.AddExperience(c.Request.Context(), exp)
	if err != nil {
		h.fail(c, err, "failed to add experience")
		return
	}
	respond.Created(c, toExperienceResponse(created))
}

func (h *Handler) updateExperience(c *gin.Context) {
	id := c.Param("id")
	c.Set("resumeId", id)

	var req experienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	exp, err := req.toModel()
	if err != nil {
		h.fail(c, err, "failed to update experience")
		return
	}
	exp.ResumeID = id
	exp.ID = c.Param("itemId")

	updated, err := h.Svc.UpdateExperience(c.Request.Context(), exp)
	if err != nil {
		h.fail(c, err, "failed to update experience")
		return
	}
	respond.OK(c, toExperienceResponse(updated))
}

func (h *Handler) deleteExperience(c *gin.Context) {
	id := c.Param("id")
	c.Set("resumeId", id)

	if err := h.Svc.DeleteExperience(c.Request.Context(), id, c.Param("itemId")); err != nil {
		h.fail(c, err, "failed to delete experience")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) addEducation(c *gin.Context) {
	id := c.Param("id")
	c.Set("resumeId", id)

	var req educationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	edu, err := req.toModel()
	if err != nil {
		h.fail(c, err, "failed to add education")
		return
	}
	edu.ResumeID = id

	created, err := h.Svc.AddEducation(c.Request.Context(), edu)
	if err != nil {
		h.fail(c, err, "failed to add education")
		return
	}
	respond.Created(c, toEducationResponse(created))
}

func (h *Handler) updateEducation(c *gin.Context) {
	id := c.Param("id")
	c.Set("resumeId", id)

	var req educationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	edu, err := req.toModel()
	if err != nil {
		h.fail(c, err, "failed to update education")
		return
	}
	edu.ResumeID = id
	edu.ID = c.Param("itemId")

	updated, err := h.Svc.UpdateEducation(c.Request.Context(), edu)
	if err != nil {
		h.fail(c, err, "failed to update education")
		return
	}
	respond.OK(c, toEducationResponse(updated))
}

func (h *Handler) deleteEducation(c *gin.Context) {
	id := c.Param("id")
	c.Set("resumeId", id)

	if err := h.Svc.DeleteEducation(c.Request.Context(), id, c.Param("itemId")); err != nil {
		h.fail(c, err, "failed to delete education")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) addSkill(c *gin.Context) {
	id := c.Param("id")
	c.Set("resumeId", id)

	var req skillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	skill := req.toModel()
	skill.ResumeID = id

	created, err := h.Svc.AddSkill(c.Request.Context(), skill)
	if err != nil {
		h.fail(c, err, "failed to add skill")
		return
	}
	respond.Created(c, toSkillResponse(created))
}

func (h *Handler) updateSkill(c *gin.Context) {
	id := c.Param("id")
	c.Set("resumeId", id)

	var req skillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	skill := req.toModel()
	skill.ResumeID = id
	skill.ID = c.Param("itemId")

	updated, err := h.Svc.UpdateSkill(c.Request.Context(), skill)
	if err != nil {
		h.fail(c, err, "failed to update skill")
		return
	}
	respond.OK(c, toSkillResponse(updated))
}

func (h *Handler) deleteSkill(c *gin.Context) {
	id := c.Param("id")
	c.Set("resumeId", id)

	if err := h.Svc.DeleteSkill(c.Request.Context(), id, c.Param("itemId")); err != nil {
		h.fail(c, err, "failed to delete skill")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) addProject(c *gin.Context) {
	id := c.Param("id")
	c.Set("resumeId", id)

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	project, err := req.toModel()
	if err != nil {
		h.fail(c, err, "failed to add project")
		return
	}
	project.ResumeID = id

	created, err := h.Svc.AddProject(c.Request.Context(), project)
	if err != nil {
		h.fail(c, err, "failed to add project")
		return
	}
	respond.Created(c, toProjectResponse(created))
}

func (h *Handler) updateProject(c *gin.Context) {
	id := c.Param("id")
	c.Set("resumeId", id)

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	project, err := req.toModel()
	if err != nil {
		h.fail(c, err, "failed to update project")
		return
	}
	project.ResumeID = id
	project.ID = c.Param("itemId")

	updated, err := h.Svc.UpdateProject(c.Request.Context(), project)
	if err != nil {
		h.fail(c, err, "failed to update project")
		return
	}
	respond.OK(c, toProjectResponse(updated))
}

func (h *Handler) deleteProject(c *gin.Context) {
	id := c.Param("id")
	c.Set("resumeId", id)

	if err := h.Svc.DeleteProject(c.Request.Context(), id, c.Param("itemId")); err != nil {
		h.fail(c, err, "failed to delete project")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) fail(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, ErrNotFound):
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
	case errors.Is(err, ErrNoPDF):
		respond.Error(c, http.StatusNotFound, "no_pdf", "no pdf rendered for resume", nil)
	case errors.Is(err, ErrInvalidInput):
		respond.Error(c, http.StatusBadRequest, "validation_error", err.Error(), nil)
	default:
		respond.Error(c, http.StatusInternalServerError, "internal_error", action, nil)
	}
}
