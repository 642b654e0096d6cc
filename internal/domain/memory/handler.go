package memory

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"churchcms/internal/media"
	"churchcms/internal/pkg/pagination"
	"churchcms/internal/pkg/response"
	"churchcms/internal/pkg/utils"
)

const activityPageSize = 20

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) UploadImage(c *gin.Context) {
	files, err := utils.FormFiles(c, media.MemoryImage.Field)
	if err != nil {
		response.BadRequest(c, "Invalid form data", err)
		return
	}
	att, err := h.service.UploadImage(c.Request.Context(), files[media.MemoryImage.Field])
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Image uploaded successfully", att)
}

// CreateWithImage godoc
// @Summary Upload a memory with its image
// @Tags Memories
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Photo"
// @Param activityId formData string true "Activity ID"
// @Success 201 {object} map[string]interface{}
// @Failure 400,500 {object} map[string]interface{}
// @Router /memory/with-image [post]
func (h *Handler) CreateWithImage(c *gin.Context) {
	var req CreateWithImageRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid form data", err)
		return
	}
	files, err := utils.FormFiles(c, media.MemoryImage.Field)
	if err != nil {
		response.BadRequest(c, "Invalid form data", err)
		return
	}
	m, err := h.service.CreateWithImage(c.Request.Context(), req, files)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Memory created successfully with image", m)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateMemoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}
	m, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Memory created successfully", m)
}

// Gallery godoc
// @Summary Get gallery organized by events
// @Tags Memories
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /memory/by-events [get]
func (h *Handler) Gallery(c *gin.Context) {
	items, err := h.service.Gallery(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Gallery organized by events loaded successfully", items)
}

func (h *Handler) ByActivity(c *gin.Context) {
	p := pagination.FromQueryLimit(c, activityPageSize)
	items, total, err := h.service.ByActivity(c.Request.Context(), c.Param("activityId"), p)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Paginated(c, "Memories loaded successfully", items, p.Meta(total))
}

// List godoc
// @Summary List memories
// @Tags Memories
// @Produce json
// @Param activityId query string false "Only memories of this activity"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} map[string]interface{}
// @Router /memory [get]
func (h *Handler) List(c *gin.Context) {
	p := pagination.FromQuery(c)
	items, total, err := h.service.List(c.Request.Context(), c.Query("activityId"), p)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Paginated(c, "All Memories loaded successfully", items, p.Meta(total))
}

func (h *Handler) Get(c *gin.Context) {
	m, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Memory loaded successfully", m)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateMemoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}
	h.update(c, req, nil)
}

func (h *Handler) UpdateWithImage(c *gin.Context) {
	var req UpdateMemoryRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid form data", err)
		return
	}
	files, err := utils.FormFiles(c, media.MemoryImage.Field)
	if err != nil {
		response.BadRequest(c, "Invalid form data", err)
		return
	}
	h.update(c, req, files)
}

func (h *Handler) update(c *gin.Context, req UpdateMemoryRequest, files media.Files) {
	m, err := h.service.Update(c.Request.Context(), c.Param("id"), req, files)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Memory updated successfully", m)
}

func (h *Handler) Delete(c *gin.Context) {
	m, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Memory deleted successfully", m)
}
