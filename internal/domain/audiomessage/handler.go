package audiomessage

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"churchcms/internal/media"
	"churchcms/internal/pkg/pagination"
	"churchcms/internal/pkg/response"
	"churchcms/internal/pkg/utils"
)

const (
	latestLimit     = 5
	popularLimit    = 10
	byCategoryLimit = 10
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Categories(c *gin.Context) {
	names, err := h.service.Categories(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Audio message categories retrieved successfully", names)
}

// List godoc
// @Summary List active audio messages
// @Tags AudioMessages
// @Produce json
// @Param category query string false "Category name, or all"
// @Param speaker query string false "Speaker substring, or all"
// @Param search query string false "Matches title, description or speaker"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Router /audio-messages [get]
func (h *Handler) List(c *gin.Context) {
	p := pagination.FromQuery(c)
	f := Filter{
		Category: c.Query("category"),
		Speaker:  c.Query("speaker"),
		Search:   c.Query("search"),
	}
	items, total, err := h.service.List(c.Request.Context(), f, p)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Paginated(c, "Audio messages retrieved successfully", views(items), p.Meta(total))
}

func (h *Handler) Latest(c *gin.Context) {
	items, err := h.service.Latest(c.Request.Context(), pagination.FromQueryLimit(c, latestLimit).Limit)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Latest audio messages retrieved successfully", views(items))
}

func (h *Handler) Popular(c *gin.Context) {
	items, err := h.service.Popular(c.Request.Context(), pagination.FromQueryLimit(c, popularLimit).Limit)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Popular audio messages retrieved successfully", views(items))
}

func (h *Handler) ByCategory(c *gin.Context) {
	name := c.Param("category")
	items, err := h.service.ByCategory(c.Request.Context(), name, pagination.FromQueryLimit(c, byCategoryLimit).Limit)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, fmt.Sprintf("Audio messages in %s category retrieved successfully", name), views(items))
}

func (h *Handler) Get(c *gin.Context) {
	a, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Audio message retrieved successfully", newView(*a))
}

// Create godoc
// @Summary Upload an audio message
// @Tags AudioMessages
// @Accept multipart/form-data
// @Produce json
// @Param audio formData file true "Audio file"
// @Param thumbnail formData file false "Thumbnail image"
// @Success 201 {object} map[string]interface{}
// @Failure 400,500 {object} map[string]interface{}
// @Router /audio-messages [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateAudioMessageRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid form data", err)
		return
	}
	files, err := utils.FormFiles(c, media.AudioFile.Field, media.AudioThumbnail.Field)
	if err != nil {
		response.BadRequest(c, "Invalid form data", err)
		return
	}
	a, err := h.service.Create(c.Request.Context(), req, files)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Audio message created successfully", newView(*a))
}

// Update accepts JSON or multipart; files are optional.
func (h *Handler) Update(c *gin.Context) {
	var req UpdateAudioMessageRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}
	files, err := utils.FormFiles(c, media.AudioFile.Field, media.AudioThumbnail.Field)
	if err != nil {
		response.BadRequest(c, "Invalid form data", err)
		return
	}
	a, err := h.service.Update(c.Request.Context(), c.Param("id"), req, files)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Audio message updated successfully", newView(*a))
}

func (h *Handler) Delete(c *gin.Context) {
	if _, err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Audio message deleted successfully", nil)
}

func (h *Handler) Play(c *gin.Context) {
	n, err := h.service.Play(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Play count incremented successfully", PlayResponse{PlayCount: n})
}
