package coordinator

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"churchcms/internal/media"
	"churchcms/internal/pkg/response"
	"churchcms/internal/pkg/utils"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCoordinatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}
	h.create(c, req, nil)
}

// CreateWithImage godoc
// @Summary Create a coordinator with a profile image
// @Tags Coordinators
// @Accept multipart/form-data
// @Produce json
// @Param image formData file false "Profile image"
// @Success 201 {object} map[string]interface{}
// @Failure 400,500 {object} map[string]interface{}
// @Router /coordinators/with-image [post]
func (h *Handler) CreateWithImage(c *gin.Context) {
	var req CreateCoordinatorRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid form data", err)
		return
	}
	files, err := utils.FormFiles(c, media.CoordinatorImage.Field)
	if err != nil {
		response.BadRequest(c, "Invalid form data", err)
		return
	}
	h.create(c, req, files)
}

func (h *Handler) create(c *gin.Context, req CreateCoordinatorRequest, files media.Files) {
	coord, err := h.service.Create(c.Request.Context(), req, files)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Coordinator created successfully", coord)
}

func (h *Handler) UploadImage(c *gin.Context) {
	files, err := utils.FormFiles(c, media.CoordinatorImage.Field)
	if err != nil {
		response.BadRequest(c, "Invalid form data", err)
		return
	}
	att, err := h.service.UploadImage(c.Request.Context(), files[media.CoordinatorImage.Field])
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Image uploaded successfully", att)
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "All coordinators loaded successfully", items)
}

// Featured godoc
// @Summary Get the featured coordinator
// @Tags Coordinators
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /coordinators/featured [get]
func (h *Handler) Featured(c *gin.Context) {
	coord, err := h.service.Featured(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Featured coordinator loaded successfully", coord)
}

func (h *Handler) Get(c *gin.Context) {
	coord, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Coordinator loaded successfully", coord)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateCoordinatorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}
	h.update(c, req, nil)
}

func (h *Handler) UpdateWithImage(c *gin.Context) {
	var req UpdateCoordinatorRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid form data", err)
		return
	}
	files, err := utils.FormFiles(c, media.CoordinatorImage.Field)
	if err != nil {
		response.BadRequest(c, "Invalid form data", err)
		return
	}
	h.update(c, req, files)
}

func (h *Handler) update(c *gin.Context, req UpdateCoordinatorRequest, files media.Files) {
	coord, err := h.service.Update(c.Request.Context(), c.Param("id"), req, files)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Coordinator updated successfully", coord)
}

// SetFeatured godoc
// @Summary Feature a coordinator
// @Description Makes the coordinator the only featured one. Send {"isFeatured": false} to unfeature it.
// @Tags Coordinators
// @Accept json
// @Produce json
// @Param id path string true "Coordinator ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /coordinators/{id}/featured [patch]
func (h *Handler) SetFeatured(c *gin.Context) {
	var req SetFeaturedRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body", err)
			return
		}
	}
	featured := req.IsFeatured == nil || *req.IsFeatured

	coord, err := h.service.SetFeatured(c.Request.Context(), c.Param("id"), featured)
	if err != nil {
		response.Fail(c, err)
		return
	}
	msg := "Coordinator set as featured successfully"
	if !featured {
		msg = "Coordinator removed from featured successfully"
	}
	response.Success(c, http.StatusOK, msg, coord)
}

func (h *Handler) Delete(c *gin.Context) {
	coord, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Coordinator deleted successfully", coord)
}
