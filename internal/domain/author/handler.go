package author

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"churchcms/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create godoc
// @Summary Create an author
// @Tags Authors
// @Accept json
// @Produce json
// @Param request body CreateAuthorRequest true "Author"
// @Success 201 {object} map[string]interface{}
// @Failure 400,500 {object} map[string]interface{}
// @Router /authors [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	a, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Author created successfully", a)
}

// List godoc
// @Summary List authors
// @Tags Authors
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /authors [get]
func (h *Handler) List(c *gin.Context) {
	authors, err := h.service.List(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "All authors loaded successfully", authors)
}

// Get godoc
// @Summary Get an author
// @Tags Authors
// @Produce json
// @Param id path string true "Author ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /authors/{id} [get]
func (h *Handler) Get(c *gin.Context) {
	a, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Author loaded successfully", a)
}

// Update godoc
// @Summary Update an author
// @Tags Authors
// @Accept json
// @Produce json
// @Param id path string true "Author ID"
// @Param request body UpdateAuthorRequest true "Fields to change"
// @Success 200 {object} map[string]interface{}
// @Failure 400,404,500 {object} map[string]interface{}
// @Router /authors/{id} [put]
func (h *Handler) Update(c *gin.Context) {
	var req UpdateAuthorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}

	a, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Author updated successfully", a)
}

// Delete godoc
// @Summary Delete an author
// @Tags Authors
// @Produce json
// @Param id path string true "Author ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} map[string]interface{}
// @Router /authors/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	a, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Author deleted successfully", a)
}
