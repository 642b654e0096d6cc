package category

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"churchcms/internal/pkg/pagination"
	"churchcms/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List godoc
// @Summary List categories
// @Tags Categories
// @Produce json
// @Param includeInactive query bool false "Include inactive categories"
// @Param search query string false "Matches name or description"
// @Param page query int false "Page"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{}
// @Router /categories [get]
func (h *Handler) List(c *gin.Context) {
	p := pagination.FromQuery(c)
	f := ListFilter{
		IncludeInactive: c.Query("includeInactive") == "true",
		Search:          c.Query("search"),
	}
	items, total, err := h.service.List(c.Request.Context(), f, p)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Paginated(c, "Categories retrieved successfully", items, p.Meta(total))
}

func (h *Handler) Active(c *gin.Context) {
	names, err := h.service.ActiveNames(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Active categories retrieved successfully", names)
}

func (h *Handler) Stats(c *gin.Context) {
	stats, err := h.service.Stats(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Category statistics retrieved successfully", stats)
}

func (h *Handler) Get(c *gin.Context) {
	cat, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Category retrieved successfully", cat)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}
	cat, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Category created successfully", cat)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}
	cat, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Category updated successfully", cat)
}

// Delete godoc
// @Summary Delete a category
// @Description Fails with 400 while active audio messages are filed under the category.
// @Tags Categories
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400,404 {object} map[string]interface{}
// @Router /categories/{id} [delete]
func (h *Handler) Delete(c *gin.Context) {
	if _, err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Category deleted successfully", nil)
}

func (h *Handler) Reorder(c *gin.Context) {
	var req ReorderRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.CategoryOrders == nil {
		response.Fail(c, ErrOrdersNotArray)
		return
	}
	if err := h.service.Reorder(c.Request.Context(), *req.CategoryOrders); err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Categories reordered successfully", nil)
}
