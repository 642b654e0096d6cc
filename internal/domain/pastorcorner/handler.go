package pastorcorner

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

func (h *Handler) Create(c *gin.Context) {
	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}
	p, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Pastor corner post created successfully", p)
}

func (h *Handler) List(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), "")
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "All pastor corner posts loaded successfully", items)
}

func (h *Handler) Latest(c *gin.Context) {
	p, err := h.service.Latest(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Latest pastor corner post loaded successfully", p)
}

func (h *Handler) ByPastor(c *gin.Context) {
	items, err := h.service.List(c.Request.Context(), c.Param("pastorId"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Pastor corner posts by pastor loaded successfully", items)
}

func (h *Handler) Get(c *gin.Context) {
	p, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Pastor corner post loaded successfully", p)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}
	p, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Pastor corner post updated successfully", p)
}

func (h *Handler) Delete(c *gin.Context) {
	p, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Pastor corner post deleted successfully", p)
}
