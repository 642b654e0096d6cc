package message

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

// publishedFilter reads ?isPublished; absent means no filter.
func publishedFilter(c *gin.Context) *bool {
	v, ok := c.GetQuery("isPublished")
	if !ok {
		return nil
	}
	published := v == "true"
	return &published
}

// Create godoc
// @Summary Create a message
// @Description datePublished defaults to now and isPublished to true.
// @Tags Messages
// @Accept json
// @Produce json
// @Param request body CreateMessageRequest true "Message"
// @Success 201 {object} map[string]interface{}
// @Failure 400,500 {object} map[string]interface{}
// @Router /messages [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}
	m, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Message created successfully", m)
}

// List godoc
// @Summary List messages
// @Tags Messages
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Param isPublished query bool false "Filter by publication state"
// @Success 200 {object} map[string]interface{}
// @Router /messages [get]
func (h *Handler) List(c *gin.Context) {
	p := pagination.FromQuery(c)
	items, total, err := h.service.List(c.Request.Context(), Filter{IsPublished: publishedFilter(c)}, p)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Paginated(c, "All messages loaded successfully", items, p.MessageMeta(total))
}

func (h *Handler) Latest(c *gin.Context) {
	m, err := h.service.Latest(c.Request.Context())
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Latest message loaded successfully", m)
}

func (h *Handler) ByCoordinator(c *gin.Context) {
	p := pagination.FromQuery(c)
	f := Filter{IsPublished: publishedFilter(c), CoordinatorID: c.Param("coordinatorId")}
	items, total, err := h.service.List(c.Request.Context(), f, p)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Paginated(c, "Messages by coordinator loaded successfully", items, p.MessageMeta(total))
}

func (h *Handler) Get(c *gin.Context) {
	m, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Message loaded successfully", m)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}
	m, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Message updated successfully", m)
}

func (h *Handler) Delete(c *gin.Context) {
	m, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Message deleted successfully", m)
}
