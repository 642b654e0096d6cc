package article

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"churchcms/internal/media"
	"churchcms/internal/pkg/pagination"
	"churchcms/internal/pkg/response"
	"churchcms/internal/pkg/utils"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Create godoc
// @Summary Create an article
// @Description Creates an article from a JSON body. displayImage may be a URL obtained from /articles/upload-image.
// @Tags Articles
// @Accept json
// @Produce json
// @Param request body CreateArticleRequest true "Article"
// @Success 201 {object} map[string]interface{}
// @Failure 400,500 {object} map[string]interface{}
// @Router /articles [post]
func (h *Handler) Create(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}
	h.create(c, req, nil)
}

// CreateWithImage godoc
// @Summary Create an article with a display image
// @Tags Articles
// @Accept multipart/form-data
// @Produce json
// @Param image formData file false "Display image"
// @Success 201 {object} map[string]interface{}
// @Failure 400,500 {object} map[string]interface{}
// @Router /articles/with-image [post]
func (h *Handler) CreateWithImage(c *gin.Context) {
	var req CreateArticleRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid form data", err)
		return
	}
	files, err := utils.FormFiles(c, media.ArticleImage.Field)
	if err != nil {
		response.BadRequest(c, "Invalid form data", err)
		return
	}
	h.create(c, req, files)
}

func (h *Handler) create(c *gin.Context, req CreateArticleRequest, files media.Files) {
	a, err := h.service.Create(c.Request.Context(), req, files)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Article created successfully", a)
}

// UploadImage godoc
// @Summary Upload an article image
// @Tags Articles
// @Accept multipart/form-data
// @Produce json
// @Param image formData file true "Image"
// @Success 200 {object} map[string]interface{}
// @Failure 400,500 {object} map[string]interface{}
// @Router /articles/upload-image [post]
func (h *Handler) UploadImage(c *gin.Context) {
	files, err := utils.FormFiles(c, media.ArticleImage.Field)
	if err != nil {
		response.BadRequest(c, "Invalid form data", err)
		return
	}
	att, err := h.service.UploadImage(c.Request.Context(), files[media.ArticleImage.Field])
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Image uploaded successfully", att)
}

// List godoc
// @Summary List articles
// @Tags Articles
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} map[string]interface{}
// @Router /articles [get]
func (h *Handler) List(c *gin.Context) {
	p := pagination.FromQuery(c)
	items, total, err := h.service.List(c.Request.Context(), p)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Paginated(c, "All articles loaded successfully", items, p.ArticleMeta(total))
}

// ListWithAuthors godoc
// @Summary List articles with their authors
// @Tags Articles
// @Produce json
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} map[string]interface{}
// @Router /articles/with-authors [get]
func (h *Handler) ListWithAuthors(c *gin.Context) {
	p := pagination.FromQuery(c)
	items, total, err := h.service.ListWithAuthors(c.Request.Context(), p)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Paginated(c, "Articles with authors loaded successfully", items, p.ArticleMeta(total))
}

func (h *Handler) Get(c *gin.Context) {
	a, err := h.service.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Article loaded successfully", a)
}

func (h *Handler) GetWithAuthor(c *gin.Context) {
	a, err := h.service.GetWithAuthor(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Article loaded successfully", a)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body", err)
		return
	}
	h.update(c, req, nil)
}

// UpdateWithImage godoc
// @Summary Update an article and optionally replace its display image
// @Tags Articles
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Article ID"
// @Param image formData file false "New display image"
// @Success 200 {object} map[string]interface{}
// @Failure 400,404,500 {object} map[string]interface{}
// @Router /articles/{id}/with-image [put]
func (h *Handler) UpdateWithImage(c *gin.Context) {
	var req UpdateArticleRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid form data", err)
		return
	}
	files, err := utils.FormFiles(c, media.ArticleImage.Field)
	if err != nil {
		response.BadRequest(c, "Invalid form data", err)
		return
	}
	h.update(c, req, files)
}

func (h *Handler) update(c *gin.Context, req UpdateArticleRequest, files media.Files) {
	a, err := h.service.Update(c.Request.Context(), c.Param("id"), req, files)
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Article updated successfully", a)
}

func (h *Handler) Delete(c *gin.Context) {
	a, err := h.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Article deleted successfully", a)
}
