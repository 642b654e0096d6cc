package article

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	articles := r.Group("/articles")
	{
		articles.POST("", h.Create)
		articles.POST("/with-image", h.CreateWithImage)
		articles.POST("/upload-image", h.UploadImage)

		articles.GET("", h.List)
		articles.GET("/with-authors", h.ListWithAuthors)
		articles.GET("/:id", h.Get)
		articles.GET("/:id/with-author", h.GetWithAuthor)

		articles.PUT("/:id", h.Update)
		articles.PATCH("/:id", h.Update)
		articles.PUT("/:id/with-image", h.UpdateWithImage)
		articles.PATCH("/:id/with-image", h.UpdateWithImage)

		articles.DELETE("/:id", h.Delete)
	}
}
