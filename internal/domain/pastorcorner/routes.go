package pastorcorner

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	posts := r.Group("/pastor-corner")
	{
		posts.GET("/latest", h.Latest)
		posts.GET("/pastor/:pastorId", h.ByPastor)

		posts.POST("", h.Create)
		posts.GET("", h.List)
		posts.GET("/:id", h.Get)
		posts.PUT("/:id", h.Update)
		posts.PATCH("/:id", h.Update)
		posts.DELETE("/:id", h.Delete)
	}
}
