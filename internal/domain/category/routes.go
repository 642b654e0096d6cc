package category

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	categories := r.Group("/categories")
	{
		categories.GET("", h.List)
		categories.GET("/active", h.Active)
		categories.GET("/stats", h.Stats)
		categories.GET("/:id", h.Get)

		categories.POST("", h.Create)
		categories.PUT("/reorder", h.Reorder)
		categories.PUT("/:id", h.Update)
		categories.PATCH("/:id", h.Update)
		categories.DELETE("/:id", h.Delete)
	}
}
