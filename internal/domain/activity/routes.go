package activity

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	activities := r.Group("/activities")
	{
		activities.POST("", h.Create)
		activities.GET("", h.List)
		activities.GET("/:id", h.Get)
		activities.PUT("/:id", h.Update)
		activities.PATCH("/:id", h.Update)
		activities.DELETE("/:id", h.Delete)
	}
}
