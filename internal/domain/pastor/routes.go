package pastor

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	pastors := r.Group("/pastors")
	{
		pastors.POST("", h.Create)
		pastors.GET("", h.List)
		pastors.GET("/active", h.Active)
		pastors.GET("/:id", h.Get)
		pastors.PUT("/:id", h.Update)
		pastors.PATCH("/:id", h.Update)
		pastors.DELETE("/:id", h.Delete)
	}
}
