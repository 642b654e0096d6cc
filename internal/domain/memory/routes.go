package memory

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	memories := r.Group("/memory")
	{
		memories.POST("/upload-image", h.UploadImage)
		memories.POST("/with-image", h.CreateWithImage)
		memories.GET("/by-events", h.Gallery)
		memories.GET("/activity/:activityId", h.ByActivity)

		memories.POST("", h.Create)
		memories.GET("", h.List)
		memories.GET("/:id", h.Get)
		memories.PUT("/:id", h.Update)
		memories.PATCH("/:id", h.Update)
		memories.PUT("/:id/with-image", h.UpdateWithImage)
		memories.PATCH("/:id/with-image", h.UpdateWithImage)
		memories.DELETE("/:id", h.Delete)
	}
}
