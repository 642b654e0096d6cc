package coordinator

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	coordinators := r.Group("/coordinators")
	{
		coordinators.POST("", h.Create)
		coordinators.POST("/with-image", h.CreateWithImage)
		coordinators.POST("/upload-image", h.UploadImage)

		coordinators.GET("", h.List)
		coordinators.GET("/featured", h.Featured)
		coordinators.GET("/:id", h.Get)

		coordinators.PUT("/:id", h.Update)
		coordinators.PATCH("/:id", h.Update)
		coordinators.PUT("/:id/with-image", h.UpdateWithImage)
		coordinators.PATCH("/:id/with-image", h.UpdateWithImage)
		coordinators.PATCH("/:id/featured", h.SetFeatured)

		coordinators.DELETE("/:id", h.Delete)
	}
}
