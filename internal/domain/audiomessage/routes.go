package audiomessage

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	audio := r.Group("/audio-messages")
	{
		audio.GET("/categories", h.Categories)
		audio.GET("", h.List)
		audio.GET("/latest", h.Latest)
		audio.GET("/popular", h.Popular)
		audio.GET("/category/:category", h.ByCategory)
		audio.GET("/:id", h.Get)

		audio.POST("", h.Create)
		audio.PUT("/:id", h.Update)
		audio.PATCH("/:id", h.Update)
		audio.DELETE("/:id", h.Delete)
		audio.POST("/:id/play", h.Play)
	}
}
