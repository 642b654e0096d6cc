package message

import "github.com/gin-gonic/gin"

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	messages := r.Group("/messages")
	{
		messages.POST("", h.Create)
		messages.GET("", h.List)
		messages.GET("/latest", h.Latest)
		messages.GET("/coordinator/:coordinatorId", h.ByCoordinator)
		messages.GET("/:id", h.Get)
		messages.PUT("/:id", h.Update)
		messages.DELETE("/:id", h.Delete)
	}
}
