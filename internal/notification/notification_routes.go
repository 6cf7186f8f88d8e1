package notification

import (
	"github.com/gin-gonic/gin"

	"github.com/adeka83-arch/systemklinik-sub011/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	notifications := r.Group("/notifications")
	notifications.Use(middleware.AuthMiddleware())
	{
		notifications.GET("", h.GetAll)
		notifications.PATCH("/:id/read", h.MarkRead)
	}
}
