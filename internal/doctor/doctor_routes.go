package doctor

import (
	"github.com/gin-gonic/gin"

	"github.com/adeka83-arch/systemklinik-sub011/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	doctors := r.Group("/doctors")
	doctors.Use(middleware.AuthMiddleware())
	{
		doctors.GET("", h.GetAll)
		doctors.GET("/:id", h.GetByID)
		doctors.POST("", h.Create)
		doctors.PUT("/:id", h.Update)
		doctors.DELETE("/:id", h.Delete)
	}
}
