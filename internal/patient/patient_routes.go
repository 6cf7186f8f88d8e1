package patient

import (
	"github.com/gin-gonic/gin"

	"github.com/adeka83-arch/systemklinik-sub011/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	patients := r.Group("/patients")
	patients.Use(middleware.AuthMiddleware())
	{
		patients.GET("", h.GetAll)
		patients.GET("/:id", h.GetByID)
		patients.POST("", h.Create)
		patients.PUT("/:id", h.Update)
		patients.DELETE("/:id", h.Delete)
	}
}
