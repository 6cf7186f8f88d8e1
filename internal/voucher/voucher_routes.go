package voucher

import (
	"github.com/gin-gonic/gin"

	"github.com/adeka83-arch/systemklinik-sub011/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler) {
	vouchers := r.Group("/vouchers")
	vouchers.Use(middleware.AuthMiddleware())
	{
		vouchers.GET("", h.GetAll)
		// Didaftarkan sebelum /:id supaya tidak tertangkap param route
		vouchers.GET("/reminders", h.GetReminders)
		vouchers.GET("/:id", h.GetByID)
		vouchers.POST("", h.Create)
		vouchers.PUT("/:id", h.Update)
		vouchers.DELETE("/:id", h.Delete)
	}
}
