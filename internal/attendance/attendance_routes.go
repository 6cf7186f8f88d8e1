package attendance

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/adeka83-arch/systemklinik-sub011/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, rdb *redis.Client) {
	attendances := r.Group("/attendances")
	attendances.Use(middleware.AuthMiddleware())
	{
		attendances.GET("", h.GetAll)
		// Idempotency-Key menahan double submit form absensi
		attendances.POST("", middleware.Idempotency(rdb), h.Create)
		attendances.PUT("/:id", h.Update)
		attendances.DELETE("/:id", h.Delete)
	}
}
