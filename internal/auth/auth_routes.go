package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/adeka83-arch/systemklinik-sub011/internal/middleware"
)

func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	auth := r.Group("/auth")
	{
		auth.GET("/me", middleware.AuthMiddleware(), middleware.RateLimitByUser(2, 5), handler.Me)
		auth.POST("/login", middleware.RateLimitByIP(0.08, 5), handler.Login)
		auth.POST("/refresh", handler.RefreshToken)
		auth.POST("/logout", middleware.RateLimitByUser(2, 5), handler.Logout)
		// Pendaftaran akun baru hanya oleh admin yang sudah login
		auth.POST("/register", middleware.AuthMiddleware(), middleware.RoleMiddleware(RoleAdmin), handler.Register)
	}
}
