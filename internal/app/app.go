package app

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/adeka83-arch/systemklinik-sub011/internal/auth"
	autherrors "github.com/adeka83-arch/systemklinik-sub011/internal/auth/errors"
	"github.com/adeka83-arch/systemklinik-sub011/internal/middleware"
	"github.com/adeka83-arch/systemklinik-sub011/internal/shared/connection"
	"github.com/adeka83-arch/systemklinik-sub011/internal/store"
)

func BuildApp(router *gin.Engine) error {
	// 1. Setup Infrastructure
	redisClient, err := connection.ConnectRedisWithRetry(os.Getenv("REDIS_ADDR"), 5)
	if err != nil {
		return err
	}
	log.Println("✅ Redis connection established")

	kv := store.NewRedisStore(redisClient)

	// 2. Global Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.ContextLogger(zap.L()))

	// 3. Register Modules & Routes
	authService, err := registerModules(router, kv, redisClient)
	if err != nil {
		return err
	}

	// 4. Seed akun admin pertama dari env (untuk instalasi baru)
	if err := seedAdminUser(context.Background(), authService); err != nil {
		return err
	}

	return nil
}

func seedAdminUser(ctx context.Context, authService auth.Service) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	_, err := authService.Register(ctx, auth.RegisterRequest{
		Email:    email,
		Name:     "Administrator",
		Password: password,
		Role:     auth.RoleAdmin,
	})
	if err != nil {
		if errors.Is(err, autherrors.ErrEmailTaken) {
			return nil
		}
		return err
	}

	zap.L().Info("admin user seeded", zap.String("email", email))
	return nil
}
