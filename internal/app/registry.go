package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/adeka83-arch/systemklinik-sub011/internal/attendance"
	"github.com/adeka83-arch/systemklinik-sub011/internal/auth"
	"github.com/adeka83-arch/systemklinik-sub011/internal/directory"
	"github.com/adeka83-arch/systemklinik-sub011/internal/doctor"
	"github.com/adeka83-arch/systemklinik-sub011/internal/employee"
	"github.com/adeka83-arch/systemklinik-sub011/internal/notification"
	"github.com/adeka83-arch/systemklinik-sub011/internal/patient"
	"github.com/adeka83-arch/systemklinik-sub011/internal/shared/counter"
	"github.com/adeka83-arch/systemklinik-sub011/internal/store"
	"github.com/adeka83-arch/systemklinik-sub011/internal/voucher"
)

// Adapter kecil supaya directory tidak perlu bergantung ke repository penuh.
type doctorNameFinder struct {
	repo doctor.Repository
}

func (f doctorNameFinder) FindDoctorName(ctx context.Context, id string) (string, error) {
	d, err := f.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	return d.Name, nil
}

type employeeNameFinder struct {
	repo employee.Repository
}

func (f employeeNameFinder) FindEmployeeName(ctx context.Context, id string) (string, error) {
	e, err := f.repo.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	return e.Name, nil
}

func registerModules(
	router *gin.Engine,
	kv store.RecordStore,
	rdb *redis.Client,
) (auth.Service, error) {
	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(kv)
	authRepo := auth.NewRepository(kv)
	counterRepo := counter.NewRepository(rdb)
	doctorRepo := doctor.NewRepository(kv)
	employeeRepo := employee.NewRepository(kv)
	notificationRepo := notification.NewRepository(kv)
	patientRepo := patient.NewRepository(kv)
	voucherRepo := voucher.NewRepository(kv)

	// --- Directory Lookup ---
	directoryLookup := directory.NewService(
		doctorNameFinder{repo: doctorRepo},
		employeeNameFinder{repo: employeeRepo},
		rdb,
	)

	// --- Services ---
	attendanceService := attendance.NewService(attendanceRepo, directoryLookup)
	authService := auth.NewService(authRepo)
	doctorService := doctor.NewService(doctorRepo, rdb)
	employeeService := employee.NewService(employeeRepo, rdb)
	notificationService := notification.NewService(notificationRepo)
	patientService := patient.NewService(patientRepo, counterRepo)
	voucherService := voucher.NewService(voucherRepo)

	// --- Handlers ---
	attendanceHandler := attendance.NewHandlerWithRedis(attendanceService, rdb)
	authHandler := auth.NewHandler(authService)
	doctorHandler := doctor.NewHandler(doctorService)
	employeeHandler := employee.NewHandler(employeeService)
	notificationHandler := notification.NewHandler(notificationService)
	patientHandler := patient.NewHandler(patientService)
	voucherHandler := voucher.NewHandler(voucherService)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	{
		auth.RegisterRoutes(api, authHandler)
		attendance.RegisterRoutes(api, attendanceHandler, rdb)
		doctor.RegisterRoutes(api, doctorHandler)
		employee.RegisterRoutes(api, employeeHandler)
		notification.RegisterRoutes(api, notificationHandler)
		patient.RegisterRoutes(api, patientHandler)
		voucher.RegisterRoutes(api, voucherHandler)
	}

	return authService, nil
}
