package doctor

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	doctorerrors "github.com/adeka83-arch/systemklinik-sub011/internal/doctor/errors"
	"github.com/adeka83-arch/systemklinik-sub011/internal/shared/apperror"
	"github.com/adeka83-arch/systemklinik-sub011/internal/store"
)

// DirectoryCacheKeyPrefix harus sama dengan yang dipakai directory service
// supaya perubahan nama dokter langsung menginvalidasi cache lookup.
const DirectoryCacheKeyPrefix = "directory:name:"

//go:generate mockgen -source=doctor_service.go -destination=mock/doctor_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateDoctorRequest) (DoctorResponse, error)
	GetAll(ctx context.Context) ([]DoctorResponse, error)
	GetByID(ctx context.Context, id string) (DoctorResponse, error)
	Update(ctx context.Context, id string, req UpdateDoctorRequest) (DoctorResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("doctor.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("doctor.service")
	}
	return &service{repo: repo, rdb: rdb, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateDoctorRequest) (DoctorResponse, error) {
	s.logger.Debug("create doctor requested",
		zap.String("name", req.Name),
		zap.String("license_no", req.LicenseNo),
	)

	existing, err := s.repo.FindAll(ctx)
	if err != nil {
		return DoctorResponse{}, storeFailure(err)
	}
	for _, d := range existing {
		if d.LicenseNo == req.LicenseNo {
			return DoctorResponse{}, doctorerrors.ErrDuplicateLicenseNo
		}
	}

	now := time.Now().UTC()
	d := &Doctor{
		ID:             uuid.NewString(),
		Name:           req.Name,
		Specialization: req.Specialization,
		LicenseNo:      req.LicenseNo,
		Shifts:         req.Shifts,
		Phone:          req.Phone,
		Email:          req.Email,
		Active:         true,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Save(ctx, d); err != nil {
		s.logger.Error("create doctor persist failed", zap.Error(err))
		return DoctorResponse{}, storeFailure(err)
	}

	s.logger.Info("create doctor success", zap.String("doctor_id", d.ID))
	return mapToResponse(*d), nil
}

func (s *service) GetAll(ctx context.Context) ([]DoctorResponse, error) {
	doctors, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, storeFailure(err)
	}
	sort.Slice(doctors, func(i, j int) bool {
		return doctors[i].Name < doctors[j].Name
	})
	return mapToListResponse(doctors), nil
}

func (s *service) GetByID(ctx context.Context, id string) (DoctorResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return DoctorResponse{}, doctorerrors.ErrDoctorNotFound
		}
		return DoctorResponse{}, storeFailure(err)
	}
	return mapToResponse(*d), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateDoctorRequest) (DoctorResponse, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return DoctorResponse{}, doctorerrors.ErrDoctorNotFound
		}
		return DoctorResponse{}, storeFailure(err)
	}

	if req.LicenseNo != nil && *req.LicenseNo != d.LicenseNo {
		existing, err := s.repo.FindAll(ctx)
		if err != nil {
			return DoctorResponse{}, storeFailure(err)
		}
		for _, other := range existing {
			if other.ID != id && other.LicenseNo == *req.LicenseNo {
				return DoctorResponse{}, doctorerrors.ErrDuplicateLicenseNo
			}
		}
		d.LicenseNo = *req.LicenseNo
	}

	if req.Name != nil {
		d.Name = *req.Name
	}
	if req.Specialization != nil {
		d.Specialization = *req.Specialization
	}
	if req.Shifts != nil {
		d.Shifts = *req.Shifts
	}
	if req.Phone != nil {
		d.Phone = *req.Phone
	}
	if req.Email != nil {
		d.Email = *req.Email
	}
	if req.Active != nil {
		d.Active = *req.Active
	}
	d.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, d); err != nil {
		s.logger.Error("update doctor persist failed", zap.String("doctor_id", id), zap.Error(err))
		return DoctorResponse{}, storeFailure(err)
	}

	s.invalidateDirectoryCache(ctx, id)
	s.logger.Info("update doctor success", zap.String("doctor_id", id))
	return mapToResponse(*d), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return doctorerrors.ErrDoctorNotFound
		}
		return storeFailure(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return storeFailure(err)
	}

	s.invalidateDirectoryCache(ctx, id)
	s.logger.Info("delete doctor success", zap.String("doctor_id", id))
	return nil
}

func (s *service) invalidateDirectoryCache(ctx context.Context, id string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, DirectoryCacheKeyPrefix+id).Err(); err != nil {
		s.logger.Warn("invalidate directory cache failed",
			zap.String("doctor_id", id),
			zap.Error(err),
		)
	}
}

func storeFailure(err error) error {
	return apperror.Wrap(err, apperror.CodeInternalError, err.Error(), http.StatusInternalServerError)
}
