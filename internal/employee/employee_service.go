package employee

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	employeeerrors "github.com/adeka83-arch/systemklinik-sub011/internal/employee/errors"
	"github.com/adeka83-arch/systemklinik-sub011/internal/shared/apperror"
	"github.com/adeka83-arch/systemklinik-sub011/internal/store"
)

const DirectoryCacheKeyPrefix = "directory:name:"

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error)
	GetAll(ctx context.Context) ([]EmployeeResponse, error)
	GetByID(ctx context.Context, id string) (EmployeeResponse, error)
	Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo   Repository
	rdb    *redis.Client
	logger *zap.Logger
}

func NewService(repo Repository, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{repo: repo, rdb: rdb, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateEmployeeRequest) (EmployeeResponse, error) {
	s.logger.Debug("create employee requested", zap.String("name", req.Name))

	if req.JoinDate != "" {
		if _, err := time.Parse("2006-01-02", req.JoinDate); err != nil {
			return EmployeeResponse{}, employeeerrors.ErrInvalidJoinDate
		}
	}

	now := time.Now().UTC()
	e := &Employee{
		ID:        uuid.NewString(),
		Name:      req.Name,
		Position:  req.Position,
		Phone:     req.Phone,
		Email:     req.Email,
		JoinDate:  req.JoinDate,
		Active:    true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Save(ctx, e); err != nil {
		s.logger.Error("create employee persist failed", zap.Error(err))
		return EmployeeResponse{}, storeFailure(err)
	}

	s.logger.Info("create employee success", zap.String("employee_id", e.ID))
	return mapToResponse(*e), nil
}

func (s *service) GetAll(ctx context.Context) ([]EmployeeResponse, error) {
	employees, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, storeFailure(err)
	}
	sort.Slice(employees, func(i, j int) bool {
		return employees[i].Name < employees[j].Name
	})
	return mapToListResponse(employees), nil
}

func (s *service) GetByID(ctx context.Context, id string) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, storeFailure(err)
	}
	return mapToResponse(*e), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateEmployeeRequest) (EmployeeResponse, error) {
	e, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return EmployeeResponse{}, employeeerrors.ErrEmployeeNotFound
		}
		return EmployeeResponse{}, storeFailure(err)
	}

	if req.JoinDate != nil {
		if *req.JoinDate != "" {
			if _, err := time.Parse("2006-01-02", *req.JoinDate); err != nil {
				return EmployeeResponse{}, employeeerrors.ErrInvalidJoinDate
			}
		}
		e.JoinDate = *req.JoinDate
	}
	if req.Name != nil {
		e.Name = *req.Name
	}
	if req.Position != nil {
		e.Position = *req.Position
	}
	if req.Phone != nil {
		e.Phone = *req.Phone
	}
	if req.Email != nil {
		e.Email = *req.Email
	}
	if req.Active != nil {
		e.Active = *req.Active
	}
	e.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, e); err != nil {
		s.logger.Error("update employee persist failed", zap.String("employee_id", id), zap.Error(err))
		return EmployeeResponse{}, storeFailure(err)
	}

	s.invalidateDirectoryCache(ctx, id)
	s.logger.Info("update employee success", zap.String("employee_id", id))
	return mapToResponse(*e), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return employeeerrors.ErrEmployeeNotFound
		}
		return storeFailure(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return storeFailure(err)
	}

	s.invalidateDirectoryCache(ctx, id)
	s.logger.Info("delete employee success", zap.String("employee_id", id))
	return nil
}

func (s *service) invalidateDirectoryCache(ctx context.Context, id string) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, DirectoryCacheKeyPrefix+id).Err(); err != nil {
		s.logger.Warn("invalidate directory cache failed",
			zap.String("employee_id", id),
			zap.Error(err),
		)
	}
}

func storeFailure(err error) error {
	return apperror.Wrap(err, apperror.CodeInternalError, err.Error(), http.StatusInternalServerError)
}
