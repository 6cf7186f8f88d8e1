package patient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	patienterrors "github.com/adeka83-arch/systemklinik-sub011/internal/patient/errors"
	"github.com/adeka83-arch/systemklinik-sub011/internal/shared/apperror"
	"github.com/adeka83-arch/systemklinik-sub011/internal/shared/counter"
	"github.com/adeka83-arch/systemklinik-sub011/internal/store"
)

const medicalRecordCounter = "medical_record"

//go:generate mockgen -source=patient_service.go -destination=mock/patient_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreatePatientRequest) (PatientResponse, error)
	GetAll(ctx context.Context) ([]PatientResponse, error)
	GetByID(ctx context.Context, id string) (PatientResponse, error)
	Update(ctx context.Context, id string, req UpdatePatientRequest) (PatientResponse, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo    Repository
	counter counter.Repository
	logger  *zap.Logger
}

func NewService(repo Repository, counterRepo counter.Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("patient.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("patient.service")
	}
	return &service{repo: repo, counter: counterRepo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreatePatientRequest) (PatientResponse, error) {
	s.logger.Debug("create patient requested", zap.String("name", req.Name))

	if req.BirthDate != "" {
		if _, err := time.Parse("2006-01-02", req.BirthDate); err != nil {
			return PatientResponse{}, patienterrors.ErrInvalidBirthDate
		}
	}

	nextVal, err := s.counter.GetNextValue(ctx, medicalRecordCounter)
	if err != nil {
		s.logger.Error("generate medical record number failed", zap.Error(err))
		return PatientResponse{}, storeFailure(err)
	}

	now := time.Now().UTC()
	p := &Patient{
		ID:              uuid.NewString(),
		MedicalRecordNo: fmt.Sprintf("RM-%06d", nextVal),
		Name:            req.Name,
		BirthDate:       req.BirthDate,
		Gender:          req.Gender,
		Phone:           req.Phone,
		Address:         req.Address,
		Allergies:       req.Allergies,
		Notes:           req.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Save(ctx, p); err != nil {
		s.logger.Error("create patient persist failed", zap.Error(err))
		return PatientResponse{}, storeFailure(err)
	}

	s.logger.Info("create patient success",
		zap.String("patient_id", p.ID),
		zap.String("medical_record_no", p.MedicalRecordNo),
	)
	return mapToResponse(*p), nil
}

func (s *service) GetAll(ctx context.Context) ([]PatientResponse, error) {
	patients, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, storeFailure(err)
	}
	sort.Slice(patients, func(i, j int) bool {
		return patients[i].MedicalRecordNo < patients[j].MedicalRecordNo
	})
	return mapToListResponse(patients), nil
}

func (s *service) GetByID(ctx context.Context, id string) (PatientResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return PatientResponse{}, patienterrors.ErrPatientNotFound
		}
		return PatientResponse{}, storeFailure(err)
	}
	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdatePatientRequest) (PatientResponse, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return PatientResponse{}, patienterrors.ErrPatientNotFound
		}
		return PatientResponse{}, storeFailure(err)
	}

	if req.BirthDate != nil {
		if *req.BirthDate != "" {
			if _, err := time.Parse("2006-01-02", *req.BirthDate); err != nil {
				return PatientResponse{}, patienterrors.ErrInvalidBirthDate
			}
		}
		p.BirthDate = *req.BirthDate
	}
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Gender != nil {
		p.Gender = *req.Gender
	}
	if req.Phone != nil {
		p.Phone = *req.Phone
	}
	if req.Address != nil {
		p.Address = *req.Address
	}
	if req.Allergies != nil {
		p.Allergies = *req.Allergies
	}
	if req.Notes != nil {
		p.Notes = *req.Notes
	}
	// Nomor RM tidak pernah ikut di-patch
	p.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, p); err != nil {
		s.logger.Error("update patient persist failed", zap.String("patient_id", id), zap.Error(err))
		return PatientResponse{}, storeFailure(err)
	}

	s.logger.Info("update patient success", zap.String("patient_id", id))
	return mapToResponse(*p), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return patienterrors.ErrPatientNotFound
		}
		return storeFailure(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return storeFailure(err)
	}

	s.logger.Info("delete patient success", zap.String("patient_id", id))
	return nil
}

func storeFailure(err error) error {
	return apperror.Wrap(err, apperror.CodeInternalError, err.Error(), http.StatusInternalServerError)
}
