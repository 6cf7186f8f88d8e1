package voucher

import (
	"context"
	"errors"
	"net/http"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/adeka83-arch/systemklinik-sub011/internal/shared/apperror"
	"github.com/adeka83-arch/systemklinik-sub011/internal/store"
	vouchererrors "github.com/adeka83-arch/systemklinik-sub011/internal/voucher/errors"
)

// DefaultReminderWindowDays adalah jendela default pengingat kedaluwarsa.
const DefaultReminderWindowDays = 7

//go:generate mockgen -source=voucher_service.go -destination=mock/voucher_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, req CreateVoucherRequest) (VoucherResponse, error)
	GetAll(ctx context.Context) ([]VoucherResponse, error)
	GetByID(ctx context.Context, id string) (VoucherResponse, error)
	Update(ctx context.Context, id string, req UpdateVoucherRequest) (VoucherResponse, error)
	Delete(ctx context.Context, id string) error
	ListExpiring(ctx context.Context, withinDays int) ([]ExpiringVoucher, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("voucher.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("voucher.service")
	}
	return &service{repo: repo, logger: l}
}

func (s *service) Create(ctx context.Context, req CreateVoucherRequest) (VoucherResponse, error) {
	s.logger.Debug("create voucher requested", zap.String("code", req.Code))

	if _, err := time.Parse("2006-01-02", req.ValidUntil); err != nil {
		return VoucherResponse{}, vouchererrors.ErrInvalidValidUntil
	}

	existing, err := s.repo.FindAll(ctx)
	if err != nil {
		return VoucherResponse{}, storeFailure(err)
	}
	for _, v := range existing {
		if v.Code == req.Code {
			return VoucherResponse{}, vouchererrors.ErrDuplicateCode
		}
	}

	now := time.Now().UTC()
	v := &Voucher{
		ID:            uuid.NewString(),
		Code:          req.Code,
		Title:         req.Title,
		DiscountType:  req.DiscountType,
		DiscountValue: req.DiscountValue,
		ValidUntil:    req.ValidUntil,
		Active:        true,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := s.repo.Save(ctx, v); err != nil {
		s.logger.Error("create voucher persist failed", zap.Error(err))
		return VoucherResponse{}, storeFailure(err)
	}

	s.logger.Info("create voucher success",
		zap.String("voucher_id", v.ID),
		zap.String("code", v.Code),
	)
	return mapToResponse(*v), nil
}

func (s *service) GetAll(ctx context.Context) ([]VoucherResponse, error) {
	vouchers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, storeFailure(err)
	}
	sort.Slice(vouchers, func(i, j int) bool {
		return vouchers[i].ValidUntil < vouchers[j].ValidUntil
	})
	return mapToListResponse(vouchers), nil
}

func (s *service) GetByID(ctx context.Context, id string) (VoucherResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return VoucherResponse{}, vouchererrors.ErrVoucherNotFound
		}
		return VoucherResponse{}, storeFailure(err)
	}
	return mapToResponse(*v), nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateVoucherRequest) (VoucherResponse, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return VoucherResponse{}, vouchererrors.ErrVoucherNotFound
		}
		return VoucherResponse{}, storeFailure(err)
	}

	if req.Code != nil && *req.Code != v.Code {
		existing, err := s.repo.FindAll(ctx)
		if err != nil {
			return VoucherResponse{}, storeFailure(err)
		}
		for _, other := range existing {
			if other.ID != id && other.Code == *req.Code {
				return VoucherResponse{}, vouchererrors.ErrDuplicateCode
			}
		}
		v.Code = *req.Code
	}
	if req.ValidUntil != nil {
		if _, err := time.Parse("2006-01-02", *req.ValidUntil); err != nil {
			return VoucherResponse{}, vouchererrors.ErrInvalidValidUntil
		}
		v.ValidUntil = *req.ValidUntil
	}
	if req.Title != nil {
		v.Title = *req.Title
	}
	if req.DiscountType != nil {
		v.DiscountType = *req.DiscountType
	}
	if req.DiscountValue != nil {
		v.DiscountValue = *req.DiscountValue
	}
	if req.Active != nil {
		v.Active = *req.Active
	}
	v.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, v); err != nil {
		s.logger.Error("update voucher persist failed", zap.String("voucher_id", id), zap.Error(err))
		return VoucherResponse{}, storeFailure(err)
	}

	s.logger.Info("update voucher success", zap.String("voucher_id", id))
	return mapToResponse(*v), nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return vouchererrors.ErrVoucherNotFound
		}
		return storeFailure(err)
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return storeFailure(err)
	}

	s.logger.Info("delete voucher success", zap.String("voucher_id", id))
	return nil
}

// ListExpiring mengembalikan voucher aktif yang masa berlakunya habis
// dalam withinDays ke depan (termasuk hari ini). Voucher dengan
// valid_until rusak dilewati, bukan menggagalkan perhitungan.
func (s *service) ListExpiring(ctx context.Context, withinDays int) ([]ExpiringVoucher, error) {
	if withinDays <= 0 {
		withinDays = DefaultReminderWindowDays
	}

	vouchers, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, storeFailure(err)
	}

	now := time.Now().UTC()
	var expiring []ExpiringVoucher
	for _, v := range vouchers {
		if !v.Active {
			continue
		}
		daysLeft, err := v.daysUntilExpiry(now)
		if err != nil {
			s.logger.Warn("voucher has unparseable valid_until, skipped from reminders",
				zap.String("voucher_id", v.ID),
				zap.String("valid_until", v.ValidUntil),
			)
			continue
		}
		if daysLeft < 0 || daysLeft > withinDays {
			continue
		}
		expiring = append(expiring, ExpiringVoucher{
			VoucherResponse: mapToResponse(v),
			DaysLeft:        daysLeft,
		})
	}

	// Paling mendesak dulu
	sort.Slice(expiring, func(i, j int) bool {
		return expiring[i].DaysLeft < expiring[j].DaysLeft
	})
	return expiring, nil
}

func storeFailure(err error) error {
	return apperror.Wrap(err, apperror.CodeInternalError, err.Error(), http.StatusInternalServerError)
}
