package notification

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/adeka83-arch/systemklinik-sub011/internal/events"
	notificationerrors "github.com/adeka83-arch/systemklinik-sub011/internal/notification/errors"
	"github.com/adeka83-arch/systemklinik-sub011/internal/shared/apperror"
	"github.com/adeka83-arch/systemklinik-sub011/internal/store"
)

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	CreateVoucherReminder(ctx context.Context, event events.VoucherExpiringEvent) (NotificationResponse, error)
	GetAll(ctx context.Context) ([]NotificationResponse, error)
	MarkRead(ctx context.Context, id string) (NotificationResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{repo: repo, logger: l}
}

// CreateVoucherReminder idempoten per voucher per hari: konsumsi ulang
// event yang sama menimpa notifikasi yang sudah ada, bukan menambah baru.
func (s *service) CreateVoucherReminder(ctx context.Context, event events.VoucherExpiringEvent) (NotificationResponse, error) {
	now := time.Now().UTC()
	id := VoucherReminderID(event.VoucherID, now)

	message := fmt.Sprintf("Voucher %s (%s) berakhir dalam %d hari (s.d. %s)",
		event.Code, event.Title, event.DaysLeft, event.ValidUntil)
	if event.DaysLeft == 0 {
		message = fmt.Sprintf("Voucher %s (%s) berakhir hari ini (%s)",
			event.Code, event.Title, event.ValidUntil)
	}

	n := &Notification{
		ID:        id,
		Type:      TypeVoucherReminder,
		Title:     "Voucher segera berakhir",
		Message:   message,
		RefID:     event.VoucherID,
		Read:      false,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if existing, err := s.repo.FindByID(ctx, id); err == nil {
		// Pertahankan status baca dan waktu pembuatan awal
		n.Read = existing.Read
		n.CreatedAt = existing.CreatedAt
	}

	if err := s.repo.Save(ctx, n); err != nil {
		s.logger.Error("save voucher reminder notification failed",
			zap.String("voucher_id", event.VoucherID),
			zap.Error(err),
		)
		return NotificationResponse{}, storeFailure(err)
	}

	s.logger.Info("voucher reminder notification stored",
		zap.String("notification_id", n.ID),
		zap.Int("days_left", event.DaysLeft),
	)
	return mapToResponse(*n), nil
}

func (s *service) GetAll(ctx context.Context) ([]NotificationResponse, error) {
	ns, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, storeFailure(err)
	}

	// Terbaru dulu
	sort.Slice(ns, func(i, j int) bool {
		return ns[i].CreatedAt.After(ns[j].CreatedAt)
	})
	return mapToListResponse(ns), nil
}

func (s *service) MarkRead(ctx context.Context, id string) (NotificationResponse, error) {
	n, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrKeyNotFound) {
			return NotificationResponse{}, notificationerrors.ErrNotificationNotFound
		}
		return NotificationResponse{}, storeFailure(err)
	}

	n.Read = true
	n.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, n); err != nil {
		return NotificationResponse{}, storeFailure(err)
	}
	return mapToResponse(*n), nil
}

func storeFailure(err error) error {
	return apperror.Wrap(err, apperror.CodeInternalError, err.Error(), http.StatusInternalServerError)
}
