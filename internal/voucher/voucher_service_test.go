package voucher

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/adeka83-arch/systemklinik-sub011/internal/store"
	vouchererrors "github.com/adeka83-arch/systemklinik-sub011/internal/voucher/errors"
)

func newTestService() (Service, *store.MemoryStore) {
	mem := store.NewMemoryStore()
	return NewService(NewRepository(mem), zap.NewNop()), mem
}

func futureDate(days int) string {
	return time.Now().UTC().AddDate(0, 0, days).Format("2006-01-02")
}

func TestVoucherService_CreateAndDuplicateCode(t *testing.T) {
	svc, mem := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateVoucherRequest{
		Code:          "SCALING50",
		Title:         "Diskon scaling 50%",
		DiscountType:  DiscountPercentage,
		DiscountValue: 50,
		ValidUntil:    futureDate(30),
	})
	assert.NoError(t, err)
	assert.True(t, created.Active)

	_, err = svc.Create(ctx, CreateVoucherRequest{
		Code:          "SCALING50",
		Title:         "Duplikat",
		DiscountType:  DiscountNominal,
		DiscountValue: 10000,
		ValidUntil:    futureDate(10),
	})
	assert.ErrorIs(t, err, vouchererrors.ErrDuplicateCode)
	assert.Equal(t, 1, mem.Len(KeyPrefix))
}

func TestVoucherService_InvalidValidUntil(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Create(context.Background(), CreateVoucherRequest{
		Code:          "X",
		Title:         "X",
		DiscountType:  DiscountNominal,
		DiscountValue: 5000,
		ValidUntil:    "31/12/2025",
	})
	assert.ErrorIs(t, err, vouchererrors.ErrInvalidValidUntil)
}

func TestVoucherService_ListExpiring(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	mk := func(code string, daysAhead int) {
		_, err := svc.Create(ctx, CreateVoucherRequest{
			Code:          code,
			Title:         code,
			DiscountType:  DiscountNominal,
			DiscountValue: 5000,
			ValidUntil:    futureDate(daysAhead),
		})
		assert.NoError(t, err)
	}

	mk("SOON3", 3)
	mk("SOON1", 1)
	mk("FAR30", 30)

	expiring, err := svc.ListExpiring(ctx, 7)
	assert.NoError(t, err)
	assert.Len(t, expiring, 2)
	// Paling mendesak dulu
	assert.Equal(t, "SOON1", expiring[0].Code)
	assert.Equal(t, 1, expiring[0].DaysLeft)
	assert.Equal(t, "SOON3", expiring[1].Code)
}

func TestVoucherService_ListExpiringSkipsInactiveAndExpired(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	soon, err := svc.Create(ctx, CreateVoucherRequest{
		Code: "SOON", Title: "t", DiscountType: DiscountNominal,
		DiscountValue: 5000, ValidUntil: futureDate(2),
	})
	assert.NoError(t, err)

	// Non-aktifkan → hilang dari reminder
	inactive := false
	_, err = svc.Update(ctx, soon.ID, UpdateVoucherRequest{Active: &inactive})
	assert.NoError(t, err)

	_, err = svc.Create(ctx, CreateVoucherRequest{
		Code: "EXPIRED", Title: "t", DiscountType: DiscountNominal,
		DiscountValue: 5000, ValidUntil: futureDate(-3),
	})
	assert.NoError(t, err)

	expiring, err := svc.ListExpiring(ctx, 7)
	assert.NoError(t, err)
	assert.Empty(t, expiring)
}

func TestVoucherService_UpdateCodeCollision(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateVoucherRequest{
		Code: "A", Title: "a", DiscountType: DiscountNominal,
		DiscountValue: 5000, ValidUntil: futureDate(5),
	})
	assert.NoError(t, err)
	b, err := svc.Create(ctx, CreateVoucherRequest{
		Code: "B", Title: "b", DiscountType: DiscountNominal,
		DiscountValue: 5000, ValidUntil: futureDate(5),
	})
	assert.NoError(t, err)

	taken := "A"
	_, err = svc.Update(ctx, b.ID, UpdateVoucherRequest{Code: &taken})
	assert.ErrorIs(t, err, vouchererrors.ErrDuplicateCode)
}

func TestVoucherService_DeleteNotFound(t *testing.T) {
	svc, _ := newTestService()
	assert.ErrorIs(t, svc.Delete(context.Background(), "missing"), vouchererrors.ErrVoucherNotFound)
}
