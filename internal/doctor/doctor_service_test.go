package doctor

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	doctorerrors "github.com/adeka83-arch/systemklinik-sub011/internal/doctor/errors"
	"github.com/adeka83-arch/systemklinik-sub011/internal/store"
)

func newTestService() (Service, *store.MemoryStore) {
	mem := store.NewMemoryStore()
	return NewService(NewRepository(mem), nil, zap.NewNop()), mem
}

func TestDoctorService_CreateAndGet(t *testing.T) {
	svc, mem := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateDoctorRequest{
		Name:           "drg. Falasifah",
		Specialization: "Orthodontist",
		LicenseNo:      "SIP-001/2024",
		Shifts:         []string{"09:00-15:00"},
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.Active)
	assert.Equal(t, 1, mem.Len(KeyPrefix))

	got, err := svc.GetByID(ctx, created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "drg. Falasifah", got.Name)
}

func TestDoctorService_DuplicateLicenseRejected(t *testing.T) {
	svc, mem := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateDoctorRequest{Name: "drg. A", LicenseNo: "SIP-001"})
	assert.NoError(t, err)

	_, err = svc.Create(ctx, CreateDoctorRequest{Name: "drg. B", LicenseNo: "SIP-001"})
	assert.ErrorIs(t, err, doctorerrors.ErrDuplicateLicenseNo)
	assert.Equal(t, 1, mem.Len(KeyPrefix))
}

func TestDoctorService_UpdatePartial(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateDoctorRequest{Name: "drg. A", LicenseNo: "SIP-001"})
	assert.NoError(t, err)

	phone := "081234567890"
	updated, err := svc.Update(ctx, created.ID, UpdateDoctorRequest{Phone: &phone})
	assert.NoError(t, err)
	assert.Equal(t, phone, updated.Phone)
	assert.Equal(t, "drg. A", updated.Name)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
}

func TestDoctorService_UpdateLicenseCollision(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateDoctorRequest{Name: "drg. A", LicenseNo: "SIP-001"})
	assert.NoError(t, err)
	b, err := svc.Create(ctx, CreateDoctorRequest{Name: "drg. B", LicenseNo: "SIP-002"})
	assert.NoError(t, err)

	taken := "SIP-001"
	_, err = svc.Update(ctx, b.ID, UpdateDoctorRequest{LicenseNo: &taken})
	assert.ErrorIs(t, err, doctorerrors.ErrDuplicateLicenseNo)
}

func TestDoctorService_DeleteAndNotFound(t *testing.T) {
	svc, mem := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateDoctorRequest{Name: "drg. A", LicenseNo: "SIP-001"})
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(ctx, created.ID))
	assert.Equal(t, 0, mem.Len(KeyPrefix))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, doctorerrors.ErrDoctorNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), doctorerrors.ErrDoctorNotFound)
}
