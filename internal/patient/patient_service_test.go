package patient

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	patienterrors "github.com/adeka83-arch/systemklinik-sub011/internal/patient/errors"
	"github.com/adeka83-arch/systemklinik-sub011/internal/store"
)

type fakeCounter struct {
	next int64
}

func (f *fakeCounter) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	f.next++
	return f.next, nil
}

func newTestService() (Service, *store.MemoryStore) {
	mem := store.NewMemoryStore()
	return NewService(NewRepository(mem), &fakeCounter{}, zap.NewNop()), mem
}

func TestPatientService_CreateAssignsMedicalRecordNo(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	first, err := svc.Create(ctx, CreatePatientRequest{Name: "Budi Santoso"})
	assert.NoError(t, err)
	assert.Equal(t, "RM-000001", first.MedicalRecordNo)

	second, err := svc.Create(ctx, CreatePatientRequest{Name: "Siti Rahma"})
	assert.NoError(t, err)
	assert.Equal(t, "RM-000002", second.MedicalRecordNo)
}

func TestPatientService_InvalidBirthDate(t *testing.T) {
	svc, mem := newTestService()

	_, err := svc.Create(context.Background(), CreatePatientRequest{
		Name:      "Budi",
		BirthDate: "12-31-1990",
	})
	assert.ErrorIs(t, err, patienterrors.ErrInvalidBirthDate)
	assert.Equal(t, 0, mem.Len(KeyPrefix))
}

func TestPatientService_UpdateKeepsMedicalRecordNo(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreatePatientRequest{Name: "Budi"})
	assert.NoError(t, err)

	allergies := "penisilin"
	updated, err := svc.Update(ctx, created.ID, UpdatePatientRequest{Allergies: &allergies})
	assert.NoError(t, err)
	assert.Equal(t, created.MedicalRecordNo, updated.MedicalRecordNo)
	assert.Equal(t, allergies, updated.Allergies)
}

func TestPatientService_DeleteThenGetNotFound(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreatePatientRequest{Name: "Budi"})
	assert.NoError(t, err)

	assert.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, patienterrors.ErrPatientNotFound)
}
