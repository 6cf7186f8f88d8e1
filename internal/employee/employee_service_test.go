package employee

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	employeeerrors "github.com/adeka83-arch/systemklinik-sub011/internal/employee/errors"
	"github.com/adeka83-arch/systemklinik-sub011/internal/store"
)

func newTestService() (Service, *store.MemoryStore) {
	mem := store.NewMemoryStore()
	return NewService(NewRepository(mem), nil, zap.NewNop()), mem
}

func TestEmployeeService_CreateAndGetAll(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateEmployeeRequest{Name: "Muwarni", Position: "Perawat"})
	assert.NoError(t, err)
	_, err = svc.Create(ctx, CreateEmployeeRequest{Name: "Ajeng", Position: "Admin"})
	assert.NoError(t, err)

	all, err := svc.GetAll(ctx)
	assert.NoError(t, err)
	assert.Len(t, all, 2)
	// Urut alfabetis by name
	assert.Equal(t, "Ajeng", all[0].Name)
	assert.Equal(t, "Muwarni", all[1].Name)
}

func TestEmployeeService_InvalidJoinDate(t *testing.T) {
	svc, mem := newTestService()

	_, err := svc.Create(context.Background(), CreateEmployeeRequest{
		Name:     "Muwarni",
		JoinDate: "27/12/2024",
	})
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidJoinDate)
	assert.Equal(t, 0, mem.Len(KeyPrefix))
}

func TestEmployeeService_UpdateDeactivate(t *testing.T) {
	svc, _ := newTestService()
	ctx := context.Background()

	created, err := svc.Create(ctx, CreateEmployeeRequest{Name: "Muwarni"})
	assert.NoError(t, err)

	inactive := false
	updated, err := svc.Update(ctx, created.ID, UpdateEmployeeRequest{Active: &inactive})
	assert.NoError(t, err)
	assert.False(t, updated.Active)
}

func TestEmployeeService_DeleteNotFound(t *testing.T) {
	svc, _ := newTestService()

	err := svc.Delete(context.Background(), "missing")
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
}
