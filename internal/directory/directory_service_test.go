package directory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/adeka83-arch/systemklinik-sub011/internal/directory"
	"github.com/adeka83-arch/systemklinik-sub011/internal/store"
)

type fakeDoctorFinder struct {
	names map[string]string
	calls int
}

func (f *fakeDoctorFinder) FindDoctorName(ctx context.Context, id string) (string, error) {
	f.calls++
	if name, ok := f.names[id]; ok {
		return name, nil
	}
	return "", store.ErrKeyNotFound
}

type fakeEmployeeFinder struct {
	names map[string]string
	err   error
}

func (f *fakeEmployeeFinder) FindEmployeeName(ctx context.Context, id string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	if name, ok := f.names[id]; ok {
		return name, nil
	}
	return "", store.ErrKeyNotFound
}

func TestDirectoryService_ResolveName(t *testing.T) {
	doctors := &fakeDoctorFinder{names: map[string]string{"doc1": "drg. Falasifah"}}
	employees := &fakeEmployeeFinder{names: map[string]string{"emp1": "Siti Aminah"}}
	svc := directory.NewService(doctors, employees, nil, zap.NewNop())
	ctx := context.Background()

	t.Run("resolves doctor first", func(t *testing.T) {
		name, err := svc.ResolveName(ctx, "doc1")
		assert.NoError(t, err)
		assert.Equal(t, "drg. Falasifah", name)
	})

	t.Run("falls back to employee", func(t *testing.T) {
		name, err := svc.ResolveName(ctx, "emp1")
		assert.NoError(t, err)
		assert.Equal(t, "Siti Aminah", name)
	})

	t.Run("unknown subject", func(t *testing.T) {
		_, err := svc.ResolveName(ctx, "ghost")
		assert.ErrorIs(t, err, directory.ErrSubjectNotFound)
	})
}

func TestDirectoryService_StoreErrorPropagates(t *testing.T) {
	doctors := &fakeDoctorFinder{names: map[string]string{}}
	employees := &fakeEmployeeFinder{err: errors.New("koneksi putus")}
	svc := directory.NewService(doctors, employees, nil, zap.NewNop())

	_, err := svc.ResolveName(context.Background(), "emp1")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, directory.ErrSubjectNotFound)
}
