package employee

import (
	"context"
	"encoding/json"

	"github.com/adeka83-arch/systemklinik-sub011/internal/store"
)

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	Save(ctx context.Context, e *Employee) error
	FindByID(ctx context.Context, id string) (*Employee, error)
	FindAll(ctx context.Context) ([]Employee, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	store store.RecordStore
}

func NewRepository(s store.RecordStore) Repository {
	return &repository{store: s}
}

func (r *repository) Save(ctx context.Context, e *Employee) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, Key(e.ID), payload)
}

func (r *repository) FindByID(ctx context.Context, id string) (*Employee, error) {
	raw, err := r.store.Get(ctx, Key(id))
	if err != nil {
		return nil, err
	}
	var e Employee
	if err := json.Unmarshal(raw, &e); err != nil {
		return nil, err
	}
	return &e, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Employee, error) {
	raws, err := r.store.ListByPrefix(ctx, KeyPrefix)
	if err != nil {
		return nil, err
	}

	employees := make([]Employee, 0, len(raws))
	for _, raw := range raws {
		var e Employee
		if err := json.Unmarshal(raw, &e); err != nil {
			continue
		}
		employees = append(employees, e)
	}
	return employees, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, Key(id))
}
