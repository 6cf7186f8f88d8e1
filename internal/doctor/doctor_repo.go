package doctor

import (
	"context"
	"encoding/json"

	"github.com/adeka83-arch/systemklinik-sub011/internal/store"
)

//go:generate mockgen -source=doctor_repo.go -destination=mock/doctor_repo_mock.go -package=mock
type Repository interface {
	Save(ctx context.Context, d *Doctor) error
	FindByID(ctx context.Context, id string) (*Doctor, error)
	FindAll(ctx context.Context) ([]Doctor, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	store store.RecordStore
}

func NewRepository(s store.RecordStore) Repository {
	return &repository{store: s}
}

func (r *repository) Save(ctx context.Context, d *Doctor) error {
	payload, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, Key(d.ID), payload)
}

func (r *repository) FindByID(ctx context.Context, id string) (*Doctor, error) {
	raw, err := r.store.Get(ctx, Key(id))
	if err != nil {
		return nil, err
	}
	var d Doctor
	if err := json.Unmarshal(raw, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Doctor, error) {
	raws, err := r.store.ListByPrefix(ctx, KeyPrefix)
	if err != nil {
		return nil, err
	}

	doctors := make([]Doctor, 0, len(raws))
	for _, raw := range raws {
		var d Doctor
		if err := json.Unmarshal(raw, &d); err != nil {
			continue
		}
		doctors = append(doctors, d)
	}
	return doctors, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, Key(id))
}
