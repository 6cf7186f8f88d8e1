package patient

import (
	"context"
	"encoding/json"

	"github.com/adeka83-arch/systemklinik-sub011/internal/store"
)

//go:generate mockgen -source=patient_repo.go -destination=mock/patient_repo_mock.go -package=mock
type Repository interface {
	Save(ctx context.Context, p *Patient) error
	FindByID(ctx context.Context, id string) (*Patient, error)
	FindAll(ctx context.Context) ([]Patient, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	store store.RecordStore
}

func NewRepository(s store.RecordStore) Repository {
	return &repository{store: s}
}

func (r *repository) Save(ctx context.Context, p *Patient) error {
	payload, err := json.Marshal(p)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, Key(p.ID), payload)
}

func (r *repository) FindByID(ctx context.Context, id string) (*Patient, error) {
	raw, err := r.store.Get(ctx, Key(id))
	if err != nil {
		return nil, err
	}
	var p Patient
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Patient, error) {
	raws, err := r.store.ListByPrefix(ctx, KeyPrefix)
	if err != nil {
		return nil, err
	}

	patients := make([]Patient, 0, len(raws))
	for _, raw := range raws {
		var p Patient
		if err := json.Unmarshal(raw, &p); err != nil {
			continue
		}
		patients = append(patients, p)
	}
	return patients, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, Key(id))
}
