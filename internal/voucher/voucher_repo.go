package voucher

import (
	"context"
	"encoding/json"

	"github.com/adeka83-arch/systemklinik-sub011/internal/store"
)

//go:generate mockgen -source=voucher_repo.go -destination=mock/voucher_repo_mock.go -package=mock
type Repository interface {
	Save(ctx context.Context, v *Voucher) error
	FindByID(ctx context.Context, id string) (*Voucher, error)
	FindAll(ctx context.Context) ([]Voucher, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	store store.RecordStore
}

func NewRepository(s store.RecordStore) Repository {
	return &repository{store: s}
}

func (r *repository) Save(ctx context.Context, v *Voucher) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, Key(v.ID), payload)
}

func (r *repository) FindByID(ctx context.Context, id string) (*Voucher, error) {
	raw, err := r.store.Get(ctx, Key(id))
	if err != nil {
		return nil, err
	}
	var v Voucher
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Voucher, error) {
	raws, err := r.store.ListByPrefix(ctx, KeyPrefix)
	if err != nil {
		return nil, err
	}

	vouchers := make([]Voucher, 0, len(raws))
	for _, raw := range raws {
		var v Voucher
		if err := json.Unmarshal(raw, &v); err != nil {
			continue
		}
		vouchers = append(vouchers, v)
	}
	return vouchers, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, Key(id))
}
