package notification

import (
	"context"
	"encoding/json"

	"github.com/adeka83-arch/systemklinik-sub011/internal/store"
)

//go:generate mockgen -source=notification_repo.go -destination=mock/notification_repo_mock.go -package=mock
type Repository interface {
	Save(ctx context.Context, n *Notification) error
	FindByID(ctx context.Context, id string) (*Notification, error)
	FindAll(ctx context.Context) ([]Notification, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	store store.RecordStore
}

func NewRepository(s store.RecordStore) Repository {
	return &repository{store: s}
}

func (r *repository) Save(ctx context.Context, n *Notification) error {
	payload, err := json.Marshal(n)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, Key(n.ID), payload)
}

func (r *repository) FindByID(ctx context.Context, id string) (*Notification, error) {
	raw, err := r.store.Get(ctx, Key(id))
	if err != nil {
		return nil, err
	}
	var n Notification
	if err := json.Unmarshal(raw, &n); err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Notification, error) {
	raws, err := r.store.ListByPrefix(ctx, KeyPrefix)
	if err != nil {
		return nil, err
	}

	ns := make([]Notification, 0, len(raws))
	for _, raw := range raws {
		var n Notification
		if err := json.Unmarshal(raw, &n); err != nil {
			// Entry korup tidak boleh menggagalkan listing
			continue
		}
		ns = append(ns, n)
	}
	return ns, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, Key(id))
}
