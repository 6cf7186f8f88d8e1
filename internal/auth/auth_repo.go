package auth

import (
	"context"
	"encoding/json"

	"github.com/adeka83-arch/systemklinik-sub011/internal/store"
)

// Key membangun key penyimpanan untuk satu user.
func Key(id string) string {
	return KeyPrefix + id
}

//go:generate mockgen -source=auth_repo.go -destination=mock/auth_repo_mock.go -package=mock
type Repository interface {
	Save(ctx context.Context, user *User) error
	FindByID(ctx context.Context, id string) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
}

type repository struct {
	store store.RecordStore
}

func NewRepository(s store.RecordStore) Repository {
	return &repository{store: s}
}

func (r *repository) Save(ctx context.Context, user *User) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, Key(user.ID), payload)
}

func (r *repository) FindByID(ctx context.Context, id string) (*User, error) {
	raw, err := r.store.Get(ctx, Key(id))
	if err != nil {
		return nil, err
	}
	var user User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	raws, err := r.store.ListByPrefix(ctx, KeyPrefix)
	if err != nil {
		return nil, err
	}
	for _, raw := range raws {
		var user User
		if err := json.Unmarshal(raw, &user); err != nil {
			continue
		}
		if user.Email == email {
			return &user, nil
		}
	}
	return nil, store.ErrKeyNotFound
}
