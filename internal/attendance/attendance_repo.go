package attendance

import (
	"context"
	"encoding/json"

	"github.com/adeka83-arch/systemklinik-sub011/internal/store"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	Save(ctx context.Context, rec *AttendanceRecord) error
	FindByID(ctx context.Context, id string) (*AttendanceRecord, error)
	FindAll(ctx context.Context) ([]AttendanceRecord, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	store store.RecordStore
}

func NewRepository(s store.RecordStore) Repository {
	return &repository{store: s}
}

func (r *repository) Save(ctx context.Context, rec *AttendanceRecord) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return r.store.Set(ctx, Key(rec.ID), payload)
}

func (r *repository) FindByID(ctx context.Context, id string) (*AttendanceRecord, error) {
	raw, err := r.store.Get(ctx, Key(id))
	if err != nil {
		return nil, err
	}
	var rec AttendanceRecord
	if err := json.Unmarshal(raw, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *repository) FindAll(ctx context.Context) ([]AttendanceRecord, error) {
	raws, err := r.store.ListByPrefix(ctx, KeyPrefix)
	if err != nil {
		return nil, err
	}

	recs := make([]AttendanceRecord, 0, len(raws))
	for _, raw := range raws {
		var rec AttendanceRecord
		if err := json.Unmarshal(raw, &rec); err != nil {
			// Entry korup tidak boleh menggagalkan listing
			continue
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, Key(id))
}
