package counter

import (
	"context"

	"github.com/redis/go-redis/v9"
)

//go:generate mockgen -destination=mock/counter_repo_mock.go -package=mock . Repository
type Repository interface {
	GetNextValue(ctx context.Context, counterType string) (int64, error)
}

type repository struct {
	rdb *redis.Client
}

func NewRepository(rdb *redis.Client) Repository {
	return &repository{rdb: rdb}
}

// GetNextValue memakai INCR supaya kenaikan nomor atomic antar request —
// satu-satunya operasi di sistem ini yang butuh jaminan itu.
func (r *repository) GetNextValue(ctx context.Context, counterType string) (int64, error) {
	return r.rdb.Incr(ctx, "counter:"+counterType).Result()
}
