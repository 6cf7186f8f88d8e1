package directory

import (
	"context"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/adeka83-arch/systemklinik-sub011/internal/store"
)

// CacheKeyPrefix dipakai juga oleh service dokter/karyawan untuk
// invalidasi saat nama berubah.
const CacheKeyPrefix = "directory:name:"

const cacheTTL = time.Hour

// DoctorFinder dan EmployeeFinder adalah irisan kecil dari repository
// masing-masing modul; directory hanya butuh nama per id.
type DoctorFinder interface {
	FindDoctorName(ctx context.Context, id string) (string, error)
}

type EmployeeFinder interface {
	FindEmployeeName(ctx context.Context, id string) (string, error)
}

type service struct {
	doctors   DoctorFinder
	employees EmployeeFinder
	rdb       *redis.Client
	sf        *singleflight.Group
	logger    *zap.Logger
}

func NewService(doctors DoctorFinder, employees EmployeeFinder, rdb *redis.Client, logger ...*zap.Logger) Lookup {
	l := zap.L().Named("directory.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("directory.service")
	}
	return &service{
		doctors:   doctors,
		employees: employees,
		rdb:       rdb,
		sf:        &singleflight.Group{},
		logger:    l,
	}
}

// ResolveName mencari nama tampil untuk subject id, dokter lebih dulu
// baru karyawan. Hasil di-cache di Redis dengan TTL pendek karena data
// master jarang berubah.
func (s *service) ResolveName(ctx context.Context, subjectID string) (string, error) {
	cacheKey := CacheKeyPrefix + subjectID

	if s.rdb != nil {
		cached, err := s.rdb.Get(ctx, cacheKey).Result()
		if err == nil && cached != "" {
			return cached, nil
		}
	}

	// Singleflight mencegah lookup berulang untuk id yang sama
	v, err, _ := s.sf.Do(cacheKey, func() (interface{}, error) {
		name, err := s.resolve(ctx, subjectID)
		if err != nil {
			return "", err
		}

		if s.rdb != nil {
			if err := s.rdb.Set(ctx, cacheKey, name, cacheTTL).Err(); err != nil {
				s.logger.Warn("directory cache write failed",
					zap.String("subject_id", subjectID),
					zap.Error(err),
				)
			}
		}
		return name, nil
	})
	if err != nil {
		return "", err
	}

	return v.(string), nil
}

func (s *service) resolve(ctx context.Context, subjectID string) (string, error) {
	name, err := s.doctors.FindDoctorName(ctx, subjectID)
	if err == nil {
		return name, nil
	}
	if !errors.Is(err, store.ErrKeyNotFound) {
		return "", err
	}

	name, err = s.employees.FindEmployeeName(ctx, subjectID)
	if err == nil {
		return name, nil
	}
	if !errors.Is(err, store.ErrKeyNotFound) {
		return "", err
	}

	return "", ErrSubjectNotFound
}
