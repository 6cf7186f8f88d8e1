package store

import (
	"context"
	"errors"
)

// ErrKeyNotFound dikembalikan Get saat key tidak ada di store.
var ErrKeyNotFound = errors.New("key not found")

// RecordStore adalah kontrak key-value store tempat semua record klinik
// disimpan. Semantiknya last-write-wins tanpa transaksi: urutan
// read-check-then-write oleh caller TIDAK atomic, dan ListByPrefix tidak
// menjamin urutan hasil (full scan).
//
//go:generate mockgen -source=store.go -destination=mock/store_mock.go -package=mock
type RecordStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	ListByPrefix(ctx context.Context, prefix string) ([][]byte, error)
}
