package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemoryStore_LastWriteWins(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	assert.NoError(t, s.Set(ctx, "doctor:1", []byte("first")))
	assert.NoError(t, s.Set(ctx, "doctor:1", []byte("second")))

	val, err := s.Get(ctx, "doctor:1")
	assert.NoError(t, err)
	assert.Equal(t, []byte("second"), val)
}

func TestMemoryStore_DeleteThenGet(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	assert.NoError(t, s.Set(ctx, "doctor:1", []byte("x")))
	assert.NoError(t, s.Delete(ctx, "doctor:1"))

	_, err := s.Get(ctx, "doctor:1")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStore_ListByPrefix(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	assert.NoError(t, s.Set(ctx, "attendance:1", []byte("a")))
	assert.NoError(t, s.Set(ctx, "attendance:2", []byte("b")))
	assert.NoError(t, s.Set(ctx, "voucher:1", []byte("c")))

	vals, err := s.ListByPrefix(ctx, "attendance:")
	assert.NoError(t, err)
	assert.Len(t, vals, 2)
	assert.Equal(t, 2, s.Len("attendance:"))
}
