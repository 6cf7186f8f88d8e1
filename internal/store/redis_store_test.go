package store

import (
	"context"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestRedisStore_GetSetDelete(t *testing.T) {
	db, mock := redismock.NewClientMock()
	s := NewRedisStore(db)
	ctx := context.Background()

	mock.ExpectSet("attendance:abc", []byte(`{"id":"abc"}`), 0).SetVal("OK")
	err := s.Set(ctx, "attendance:abc", []byte(`{"id":"abc"}`))
	assert.NoError(t, err)

	mock.ExpectGet("attendance:abc").SetVal(`{"id":"abc"}`)
	val, err := s.Get(ctx, "attendance:abc")
	assert.NoError(t, err)
	assert.Equal(t, []byte(`{"id":"abc"}`), val)

	mock.ExpectDel("attendance:abc").SetVal(1)
	err = s.Delete(ctx, "attendance:abc")
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_GetMissingKey(t *testing.T) {
	db, mock := redismock.NewClientMock()
	s := NewRedisStore(db)

	mock.ExpectGet("attendance:missing").RedisNil()
	_, err := s.Get(context.Background(), "attendance:missing")
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_ListByPrefix(t *testing.T) {
	db, mock := redismock.NewClientMock()
	s := NewRedisStore(db)

	mock.ExpectScan(0, "attendance:*", 100).SetVal([]string{"attendance:1", "attendance:2"}, 0)
	mock.ExpectMGet("attendance:1", "attendance:2").SetVal([]interface{}{`{"id":"1"}`, `{"id":"2"}`})

	vals, err := s.ListByPrefix(context.Background(), "attendance:")
	assert.NoError(t, err)
	assert.Len(t, vals, 2)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisStore_ListByPrefixEmpty(t *testing.T) {
	db, mock := redismock.NewClientMock()
	s := NewRedisStore(db)

	mock.ExpectScan(0, "voucher:*", 100).SetVal([]string{}, 0)

	vals, err := s.ListByPrefix(context.Background(), "voucher:")
	assert.NoError(t, err)
	assert.Empty(t, vals)
	assert.NoError(t, mock.ExpectationsWereMet())
}
