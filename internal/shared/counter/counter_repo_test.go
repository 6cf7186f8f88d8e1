package counter

import (
	"context"
	"testing"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestCounterRepository_GetNextValue(t *testing.T) {
	db, mock := redismock.NewClientMock()
	repo := NewRepository(db)

	mock.ExpectIncr("counter:medical_record").SetVal(42)

	val, err := repo.GetNextValue(context.Background(), "medical_record")
	assert.NoError(t, err)
	assert.Equal(t, int64(42), val)
	assert.NoError(t, mock.ExpectationsWereMet())
}
