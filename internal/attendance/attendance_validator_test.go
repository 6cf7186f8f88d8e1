package attendance

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func record(id, subjectID, date, shift, eventType string) AttendanceRecord {
	return AttendanceRecord{
		ID:        id,
		SubjectID: subjectID,
		Date:      date,
		Shift:     shift,
		EventType: eventType,
	}
}

func TestValidateCreate_CheckInOnEmptyStore(t *testing.T) {
	candidate := record("", "doc1", "2024-12-27", "09:00-15:00", EventCheckIn)

	conflict := validateCreate(candidate, nil)
	assert.Nil(t, conflict)
}

func TestValidateCreate_DuplicateTuple(t *testing.T) {
	existing := []AttendanceRecord{
		record("a1", "doc1", "2024-12-27", "09:00-15:00", EventCheckIn),
	}
	candidate := record("", "doc1", "2024-12-27", "09:00-15:00", EventCheckIn)

	conflict := validateCreate(candidate, existing)
	assert.NotNil(t, conflict)
	assert.Equal(t, conflictDuplicate, conflict.Reason)
	assert.NotNil(t, conflict.Existing)
	assert.Equal(t, "a1", conflict.Existing.ID)
}

func TestValidateCreate_DifferentTupleIsNotDuplicate(t *testing.T) {
	existing := []AttendanceRecord{
		record("a1", "doc1", "2024-12-27", "09:00-15:00", EventCheckIn),
	}

	// Shift berbeda
	assert.Nil(t, validateCreate(record("", "doc1", "2024-12-27", "15:00-21:00", EventCheckIn), existing))
	// Tanggal berbeda
	assert.Nil(t, validateCreate(record("", "doc1", "2024-12-28", "09:00-15:00", EventCheckIn), existing))
	// Subject berbeda
	assert.Nil(t, validateCreate(record("", "doc2", "2024-12-27", "09:00-15:00", EventCheckIn), existing))
}

func TestValidateCreate_CheckOutRequiresCheckIn(t *testing.T) {
	candidate := record("", "doc1", "2024-12-27", "09:00-15:00", EventCheckOut)

	conflict := validateCreate(candidate, nil)
	assert.NotNil(t, conflict)
	assert.Equal(t, conflictMissingCheckIn, conflict.Reason)
	assert.Nil(t, conflict.Existing)
}

func TestValidateCreate_CheckOutAfterCheckIn(t *testing.T) {
	existing := []AttendanceRecord{
		record("a1", "doc1", "2024-12-27", "09:00-15:00", EventCheckIn),
	}
	candidate := record("", "doc1", "2024-12-27", "09:00-15:00", EventCheckOut)

	assert.Nil(t, validateCreate(candidate, existing))
}

func TestValidateCreate_CheckOutWithCheckInFromOtherShift(t *testing.T) {
	existing := []AttendanceRecord{
		record("a1", "doc1", "2024-12-27", "09:00-15:00", EventCheckIn),
	}
	// Check-in ada, tapi untuk shift lain
	candidate := record("", "doc1", "2024-12-27", "15:00-21:00", EventCheckOut)

	conflict := validateCreate(candidate, existing)
	assert.NotNil(t, conflict)
	assert.Equal(t, conflictMissingCheckIn, conflict.Reason)
}

func TestValidateUpdate_ExcludesSelfFromDuplicateScan(t *testing.T) {
	existing := []AttendanceRecord{
		record("a1", "doc1", "2024-12-27", "09:00-15:00", EventCheckIn),
	}
	// Record yang sama di-update tanpa mengubah tuple: bukan duplikat
	candidate := record("a1", "doc1", "2024-12-27", "09:00-15:00", EventCheckIn)

	assert.Nil(t, validateUpdate("a1", candidate, existing))
}

func TestValidateUpdate_CollisionWithOtherRecord(t *testing.T) {
	existing := []AttendanceRecord{
		record("a1", "doc1", "2024-12-27", "09:00-15:00", EventCheckIn),
		record("a2", "doc1", "2024-12-28", "09:00-15:00", EventCheckIn),
	}
	// a2 dipindah ke tanggal a1 → bentrok dengan a1
	candidate := record("a2", "doc1", "2024-12-27", "09:00-15:00", EventCheckIn)

	conflict := validateUpdate("a2", candidate, existing)
	assert.NotNil(t, conflict)
	assert.Equal(t, conflictDuplicate, conflict.Reason)
	assert.Equal(t, "a1", conflict.Existing.ID)
}

func TestValidateUpdate_CheckOutLosesItsCheckIn(t *testing.T) {
	existing := []AttendanceRecord{
		record("a1", "doc1", "2024-12-27", "09:00-15:00", EventCheckIn),
		record("a2", "doc1", "2024-12-27", "09:00-15:00", EventCheckOut),
	}
	// Check-out dipindah ke tanggal tanpa check-in
	candidate := record("a2", "doc1", "2024-12-28", "09:00-15:00", EventCheckOut)

	conflict := validateUpdate("a2", candidate, existing)
	assert.NotNil(t, conflict)
	assert.Equal(t, conflictMissingCheckIn, conflict.Reason)
}
