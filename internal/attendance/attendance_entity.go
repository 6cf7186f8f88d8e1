package attendance

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// KeyPrefix adalah prefix key semua record absensi di RecordStore.
const KeyPrefix = "attendance:"

const (
	EventCheckIn  = "check-in"
	EventCheckOut = "check-out"
)

// AttendanceRecord adalah satu kejadian absensi (check-in atau check-out)
// untuk seorang dokter/karyawan pada tanggal dan shift tertentu.
// Tuple (SubjectID, Date, Shift, EventType) harus unik.
type AttendanceRecord struct {
	ID          string    `json:"id"`
	SubjectID   string    `json:"subject_id"`
	SubjectName string    `json:"subject_name"`
	Shift       string    `json:"shift"`
	EventType   string    `json:"event_type"`
	Date        string    `json:"date"` // YYYY-MM-DD
	Time        string    `json:"time"` // HH:MM
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func Key(id string) string {
	return KeyPrefix + id
}

// NewRecordID membuat id baru: timestamp milidetik + suffix acak.
// ID tidak pernah berubah setelah record dibuat.
func NewRecordID(now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), uuid.NewString()[:8])
}

// sameTuple membandingkan uniqueness key dua record.
func sameTuple(a, b AttendanceRecord) bool {
	return a.SubjectID == b.SubjectID &&
		a.Date == b.Date &&
		a.Shift == b.Shift &&
		a.EventType == b.EventType
}

// sortTimestamp menggabungkan date+time untuk pengurutan list.
// Nilai yang tidak bisa diparse menghasilkan zero time sehingga
// tersortir paling akhir pada urutan descending.
func (r AttendanceRecord) sortTimestamp() time.Time {
	t, err := time.Parse("2006-01-02 15:04", r.Date+" "+r.Time)
	if err != nil {
		return time.Time{}
	}
	return t
}
