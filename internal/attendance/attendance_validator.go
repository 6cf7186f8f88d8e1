package attendance

const (
	conflictDuplicate      = "duplicate"
	conflictMissingCheckIn = "missing-check-in"
)

// Conflict menjelaskan kenapa sebuah kandidat absensi ditolak.
// Existing hanya terisi untuk duplicate; record mana yang dilaporkan
// mengikuti urutan listing store yang memang tidak deterministik —
// yang dijamin hanya fakta bahwa konflik ada.
type Conflict struct {
	Reason   string
	Existing *AttendanceRecord
}

// validateCreate memeriksa kandidat terhadap seluruh record yang ada:
//  1. duplicate pada tuple (subject, date, shift, event type)
//  2. check-out tanpa check-in untuk (subject, date, shift)
//
// Mengembalikan nil jika valid.
func validateCreate(candidate AttendanceRecord, existing []AttendanceRecord) *Conflict {
	return validate(candidate, existing, "")
}

// validateUpdate sama dengan validateCreate tapi mengecualikan record
// yang sedang diubah dari pemindaian duplikat.
func validateUpdate(id string, candidate AttendanceRecord, existing []AttendanceRecord) *Conflict {
	return validate(candidate, existing, id)
}

func validate(candidate AttendanceRecord, existing []AttendanceRecord, excludeID string) *Conflict {
	for i := range existing {
		if excludeID != "" && existing[i].ID == excludeID {
			continue
		}
		if sameTuple(existing[i], candidate) {
			return &Conflict{Reason: conflictDuplicate, Existing: &existing[i]}
		}
	}

	if candidate.EventType == EventCheckOut {
		if !hasCheckIn(candidate, existing, excludeID) {
			return &Conflict{Reason: conflictMissingCheckIn}
		}
	}

	return nil
}

func hasCheckIn(candidate AttendanceRecord, existing []AttendanceRecord, excludeID string) bool {
	for i := range existing {
		if excludeID != "" && existing[i].ID == excludeID {
			continue
		}
		if existing[i].SubjectID == candidate.SubjectID &&
			existing[i].Date == candidate.Date &&
			existing[i].Shift == candidate.Shift &&
			existing[i].EventType == EventCheckIn {
			return true
		}
	}
	return false
}
