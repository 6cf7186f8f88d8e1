package attendance

import "time"

type CreateAttendanceRequest struct {
	SubjectID   string `json:"subject_id" binding:"required"`
	SubjectName string `json:"subject_name"`
	Shift       string `json:"shift"`
	EventType   string `json:"event_type" binding:"required"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Notes       string `json:"notes"`
}

// UpdateAttendanceRequest adalah patch parsial; field nil tidak diubah.
type UpdateAttendanceRequest struct {
	SubjectID   *string `json:"subject_id"`
	SubjectName *string `json:"subject_name"`
	Shift       *string `json:"shift"`
	EventType   *string `json:"event_type"`
	Date        *string `json:"date"`
	Time        *string `json:"time"`
	Notes       *string `json:"notes"`
}

type AttendanceResponse struct {
	ID          string `json:"id"`
	SubjectID   string `json:"subject_id"`
	SubjectName string `json:"subject_name"`
	Shift       string `json:"shift,omitempty"`
	EventType   string `json:"event_type"`
	Date        string `json:"date"`
	Time        string `json:"time"`
	Notes       string `json:"notes,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ConflictDetails dikirim sebagai error details saat duplicate ditolak,
// supaya frontend bisa menampilkan record yang sudah ada.
type ConflictDetails struct {
	Duplicate      bool                `json:"duplicate"`
	ExistingRecord *AttendanceResponse `json:"existing_record,omitempty"`
}

func mapToResponse(r AttendanceRecord) AttendanceResponse {
	return AttendanceResponse{
		ID:          r.ID,
		SubjectID:   r.SubjectID,
		SubjectName: r.SubjectName,
		Shift:       r.Shift,
		EventType:   r.EventType,
		Date:        r.Date,
		Time:        r.Time,
		Notes:       r.Notes,
		CreatedAt:   r.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   r.UpdatedAt.Format(time.RFC3339),
	}
}
