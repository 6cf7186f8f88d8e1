package attendanceerrors

import (
	"net/http"

	"github.com/adeka83-arch/systemklinik-sub011/internal/shared/apperror"
)

var (
	ErrDuplicateAttendance = apperror.New(
		apperror.CodeConflict,
		"attendance already recorded for this subject, date, shift and event type",
		http.StatusConflict,
	)
	ErrMissingCheckIn = apperror.New(
		apperror.CodeInvalidState,
		"check-out requires an existing check-in for the same subject, date and shift",
		http.StatusBadRequest,
	)
	ErrAttendanceNotFound = apperror.New(
		apperror.CodeNotFound,
		"attendance record not found",
		http.StatusNotFound,
	)
	ErrInvalidEventType = apperror.New(
		apperror.CodeInvalidInput,
		"event_type must be check-in or check-out",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidTimeFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid time format, expected HH:MM",
		http.StatusBadRequest,
	)
)
