package doctorerrors

import (
	"net/http"

	"github.com/adeka83-arch/systemklinik-sub011/internal/shared/apperror"
)

var (
	ErrDoctorNotFound = apperror.New(
		apperror.CodeNotFound,
		"doctor not found",
		http.StatusNotFound,
	)
	ErrDuplicateLicenseNo = apperror.New(
		apperror.CodeConflict,
		"a doctor with this license number already exists",
		http.StatusConflict,
	)
)
