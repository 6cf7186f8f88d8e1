package patienterrors

import (
	"net/http"

	"github.com/adeka83-arch/systemklinik-sub011/internal/shared/apperror"
)

var (
	ErrPatientNotFound = apperror.New(
		apperror.CodeNotFound,
		"patient not found",
		http.StatusNotFound,
	)
	ErrInvalidBirthDate = apperror.New(
		apperror.CodeInvalidInput,
		"invalid birth_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
