package vouchererrors

import (
	"net/http"

	"github.com/adeka83-arch/systemklinik-sub011/internal/shared/apperror"
)

var (
	ErrVoucherNotFound = apperror.New(
		apperror.CodeNotFound,
		"voucher not found",
		http.StatusNotFound,
	)
	ErrDuplicateCode = apperror.New(
		apperror.CodeConflict,
		"a voucher with this code already exists",
		http.StatusConflict,
	)
	ErrInvalidValidUntil = apperror.New(
		apperror.CodeInvalidInput,
		"invalid valid_until format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
