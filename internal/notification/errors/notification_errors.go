package notificationerrors

import (
	"net/http"

	"github.com/adeka83-arch/systemklinik-sub011/internal/shared/apperror"
)

var ErrNotificationNotFound = apperror.New(
	apperror.CodeNotFound,
	"notification not found",
	http.StatusNotFound,
)
