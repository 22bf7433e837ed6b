package web

import (
	"errors"
	"net/http"

	apperrors "github.com/alexisbeaulieu97/designvars/pkg/errors"
)

func statusFor(err error) int {
	var valErr *apperrors.ValidationError
	if errors.As(err, &valErr) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}
