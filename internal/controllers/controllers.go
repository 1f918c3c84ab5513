package controllers

import (
	"net/http"

	apperrors "requestquote/pkg/errors"
)

func apperrorBadPayload(err error) *apperrors.HttpError {
	return apperrors.NewHttpError(http.StatusBadRequest, "malformed request payload", err, nil)
}

func apperrorBadID(param string, err error) *apperrors.HttpError {
	return apperrors.NewHttpError(http.StatusBadRequest, "invalid id", err,
		map[string]interface{}{"param": param})
}
