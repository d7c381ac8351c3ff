package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/talawarsneha/project-management-app/internal/domain/apperr"
	"github.com/talawarsneha/project-management-app/pkg/response"
)

// respondError maps domain errors onto HTTP statuses. Validation,
// not-found, and authentication messages are caller-safe and pass
// through; storage failures surface only the operation-level message so
// internal detail never leaks.
func respondError(c *gin.Context, logger *logrus.Logger, err error, storageMsg string) {
	switch {
	case apperr.IsValidation(err):
		response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
	case apperr.IsNotFound(err):
		response.Error[any](c, http.StatusNotFound, err.Error(), nil)
	case apperr.IsAuthentication(err):
		response.Error[any](c, http.StatusUnauthorized, err.Error(), nil)
	case apperr.IsStorage(err):
		if logger != nil {
			logger.WithError(err).Error("storage operation failed")
		}
		response.Error[any](c, http.StatusBadGateway, storageMsg, nil)
	default:
		if logger != nil {
			logger.WithError(err).Error("unexpected error")
		}
		response.Error[any](c, http.StatusInternalServerError, storageMsg, nil)
	}
}
