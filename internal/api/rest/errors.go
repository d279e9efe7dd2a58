package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/feral-file/ff-marketplace/internal/domain"
	"github.com/feral-file/ff-marketplace/internal/logger"
)

// envelope names the boolean outcome field of a route family
type envelope string

const (
	envelopeSuccess envelope = "success"
	envelopeOK      envelope = "ok"
)

// statusForKind maps an error kind to its HTTP status
func statusForKind(kind domain.ErrorKind) int {
	switch kind {
	case domain.ErrorKindValidation,
		domain.ErrorKindNotForSale,
		domain.ErrorKindMissingMetadata:
		return http.StatusBadRequest
	case domain.ErrorKindNotFound:
		return http.StatusNotFound
	case domain.ErrorKindPaymentFailed:
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}

// errorBody builds the error document of a route family
func errorBody(env envelope, kind domain.ErrorKind, message string) gin.H {
	return gin.H{
		string(env): false,
		"error":      message,
		"code":       string(kind),
	}
}

// respondBadRequest sends a 400 validation error
func respondBadRequest(c *gin.Context, env envelope, message string) {
	c.JSON(http.StatusBadRequest, errorBody(env, domain.ErrorKindValidation, message))
}

// respondError maps err to a status and error document. Extra fields are merged into the body.
func respondError(c *gin.Context, env envelope, err error, extra gin.H) {
	kind := domain.KindOf(err)
	status := statusForKind(kind)

	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request.Context(), err, zap.String("path", c.Request.URL.Path))
	} else {
		logger.WarnCtx(c.Request.Context(), "Request rejected",
			zap.String("path", c.Request.URL.Path),
			zap.String("kind", string(kind)),
			zap.Error(err))
	}

	body := errorBody(env, kind, domain.MessageOf(err))
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}
