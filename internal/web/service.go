package web

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/bigredeye/gradebook/api"
	"github.com/bigredeye/gradebook/internal/apperr"
	"github.com/bigredeye/gradebook/internal/config"
	lf "github.com/bigredeye/gradebook/internal/logfield"
)

const (
	headerRequestID = "X-Request-ID"
	keyRequestID    = "request_id"
)

func requestID(c *gin.Context) {
	id := c.GetHeader(headerRequestID)
	if id == "" {
		id = uuid.New().String()
	}
	c.Header(headerRequestID, id)
	c.Set(keyRequestID, id)
	c.Next()
}

type webService struct {
	server *server
	config *config.Config
	log    *zap.Logger
}

func (s webService) requestLog(c *gin.Context) *zap.Logger {
	return s.log.With(lf.RequestID(c.GetString(keyRequestID)))
}

func statusOf(kind apperr.Kind) int {
	switch kind {
	case apperr.KindNotFound, apperr.KindNoMarks:
		return http.StatusNotFound
	case apperr.KindInvalidReference:
		return http.StatusUnprocessableEntity
	case apperr.KindValidationFailed:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s webService) fail(c *gin.Context, err error) {
	kind := apperr.KindOf(err)
	code := statusOf(kind)

	if code == http.StatusInternalServerError {
		s.requestLog(c).Error("Request failed", zap.Error(err))
		c.JSON(code, &api.ErrorResponse{Error: "internal error", Kind: kind.String()})
		return
	}

	message := err.Error()
	appErr := &apperr.Error{}
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	s.requestLog(c).Info("Request rejected", zap.Error(err), lf.ErrorKind(kind.String()))
	c.JSON(code, &api.ErrorResponse{Error: message, Kind: kind.String()})
}

func (s webService) bind(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBind(obj); err != nil {
		s.fail(c, apperr.ValidationFailed("Invalid request: %s", err.Error()))
		return false
	}
	return true
}

func (s webService) bindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		s.fail(c, apperr.ValidationFailed("Invalid query: %s", err.Error()))
		return false
	}
	return true
}

func (s webService) pathID(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		s.fail(c, apperr.ValidationFailed("Invalid %s %q", name, raw))
		return 0, false
	}
	return uint(id), true
}
