package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/robinjoseph08/golib/logger"
	"github.com/segmentio/encoding/json"
	"github.com/snnyvrz/bookcatalog/internal/dto"
)

// writeJSON encodes v as the whole response body. Strings go out as JSON
// string literals, quotes included.
func writeJSON(c *gin.Context, status int, contentType string, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.FromContext(c.Request.Context()).Err(err).Error("failed to encode response")
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	c.Data(status, contentType, body)
}

func writeMessage(c *gin.Context, status int, message string) {
	writeJSON(c, status, dto.ContentTypeJSONUTF8, message)
}

// logFailure logs the root error type and message of err, plus every inner
// error when err carries several (errors.Join).
func logFailure(c *gin.Context, msg string, err error) {
	data := logger.Data{
		"error_type": errorType(err),
		"message":    err.Error(),
		"method":     c.Request.Method,
		"path":       c.Request.URL.Path,
	}

	if inner := innerErrors(err); len(inner) > 0 {
		lines := make([]string, 0, len(inner))
		for _, e := range inner {
			lines = append(lines, errorType(e)+" - "+e.Error())
		}
		data["inner_errors"] = lines
	}

	logger.FromContext(c.Request.Context()).Err(err).Error(msg, data)
}

func errorType(err error) string {
	return fmt.Sprintf("%T", errors.Cause(err))
}

func innerErrors(err error) []error {
	for err != nil {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			return joined.Unwrap()
		}
		err = errors.Unwrap(err)
	}
	return nil
}
