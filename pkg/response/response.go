package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Envelope is the uniform wrapper every handler returns. Success is derived
// from the status code; failures additionally carry a list of sub-errors.
type Envelope[T any] struct {
	StatusCode int       `json:"statusCode"`
	Timestamp  time.Time `json:"timestamp"`
	RequestID  string    `json:"requestId,omitempty"`
	Success    bool      `json:"success"`
	Message    string    `json:"message"`
	Data       T         `json:"data"`
	Errors     []string  `json:"errors,omitempty"`
}

// OK writes a success envelope with the given status.
func OK[T any](ctx *gin.Context, status int, data T, message string) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, Envelope[T]{
		StatusCode: status,
		Timestamp:  time.Now().UTC(),
		RequestID:  ctx.GetString("request_id"),
		Success:    status < http.StatusBadRequest,
		Message:    message,
		Data:       data,
	})
}

// Fail builds the failure envelope. Data is always null and success is
// always false. Only the error boundary middleware should call this.
func Fail(ctx *gin.Context, status int, message string, errs []string) Envelope[any] {
	if status == 0 {
		status = http.StatusInternalServerError
	}
	return Envelope[any]{
		StatusCode: status,
		Timestamp:  time.Now().UTC(),
		RequestID:  ctx.GetString("request_id"),
		Success:    false,
		Message:    message,
		Data:       nil,
		Errors:     errs,
	}
}
