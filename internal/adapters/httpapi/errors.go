package httpapi

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"emojifeed/internal/core/apperr"

	"github.com/gin-gonic/gin"
)

var statusByCode = map[apperr.Code]int{
	apperr.CodeNotFound:          http.StatusNotFound,
	apperr.CodeAuthorNotResolved: http.StatusInternalServerError,
	apperr.CodeValidation:        http.StatusBadRequest,
	apperr.CodeUnauthenticated:   http.StatusUnauthorized,
	apperr.CodeThrottled:         http.StatusTooManyRequests,
	apperr.CodeUpstream:          http.StatusBadGateway,
}

// respondError writes err as {"error", "code"} with the status for its code.
// Errors without a code are reported as 500 without their message.
func respondError(c *gin.Context, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		return
	}

	status, ok := statusByCode[appErr.Code]
	if !ok {
		status = http.StatusInternalServerError
	}

	if appErr.Code == apperr.CodeThrottled && appErr.RetryAfter > 0 {
		secs := int(math.Ceil(appErr.RetryAfter.Seconds()))
		c.Header("Retry-After", strconv.Itoa(secs))
	}

	msg := appErr.Message
	if status >= 500 {
		// keep driver details out of responses
		msg = http.StatusText(status)
		if appErr.Code == apperr.CodeAuthorNotResolved {
			msg = "Author not found"
		}
	}
	c.JSON(status, gin.H{"error": msg, "code": appErr.Code})
}
