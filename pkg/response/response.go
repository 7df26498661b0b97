package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "calendar-agent/pkg/errors"
)

// NewOKResp returns a new OK response with the given data.
func NewOKResp(data any) Resp {
	return Resp{
		ErrorCode: 0,
		Message:   MessageSuccess,
		Data:      data,
	}
}

// OK sends 200 JSON with data wrapped in the standard envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, NewOKResp(data))
}

// Raw sends payload as-is. Used where the wire contract fixes the body shape.
func Raw(c *gin.Context, status int, payload any) {
	c.JSON(status, payload)
}

// Error sends an error envelope. The status comes from the error:
// *errors.ValidationError → 422 with field details, *errors.HTTPError → its own status,
// anything else → 400.
func Error(c *gin.Context, err error) {
	var ve *pkgErrors.ValidationError
	if errors.As(err, &ve) {
		c.JSON(ve.StatusCode(), Resp{
			ErrorCode: ve.StatusCode(),
			Message:   ve.Error(),
			Errors:    ve.Fields,
		})
		return
	}

	var he *pkgErrors.HTTPError
	if errors.As(err, &he) {
		c.JSON(he.StatusCode, Resp{
			ErrorCode: he.Code,
			Message:   he.Message,
		})
		return
	}

	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: DefaultErrorCode,
		Message:   err.Error(),
	})
}

// InternalError sends 500 internal server error. The cause is never echoed to the client.
func InternalError(c *gin.Context, err error) {
	c.JSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}
