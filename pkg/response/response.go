package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/edugest/edugest-api/pkg/errors"
)

// ErrorBody is the error contract consumed by the dashboard.
type ErrorBody struct {
	Error string `json:"error"`
}

// OKBody acknowledges writes that return no row.
type OKBody struct {
	OK bool `json:"ok"`
}

// TokenBody carries an issued bearer token.
type TokenBody struct {
	Token string `json:"token"`
}

// JSON sends data as the bare response body.
func JSON(c *gin.Context, status int, data interface{}) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(status, data)
}

// OK responds with {"ok":true}.
func OK(c *gin.Context) {
	JSON(c, http.StatusOK, OKBody{OK: true})
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	_ = c.Error(err)
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
	c.JSON(appErr.Status, ErrorBody{Error: appErr.Message})
}

// Abort writes the error and stops the handler chain.
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

// Attachment streams a generated file download.
func Attachment(c *gin.Context, filename, contentType string, payload []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, contentType, payload)
}
