package httperr

import (
	"github.com/gin-gonic/gin"
)

// Response is the JSON error body. Code is a stable machine-readable reason
// (for example "sold_out"); it is empty for plain request validation errors.
type Response struct {
	Status int `json:"-"`
	Error  struct {
		Code    string `json:"code,omitempty"`
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

func newResponse(status int, code, msg string, detail any) Response {
	resp := Response{Status: status, Detail: detail}
	resp.Error.Code = code
	resp.Error.Message = msg
	return resp
}

// AbortWithError keeps err on the gin context for the logging middleware.
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	abort(c, err, newResponse(status, "", msg, detail))
}

func abort(c *gin.Context, err error, resp Response) {
	if err == nil {
		panic("httperr: abort without an error")
	}
	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(resp.Status, resp)
}
