package response

import (
	"errors"
	"net/http"

	"event-contact-system/internal/global/sentry"

	"github.com/gin-gonic/gin"
)

// ResponseBody 统一响应体
type ResponseBody struct {
	Code int32       `json:"code"`
	Msg  string      `json:"msg"`
	Data interface{} `json:"data,omitempty"`
}

// Success 返回成功响应，data 可选
func Success(c *gin.Context, data ...interface{}) {
	body := ResponseBody{
		Code: 200,
		Msg:  "ok",
	}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.JSON(http.StatusOK, body)
}

// Fail 返回失败响应；非 *Error 类型的错误统一按内部错误处理
func Fail(c *gin.Context, err error) {
	var e *Error
	if !errors.As(err, &e) {
		e = ErrServerInternal.WithOrigin(err)
	}

	// 留给 Sentry 中间件和日志使用
	c.Set(ErrorContextKey, e)
	sentry.CaptureException(c, e)

	c.JSON(http.StatusOK, ResponseBody{
		Code: e.Code,
		Msg:  e.Message,
	})
}

// Recovery 捕获 handler 中的 panic，统一返回内部错误
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		var err error
		switch v := r.(type) {
		case error:
			err = v
		default:
			err = errors.New("panic recovered")
		}
		sentry.CapturePanic(c, r)
		Fail(c, ErrServerInternal.WithOrigin(err))
		c.Abort()
	}
}
