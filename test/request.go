package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"event-contact-system/internal/global/jwt"
	"event-contact-system/internal/global/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func DoRequest(t *testing.T, handlerFunc gin.HandlerFunc, request any) (resp response.ResponseBody) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	requestBytes, err := json.Marshal(request)
	require.NoError(t, err)
	c.Request = httptest.NewRequest(http.MethodPost, "/test", bytes.NewReader(requestBytes))
	handlerFunc(c)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return
}

// DoAuthedRequest 模拟已通过认证中间件的请求，payload 直接注入上下文
func DoAuthedRequest(t *testing.T, handlerFunc gin.HandlerFunc, request any, claims *jwt.Claims) (resp response.ResponseBody) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	requestBytes, err := json.Marshal(request)
	require.NoError(t, err)
	c.Request = httptest.NewRequest(http.MethodPost, "/test", bytes.NewReader(requestBytes))
	c.Set("payload", claims)
	handlerFunc(c)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return
}

// DoGetRequest 模拟带路径参数和查询参数的 GET 请求
func DoGetRequest(t *testing.T, handlerFunc gin.HandlerFunc, params gin.Params, query string, claims *jwt.Claims) (resp response.ResponseBody) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	target := "/test"
	if query != "" {
		target += "?" + query
	}
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	c.Params = params
	if claims != nil {
		c.Set("payload", claims)
	}
	handlerFunc(c)
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return
}

// Claims 构造测试用的登录态
func Claims(userID uint, username, role string) *jwt.Claims {
	return &jwt.Claims{Payload: jwt.Payload{
		UserID:   userID,
		Username: username,
		Role:     role,
	}}
}
