package test

import (
	"testing"

	"event-contact-system/internal/global/response"

	"github.com/stretchr/testify/require"
)

// ErrorEqual 只比较错误码：WithTips 会在消息后追加提示文本
func ErrorEqual(t *testing.T, expected *response.Error, resp response.ResponseBody) {
	require.Equal(t, expected.Code, resp.Code)
}

func NoError(t *testing.T, resp response.ResponseBody) {
	require.Equal(t, int32(200), resp.Code)
}
