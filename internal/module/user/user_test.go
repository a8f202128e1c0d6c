package user

import (
	"testing"

	"event-contact-system/internal/global/response"
	"event-contact-system/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setupModule(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	(&ModuleUser{}).Init(test.NewStore(t), nil, nil)
}

func registerRequest() RegisterRequest {
	return RegisterRequest{
		FirstName:       "Alice",
		LastName:        "Wang",
		MobileNo:        "13800000001",
		Username:        "alice@example.com",
		Password:        "passw0rd1",
		ConfirmPassword: "passw0rd1",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	setupModule(t)

	resp := test.DoRequest(t, Register, registerRequest())
	test.NoError(t, resp)

	resp = test.DoRequest(t, Login, LoginRequest{
		Username: "alice@example.com",
		Password: "passw0rd1",
	})
	test.NoError(t, resp)

	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok)
	require.NotEmpty(t, data["token"])
	require.Equal(t, "alice@example.com", data["username"])
}

func TestRegisterDuplicate(t *testing.T) {
	setupModule(t)

	test.NoError(t, test.DoRequest(t, Register, registerRequest()))

	resp := test.DoRequest(t, Register, registerRequest())
	test.ErrorEqual(t, response.ErrAlreadyExists, resp)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	setupModule(t)

	req := registerRequest()
	req.ConfirmPassword = "different1"
	resp := test.DoRequest(t, Register, req)
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}

func TestRegisterWeakPassword(t *testing.T) {
	setupModule(t)

	cases := []string{"short1", "onlyletters", "12345678"}
	for _, password := range cases {
		req := registerRequest()
		req.Password = password
		req.ConfirmPassword = password
		resp := test.DoRequest(t, Register, req)
		test.ErrorEqual(t, response.ErrInvalidRequest, resp)
	}
}

func TestRegisterInvalidEmail(t *testing.T) {
	setupModule(t)

	req := registerRequest()
	req.Username = "not-an-email"
	resp := test.DoRequest(t, Register, req)
	test.ErrorEqual(t, response.ErrInvalidRequest, resp)
}

func TestLoginWrongPassword(t *testing.T) {
	setupModule(t)

	test.NoError(t, test.DoRequest(t, Register, registerRequest()))

	// 差一个字符也必须拒绝
	resp := test.DoRequest(t, Login, LoginRequest{
		Username: "alice@example.com",
		Password: "passw0rd2",
	})
	test.ErrorEqual(t, response.ErrInvalidCredentials, resp)

	resp = test.DoRequest(t, Login, LoginRequest{
		Username: "nobody@example.com",
		Password: "passw0rd1",
	})
	test.ErrorEqual(t, response.ErrInvalidCredentials, resp)
}
