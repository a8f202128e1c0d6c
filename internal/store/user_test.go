package store_test

import (
	"context"
	"testing"

	"event-contact-system/internal/role"
	"event-contact-system/internal/store"
	"event-contact-system/test"

	"github.com/stretchr/testify/require"
)

func registerAlice(t *testing.T, st *store.Store) uint {
	t.Helper()
	id, err := st.RegisterUser(context.Background(), store.RegisterUserParams{
		FirstName: "Alice",
		LastName:  "Wang",
		MobileNo:  "13800000001",
		Username:  "alice@example.com",
		Password:  "passw0rd1",
	})
	require.NoError(t, err)
	return id
}

func TestRegisterUser(t *testing.T) {
	st := test.NewStore(t)
	ctx := context.Background()

	id := registerAlice(t, st)
	require.NotZero(t, id)

	user, err := st.UserByID(ctx, id)
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", user.Username)
	require.Equal(t, role.Participant, user.Role)
	// 入库的必须是哈希而不是明文
	require.NotEqual(t, "passw0rd1", user.Password)
	require.NotEmpty(t, user.Password)
}

func TestRegisterUserDuplicateUsername(t *testing.T) {
	st := test.NewStore(t)
	ctx := context.Background()

	registerAlice(t, st)

	_, err := st.RegisterUser(ctx, store.RegisterUserParams{
		FirstName: "Another",
		LastName:  "Alice",
		MobileNo:  "13800000002",
		Username:  "alice@example.com",
		Password:  "different1",
	})
	require.ErrorIs(t, err, store.ErrDuplicateUsername)
}

func TestRegisterUserInvalidRole(t *testing.T) {
	st := test.NewStore(t)

	_, err := st.RegisterUser(context.Background(), store.RegisterUserParams{
		FirstName: "Bob",
		LastName:  "Li",
		MobileNo:  "13800000003",
		Username:  "bob@example.com",
		Password:  "passw0rd1",
		Role:      "superuser",
	})
	require.ErrorIs(t, err, store.ErrInvalidRole)
}

func TestAuthenticateUser(t *testing.T) {
	st := test.NewStore(t)
	ctx := context.Background()

	registerAlice(t, st)

	user, err := st.AuthenticateUser(ctx, "alice@example.com", "passw0rd1")
	require.NoError(t, err)
	require.Equal(t, "alice@example.com", user.Username)

	// 差一个字符也必须拒绝
	_, err = st.AuthenticateUser(ctx, "alice@example.com", "passw0rd2")
	require.ErrorIs(t, err, store.ErrInvalidCredentials)

	// 用户不存在与密码错误返回同一个错误
	_, err = st.AuthenticateUser(ctx, "nobody@example.com", "passw0rd1")
	require.ErrorIs(t, err, store.ErrInvalidCredentials)
}
