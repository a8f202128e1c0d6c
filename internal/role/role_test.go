package role_test

import (
	"testing"

	"event-contact-system/internal/role"

	"github.com/stretchr/testify/require"
)

func TestValid(t *testing.T) {
	require.True(t, role.Valid("admin"))
	require.True(t, role.Valid("Core"))
	require.True(t, role.Valid("PARTICIPANT"))

	require.False(t, role.Valid(""))
	require.False(t, role.Valid("owner"))
	require.False(t, role.Valid("administrator"))
}

func TestNormalize(t *testing.T) {
	require.Equal(t, "admin", role.Normalize(" Admin "))
	require.Equal(t, "core", role.Normalize("CORE"))
}

func TestHas(t *testing.T) {
	require.True(t, role.Has("admin", role.Admin))
	require.True(t, role.Has("Admin", role.Admin, role.Core))
	require.True(t, role.Has("core", role.Admin, role.Core))

	require.False(t, role.Has("participant", role.Admin, role.Core))
	require.False(t, role.Has("", role.Admin))
	require.False(t, role.Has("admin"))
}
