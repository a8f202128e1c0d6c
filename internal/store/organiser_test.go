package store_test

import (
	"context"
	"testing"

	"event-contact-system/internal/store"
	"event-contact-system/test"

	"github.com/stretchr/testify/require"
)

func TestEnsureOrganiserIdempotent(t *testing.T) {
	st := test.NewStore(t)
	ctx := context.Background()

	uid := registerAlice(t, st)

	first, err := st.EnsureOrganiser(ctx, store.OrganiserParams{
		Name:   "Alice Wang",
		Phone:  "13800000001",
		Email:  "alice@example.com",
		Post:   "Event Organiser",
		UserID: uid,
	})
	require.NoError(t, err)

	// 第二次创建活动时复用同一份档案
	second, err := st.EnsureOrganiser(ctx, store.OrganiserParams{
		Name:   "Alice W.",
		Phone:  "13900000000",
		Email:  "alice@example.com",
		Post:   "Director",
		UserID: uid,
	})
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)
	require.Equal(t, "Alice Wang", second.Name)
}

func TestUpdateOrganiser(t *testing.T) {
	st := test.NewStore(t)
	ctx := context.Background()

	uid := registerAlice(t, st)

	require.ErrorIs(t, st.UpdateOrganiser(ctx, uid, "13900000000", ""), store.ErrNotFound)

	_, err := st.EnsureOrganiser(ctx, store.OrganiserParams{
		Name:   "Alice Wang",
		Phone:  "13800000001",
		Email:  "alice@example.com",
		Post:   "Event Organiser",
		UserID: uid,
	})
	require.NoError(t, err)

	require.NoError(t, st.UpdateOrganiser(ctx, uid, "13900000000", "Director"))

	org, err := st.OrganiserByUserID(ctx, uid)
	require.NoError(t, err)
	require.Equal(t, "13900000000", org.Phone)
	require.Equal(t, "Director", org.Post)
	require.Equal(t, "alice@example.com", org.Email)
}
