package store_test

import (
	"context"
	"testing"

	"event-contact-system/internal/store"
	"event-contact-system/test"

	"github.com/stretchr/testify/require"
)

func TestCreateSubevent(t *testing.T) {
	st := test.NewStore(t)
	ctx := context.Background()

	uid := registerAlice(t, st)
	eventID := createEvent(t, st, uid, "SUBEV001")
	otherID := createEvent(t, st, uid, "SUBEV002")

	id, err := st.CreateSubevent(ctx, store.CreateSubeventParams{
		Name:        "workshop",
		Description: "动手环节",
		Capacity:    30,
		EventID:     eventID,
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	list, err := st.EventSubevents(ctx, eventID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "workshop", list[0].Name)
	require.EqualValues(t, 30, list[0].Capacity)

	// 关联只落在目标活动上
	list, err = st.EventSubevents(ctx, otherID)
	require.NoError(t, err)
	require.Empty(t, list)
}

func TestUpdateSubeventCapacity(t *testing.T) {
	st := test.NewStore(t)
	ctx := context.Background()

	uid := registerAlice(t, st)
	eventID := createEvent(t, st, uid, "SUBEV003")

	id, err := st.CreateSubevent(ctx, store.CreateSubeventParams{
		Name:    "lecture",
		EventID: eventID,
	})
	require.NoError(t, err)

	require.NoError(t, st.UpdateSubeventCapacity(ctx, id, 100))

	list, err := st.EventSubevents(ctx, eventID)
	require.NoError(t, err)
	require.EqualValues(t, 100, list[0].Capacity)

	require.ErrorIs(t, st.UpdateSubeventCapacity(ctx, id+999, 10), store.ErrNotFound)
}
