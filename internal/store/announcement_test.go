package store_test

import (
	"context"
	"testing"

	"event-contact-system/internal/store"
	"event-contact-system/test"

	"github.com/stretchr/testify/require"
)

func TestCreateAnnouncement(t *testing.T) {
	st := test.NewStore(t)
	ctx := context.Background()

	uid := registerAlice(t, st)
	eventID := createEvent(t, st, uid, "ANNC0001")

	id, err := st.CreateAnnouncement(ctx, store.CreateAnnouncementParams{
		Text:           "请准时签到",
		AuthorUsername: "alice@example.com",
		EventID:        eventID,
		FileName:       "schedule.pdf",
		FileType:       "application/pdf",
		FileURL:        "/static/announcement/schedule.pdf",
	})
	require.NoError(t, err)
	require.NotZero(t, id)

	list, err := st.EventAnnouncements(ctx, eventID)
	require.NoError(t, err)
	require.Len(t, list, 1)
	require.Equal(t, "请准时签到", list[0].Text)
	require.Equal(t, "schedule.pdf", list[0].FileName)
}

func TestEventAnnouncementsNewestFirst(t *testing.T) {
	st := test.NewStore(t)
	ctx := context.Background()

	uid := registerAlice(t, st)
	eventID := createEvent(t, st, uid, "ANNC0002")
	otherID := createEvent(t, st, uid, "ANNC0003")

	for _, text := range []string{"first", "second", "third"} {
		_, err := st.CreateAnnouncement(ctx, store.CreateAnnouncementParams{
			Text:           text,
			AuthorUsername: "alice@example.com",
			EventID:        eventID,
		})
		require.NoError(t, err)
	}
	_, err := st.CreateAnnouncement(ctx, store.CreateAnnouncementParams{
		Text:           "elsewhere",
		AuthorUsername: "alice@example.com",
		EventID:        otherID,
	})
	require.NoError(t, err)

	list, err := st.EventAnnouncements(ctx, eventID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	require.Equal(t, "third", list[0].Text)
	require.Equal(t, "second", list[1].Text)
	require.Equal(t, "first", list[2].Text)
}
