package store_test

import (
	"context"
	"fmt"
	"testing"

	"event-contact-system/internal/store"
	"event-contact-system/test"

	"github.com/stretchr/testify/require"
)

func sendMessages(t *testing.T, st *store.Store, eventID uint, subevent string, texts ...string) {
	t.Helper()
	for _, text := range texts {
		_, err := st.SendMessage(context.Background(), store.SendMessageParams{
			EventID:        eventID,
			SenderUsername: "alice@example.com",
			Text:           text,
			SubeventName:   subevent,
		})
		require.NoError(t, err)
	}
}

func TestEventChatReturnsLatestInChronologicalOrder(t *testing.T) {
	st := test.NewStore(t)
	ctx := context.Background()

	uid := registerAlice(t, st)
	eventID := createEvent(t, st, uid, "CHAT0001")

	sendMessages(t, st, eventID, "", "M1", "M2", "M3", "M4", "M5")

	// 取最新 3 条，按时间正序返回
	msgs, err := st.EventChat(ctx, eventID, 3)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	require.Equal(t, "M3", msgs[0].Text)
	require.Equal(t, "M4", msgs[1].Text)
	require.Equal(t, "M5", msgs[2].Text)
}

func TestEventChatDefaultLimit(t *testing.T) {
	st := test.NewStore(t)
	ctx := context.Background()

	uid := registerAlice(t, st)
	eventID := createEvent(t, st, uid, "CHAT0002")

	var texts []string
	for i := 0; i < 60; i++ {
		texts = append(texts, fmt.Sprintf("msg-%02d", i))
	}
	sendMessages(t, st, eventID, "", texts...)

	msgs, err := st.EventChat(ctx, eventID, 0)
	require.NoError(t, err)
	require.Len(t, msgs, 50)
	// 默认窗口丢掉最早的 10 条
	require.Equal(t, "msg-10", msgs[0].Text)
	require.Equal(t, "msg-59", msgs[len(msgs)-1].Text)
}

func TestSubeventChatIsolation(t *testing.T) {
	st := test.NewStore(t)
	ctx := context.Background()

	uid := registerAlice(t, st)
	eventID := createEvent(t, st, uid, "CHAT0003")

	sendMessages(t, st, eventID, "", "main-1")
	sendMessages(t, st, eventID, "workshop", "ws-1", "ws-2")

	msgs, err := st.EventChat(ctx, eventID, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 1)
	require.Equal(t, "main-1", msgs[0].Text)

	msgs, err = st.SubeventChat(ctx, eventID, "workshop", 10)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	require.Equal(t, "ws-1", msgs[0].Text)
	require.Equal(t, "ws-2", msgs[1].Text)

	// 不存在的会话返回空集而不是错误
	msgs, err = st.SubeventChat(ctx, eventID, "nowhere", 10)
	require.NoError(t, err)
	require.Empty(t, msgs)
}
