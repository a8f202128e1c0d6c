package chat

import (
	"context"
	"strconv"
	"testing"
	"time"

	"event-contact-system/internal/global/response"
	"event-contact-system/internal/role"
	"event-contact-system/internal/store"
	"event-contact-system/test"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func setupModule(t *testing.T) *store.Store {
	t.Helper()
	gin.SetMode(gin.TestMode)
	s := test.NewStore(t)
	(&ModuleChat{}).Init(s, nil, nil)
	return s
}

func seedEvent(t *testing.T, s *store.Store) (creatorID, eventID uint) {
	t.Helper()
	ctx := context.Background()

	creatorID, err := s.RegisterUser(ctx, store.RegisterUserParams{
		FirstName: "Alice",
		LastName:  "Wang",
		MobileNo:  "13800000001",
		Username:  "alice@example.com",
		Password:  "passw0rd1",
	})
	require.NoError(t, err)

	org, err := s.EnsureOrganiser(ctx, store.OrganiserParams{
		Name:   "Alice Wang",
		Email:  "alice@example.com",
		UserID: creatorID,
	})
	require.NoError(t, err)

	start := time.Now().Unix()
	eventID, err = s.CreateEvent(ctx, store.CreateEventParams{
		Title:         "迎新晚会",
		Description:   "年度迎新",
		StartDate:     start,
		EndDate:       start + 86400,
		EventCode:     "CHATEVT1",
		OrganiserID:   org.ID,
		CreatorUserID: creatorID,
	})
	require.NoError(t, err)
	return creatorID, eventID
}

func TestSendRequiresMembership(t *testing.T) {
	s := setupModule(t)
	_, eventID := seedEvent(t, s)

	outsiderID, err := s.RegisterUser(context.Background(), store.RegisterUserParams{
		FirstName: "Bob",
		LastName:  "Li",
		MobileNo:  "13800000002",
		Username:  "bob@example.com",
		Password:  "passw0rd1",
	})
	require.NoError(t, err)

	resp := test.DoAuthedRequest(t, Send, SendRequest{
		EventID: eventID,
		Text:    "hello",
	}, test.Claims(outsiderID, "bob@example.com", role.Participant))
	test.ErrorEqual(t, response.ErrForbidden, resp)
}

func TestSendAndHistory(t *testing.T) {
	s := setupModule(t)
	creatorID, eventID := seedEvent(t, s)
	claims := test.Claims(creatorID, "alice@example.com", role.Participant)

	for _, text := range []string{"M1", "M2", "M3", "M4", "M5"} {
		resp := test.DoAuthedRequest(t, Send, SendRequest{
			EventID: eventID,
			Text:    text,
		}, claims)
		test.NoError(t, resp)
	}

	resp := test.DoGetRequest(t, History,
		gin.Params{{Key: "event_id", Value: strconv.Itoa(int(eventID))}}, "limit=3", claims)
	test.NoError(t, resp)

	msgs, ok := resp.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, msgs, 3)

	var texts []string
	for _, m := range msgs {
		entry, ok := m.(map[string]interface{})
		require.True(t, ok)
		texts = append(texts, entry["text"].(string))
	}
	// 最新 3 条，按时间正序
	require.Equal(t, []string{"M3", "M4", "M5"}, texts)
}

func TestHistorySubeventThread(t *testing.T) {
	s := setupModule(t)
	creatorID, eventID := seedEvent(t, s)
	claims := test.Claims(creatorID, "alice@example.com", role.Participant)

	test.NoError(t, test.DoAuthedRequest(t, Send, SendRequest{
		EventID: eventID,
		Text:    "main-1",
	}, claims))
	test.NoError(t, test.DoAuthedRequest(t, Send, SendRequest{
		EventID:      eventID,
		Text:         "ws-1",
		SubeventName: "workshop",
	}, claims))

	resp := test.DoGetRequest(t, History,
		gin.Params{{Key: "event_id", Value: strconv.Itoa(int(eventID))}}, "subevent=workshop", claims)
	test.NoError(t, resp)

	msgs, ok := resp.Data.([]interface{})
	require.True(t, ok)
	require.Len(t, msgs, 1)
}
