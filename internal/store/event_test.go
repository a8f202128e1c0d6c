package store_test

import (
	"context"
	"testing"
	"time"

	"event-contact-system/internal/role"
	"event-contact-system/internal/store"
	"event-contact-system/test"

	"github.com/stretchr/testify/require"
)

func createEvent(t *testing.T, st *store.Store, creatorID uint, code string) uint {
	t.Helper()

	org, err := st.EnsureOrganiser(context.Background(), store.OrganiserParams{
		Name:   "Alice Wang",
		Phone:  "13800000001",
		Email:  "alice@example.com",
		Post:   "Event Organiser",
		UserID: creatorID,
	})
	require.NoError(t, err)

	start := time.Now().Unix()
	id, err := st.CreateEvent(context.Background(), store.CreateEventParams{
		Title:         "迎新晚会",
		Category:      "culture",
		Description:   "年度迎新",
		StartDate:     start,
		EndDate:       start + 86400,
		StartTime:     "18:00",
		EndTime:       "21:00",
		Status:        "upcoming",
		EventCode:     code,
		OrganiserID:   org.ID,
		CreatorUserID: creatorID,
	})
	require.NoError(t, err)
	return id
}

func TestCreateEventCreatorBecomesAdmin(t *testing.T) {
	st := test.NewStore(t)
	ctx := context.Background()

	uid := registerAlice(t, st)
	eventID := createEvent(t, st, uid, "WELCOME1")

	r, err := st.EventRole(ctx, uid, eventID)
	require.NoError(t, err)
	require.Equal(t, role.Admin, r)

	joined, err := st.CheckUserJoined(ctx, uid, eventID)
	require.NoError(t, err)
	require.True(t, joined)
}

func TestCreateEventDuplicateCode(t *testing.T) {
	st := test.NewStore(t)

	uid := registerAlice(t, st)
	createEvent(t, st, uid, "SAMECODE")

	org, err := st.OrganiserByUserID(context.Background(), uid)
	require.NoError(t, err)

	_, err = st.CreateEvent(context.Background(), store.CreateEventParams{
		Title:         "另一场",
		Description:   "撞码",
		StartDate:     1,
		EndDate:       2,
		EventCode:     "samecode", // 活动码大小写不敏感
		OrganiserID:   org.ID,
		CreatorUserID: uid,
	})
	require.ErrorIs(t, err, store.ErrDuplicateEventCode)

	// 事务整体回滚，不留下孤儿记录
	events, err := st.UserEvents(context.Background(), uid)
	require.NoError(t, err)
	require.Len(t, events, 1)
}

func TestEventByCode(t *testing.T) {
	st := test.NewStore(t)
	ctx := context.Background()

	uid := registerAlice(t, st)
	eventID := createEvent(t, st, uid, "FINDME01")

	event, err := st.EventByCode(ctx, "findme01")
	require.NoError(t, err)
	require.Equal(t, eventID, event.ID)
	require.Equal(t, "FINDME01", event.EventCode)

	_, err = st.EventByCode(ctx, "MISSING0")
	require.ErrorIs(t, err, store.ErrNotFound)
}

func TestJoinEvent(t *testing.T) {
	st := test.NewStore(t)
	ctx := context.Background()

	uid := registerAlice(t, st)
	eventID := createEvent(t, st, uid, "JOINME01")

	bobID, err := st.RegisterUser(ctx, store.RegisterUserParams{
		FirstName: "Bob",
		LastName:  "Li",
		MobileNo:  "13800000002",
		Username:  "bob@example.com",
		Password:  "passw0rd1",
	})
	require.NoError(t, err)

	joined, err := st.CheckUserJoined(ctx, bobID, eventID)
	require.NoError(t, err)
	require.False(t, joined)

	require.NoError(t, st.JoinEvent(ctx, bobID, eventID, ""))

	joined, err = st.CheckUserJoined(ctx, bobID, eventID)
	require.NoError(t, err)
	require.True(t, joined)

	r, err := st.EventRole(ctx, bobID, eventID)
	require.NoError(t, err)
	require.Equal(t, role.Participant, r)

	// 重复加入
	require.ErrorIs(t, st.JoinEvent(ctx, bobID, eventID, ""), store.ErrAlreadyJoined)

	// 非法角色
	require.ErrorIs(t, st.JoinEvent(ctx, bobID+1, eventID, "owner"), store.ErrInvalidRole)
}

func TestSetEventRole(t *testing.T) {
	st := test.NewStore(t)
	ctx := context.Background()

	uid := registerAlice(t, st)
	eventID := createEvent(t, st, uid, "ROLES001")

	bobID, err := st.RegisterUser(ctx, store.RegisterUserParams{
		FirstName: "Bob",
		LastName:  "Li",
		MobileNo:  "13800000002",
		Username:  "bob@example.com",
		Password:  "passw0rd1",
	})
	require.NoError(t, err)
	require.NoError(t, st.JoinEvent(ctx, bobID, eventID, ""))

	require.NoError(t, st.SetEventRole(ctx, bobID, eventID, role.Core))

	r, err := st.EventRole(ctx, bobID, eventID)
	require.NoError(t, err)
	require.Equal(t, role.Core, r)

	// 枚举外的值一律拒绝
	require.ErrorIs(t, st.SetEventRole(ctx, bobID, eventID, "moderator"), store.ErrInvalidRole)

	// 未加入的用户没有可变更的角色
	require.ErrorIs(t, st.SetEventRole(ctx, bobID+100, eventID, role.Core), store.ErrNotFound)
}

func TestEventsByStatus(t *testing.T) {
	st := test.NewStore(t)
	ctx := context.Background()

	uid := registerAlice(t, st)
	createEvent(t, st, uid, "STATUS01")

	events, err := st.EventsByStatus(ctx, "upcoming")
	require.NoError(t, err)
	require.Len(t, events, 1)

	// 状态值精确匹配，不做大小写或前缀折叠
	events, err = st.EventsByStatus(ctx, "Upcoming")
	require.NoError(t, err)
	require.Empty(t, events)
}

func TestUserEvents(t *testing.T) {
	st := test.NewStore(t)
	ctx := context.Background()

	uid := registerAlice(t, st)
	createEvent(t, st, uid, "MINE0001")
	createEvent(t, st, uid, "MINE0002")

	bobID, err := st.RegisterUser(ctx, store.RegisterUserParams{
		FirstName: "Bob",
		LastName:  "Li",
		MobileNo:  "13800000002",
		Username:  "bob@example.com",
		Password:  "passw0rd1",
	})
	require.NoError(t, err)

	events, err := st.UserEvents(ctx, uid)
	require.NoError(t, err)
	require.Len(t, events, 2)

	events, err = st.UserEvents(ctx, bobID)
	require.NoError(t, err)
	require.Empty(t, events)
}

func TestEventMembersAndStatistics(t *testing.T) {
	st := test.NewStore(t)
	ctx := context.Background()

	uid := registerAlice(t, st)
	eventID := createEvent(t, st, uid, "STATS001")

	bobID, err := st.RegisterUser(ctx, store.RegisterUserParams{
		FirstName: "Bob",
		LastName:  "Li",
		MobileNo:  "13800000002",
		Username:  "bob@example.com",
		Password:  "passw0rd1",
	})
	require.NoError(t, err)
	require.NoError(t, st.JoinEvent(ctx, bobID, eventID, role.Core))

	members, err := st.EventMembers(ctx, eventID)
	require.NoError(t, err)
	require.Len(t, members, 2)
	require.Equal(t, "alice@example.com", members[0].Username)
	require.Equal(t, role.Admin, members[0].UserRole)

	_, err = st.SendMessage(ctx, store.SendMessageParams{EventID: eventID, SenderUsername: "bob@example.com", Text: "hi"})
	require.NoError(t, err)

	stats, err := st.EventStatistics(ctx, eventID)
	require.NoError(t, err)
	require.EqualValues(t, 2, stats.MemberCount)
	require.EqualValues(t, 1, stats.MessageCount)
	require.EqualValues(t, 0, stats.AnnouncementCount)
	require.EqualValues(t, 0, stats.SubeventCount)
}
