package db

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/meeting-mbti/internal/feedback"
	"github.com/jonathan/meeting-mbti/internal/profile"
	"github.com/jonathan/meeting-mbti/internal/survey"
)

// testStore runs the behaviour every Store backend must share
func testStore(t *testing.T, s Store) {
	t.Run("users", func(t *testing.T) { testUsers(t, s) })
	t.Run("organizations and rooms", func(t *testing.T) { testRooms(t, s) })
	t.Run("participants", func(t *testing.T) { testParticipants(t, s) })
	t.Run("profiles", func(t *testing.T) { testProfiles(t, s) })
	t.Run("feedback", func(t *testing.T) { testFeedback(t, s) })
}

func uniqueEmail(prefix string) string {
	return prefix + "-" + uuid.New().String() + "@example.com"
}

func testUsers(t *testing.T, s Store) {
	ctx := context.Background()

	email := uniqueEmail("Mixed.Case")
	id, err := s.CreateUser(ctx, "Test User", email)
	require.NoError(t, err)
	defer s.DeleteUser(ctx, id)

	user, err := s.GetUser(ctx, id)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "Test User", user.Name)
	assert.Equal(t, normalizeEmail(email), user.Email)
	assert.False(t, user.PasswordSet)
	assert.Empty(t, user.PasswordHash)

	byEmail, err := s.GetUserByEmail(ctx, "  "+email+" ")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	assert.Equal(t, id, byEmail.ID)

	exists, err := s.CheckEmailExists(ctx, email)
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = s.CheckEmailExists(ctx, uniqueEmail("nobody"))
	require.NoError(t, err)
	assert.False(t, exists)

	_, err = s.CreateUser(ctx, "Duplicate", email)
	assert.Error(t, err)

	require.NoError(t, s.UpdatePassword(ctx, id, "$2a$12$hash"))
	user, err = s.GetUser(ctx, id)
	require.NoError(t, err)
	assert.True(t, user.PasswordSet)
	assert.Equal(t, "$2a$12$hash", user.PasswordHash)

	missing, err := s.GetUser(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)

	err = s.UpdatePassword(ctx, uuid.New(), "x")
	assert.True(t, errors.Is(err, ErrNotFound))
	err = s.DeleteUser(ctx, uuid.New())
	assert.True(t, errors.Is(err, ErrNotFound))
}

func testRooms(t *testing.T, s Store) {
	ctx := context.Background()
	host := uuid.New()

	org := &Organization{OwnerID: host, Name: "Platform Team", Description: "weekly syncs"}
	require.NoError(t, s.CreateOrganization(ctx, org))
	assert.NotEqual(t, uuid.Nil, org.ID)
	assert.False(t, org.CreatedAt.IsZero())

	gotOrg, err := s.GetOrganization(ctx, org.ID)
	require.NoError(t, err)
	require.NotNil(t, gotOrg)
	assert.Equal(t, "Platform Team", gotOrg.Name)
	assert.Equal(t, "weekly syncs", gotOrg.Description)

	orgs, err := s.ListOrganizations(ctx, host)
	require.NoError(t, err)
	require.Len(t, orgs, 1)
	assert.Equal(t, org.ID, orgs[0].ID)

	inOrg := &Room{OrganizationID: &org.ID, HostID: host, Name: "주간 팀 회의", MeetingType: "review"}
	loose := &Room{HostID: host, Name: "adhoc", MeetingType: "collaboration"}
	require.NoError(t, s.CreateRoom(ctx, inOrg))
	require.NoError(t, s.CreateRoom(ctx, loose))

	got, err := s.GetRoom(ctx, inOrg.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.OrganizationID)
	assert.Equal(t, org.ID, *got.OrganizationID)
	assert.Equal(t, "review", got.MeetingType)

	got, err = s.GetRoom(ctx, loose.ID)
	require.NoError(t, err)
	assert.Nil(t, got.OrganizationID)

	rooms, err := s.ListRooms(ctx, RoomFilters{HostID: host})
	require.NoError(t, err)
	assert.Len(t, rooms, 2)

	rooms, err = s.ListRooms(ctx, RoomFilters{HostID: host, OrganizationID: org.ID})
	require.NoError(t, err)
	require.Len(t, rooms, 1)
	assert.Equal(t, inOrg.ID, rooms[0].ID)

	rooms, err = s.ListRooms(ctx, RoomFilters{HostID: host, Limit: 1})
	require.NoError(t, err)
	assert.Len(t, rooms, 1)

	require.NoError(t, s.DeleteRoom(ctx, loose.ID))
	require.NoError(t, s.DeleteRoom(ctx, inOrg.ID))
	gone, err := s.GetRoom(ctx, loose.ID)
	require.NoError(t, err)
	assert.Nil(t, gone)

	err = s.DeleteRoom(ctx, loose.ID)
	assert.True(t, errors.Is(err, ErrNotFound))

	missing, err := s.GetOrganization(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func testParticipants(t *testing.T, s Store) {
	ctx := context.Background()
	room := &Room{HostID: uuid.New(), Name: "디자인 리뷰", MeetingType: "review"}
	require.NoError(t, s.CreateRoom(ctx, room))
	defer s.DeleteRoom(ctx, room.ID)

	seeded := &Participant{RoomID: room.ID, Name: "민수", Style: "시각적 선호", Description: "도식 위주"}
	require.NoError(t, s.AddParticipant(ctx, seeded))
	assert.False(t, seeded.JoinedAt.IsZero())

	member := uuid.New()
	first := &Participant{RoomID: room.ID, UserID: &member, Name: "지영", Style: "빠른 결정"}
	require.NoError(t, s.AddParticipant(ctx, first))

	again := &Participant{RoomID: room.ID, UserID: &member, Name: "지영", Style: "세부 분석"}
	require.NoError(t, s.AddParticipant(ctx, again))
	assert.Equal(t, first.ID, again.ID, "rejoining keeps the original row")

	ps, err := s.ListParticipants(ctx, room.ID)
	require.NoError(t, err)
	require.Len(t, ps, 2)
	assert.Equal(t, "민수", ps[0].Name)
	assert.Nil(t, ps[0].UserID)
	require.NotNil(t, ps[1].UserID)
	assert.Equal(t, member, *ps[1].UserID)
	assert.Equal(t, "세부 분석", ps[1].Style)

	require.NoError(t, s.DeleteRoom(ctx, room.ID))
	ps, err = s.ListParticipants(ctx, room.ID)
	require.NoError(t, err)
	assert.Empty(t, ps)
}

func testProfiles(t *testing.T, s Store) {
	ctx := context.Background()
	owner := uuid.New()

	answers := survey.MustParseChoices("ABABBABAABBAABA")
	gen, err := profile.Generate(answers)
	require.NoError(t, err)

	p := &Profile{
		OwnerID: owner,
		IsGuest: true,
		TypeA:   string(gen.TypeA),
		TypeB:   string(gen.TypeB),
		Answers: answers,
		Profile: gen.Profile,
	}
	require.NoError(t, s.SaveProfile(ctx, p))
	assert.False(t, p.UpdatedAt.IsZero())

	got, err := s.GetProfile(ctx, owner)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsGuest)
	assert.Equal(t, p.TypeA, got.TypeA)
	assert.Equal(t, p.TypeB, got.TypeB)
	assert.Equal(t, answers, got.Answers)
	assert.Equal(t, gen.Profile, got.Profile)

	// A resubmission replaces the whole record.
	other := survey.MustParseChoices("AAAAAAAAAAAAAAA")
	gen2, err := profile.Generate(other)
	require.NoError(t, err)
	p2 := &Profile{OwnerID: owner, TypeA: string(gen2.TypeA), TypeB: string(gen2.TypeB), Answers: other, Profile: gen2.Profile}
	require.NoError(t, s.SaveProfile(ctx, p2))

	got, err = s.GetProfile(ctx, owner)
	require.NoError(t, err)
	assert.False(t, got.IsGuest)
	assert.Equal(t, "ESTJ", got.TypeA)
	assert.Equal(t, other, got.Answers)

	listed, err := s.ListProfiles(ctx, []uuid.UUID{owner, uuid.New()})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, owner, listed[0].OwnerID)

	listed, err = s.ListProfiles(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, listed)

	missing, err := s.GetProfile(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func testFeedback(t *testing.T, s Store) {
	ctx := context.Background()
	from, target := uuid.New(), uuid.New()

	f, err := feedback.New("스프린트 회고", from, target,
		feedback.Responses{Communication: 5, Collaboration: 4, Leadership: 4, Listening: 5, Contribution: 5},
		[]string{"경청", "명확한 설명"}, nil, "좋았어요")
	require.NoError(t, err)
	require.NoError(t, s.CreateFeedback(ctx, f))

	got, err := s.GetFeedback(ctx, f.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, f.Responses, got.Responses)
	assert.Equal(t, []string{"경청", "명확한 설명"}, got.Strengths)
	assert.Empty(t, got.Improvements)
	assert.Equal(t, "좋았어요", got.Comment)
	assert.True(t, got.IsVisible)
	assert.WithinDuration(t, f.Date, got.Date, time.Millisecond)

	ok, err := s.SetFeedbackVisibility(ctx, f.ID, uuid.New(), false)
	require.NoError(t, err)
	assert.False(t, ok, "only the target may change visibility")

	ok, err = s.SetFeedbackVisibility(ctx, f.ID, target, false)
	require.NoError(t, err)
	assert.True(t, ok)

	rows, err := s.ListFeedbackForTarget(ctx, target)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.False(t, rows[0].IsVisible)
	assert.Empty(t, feedback.VisibleOnly(rows))

	missing, err := s.GetFeedback(ctx, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, missing)
}
