package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/meeting-mbti/internal/db"
	"github.com/jonathan/meeting-mbti/internal/icebreak"
	"github.com/jonathan/meeting-mbti/internal/meeting"
	"github.com/jonathan/meeting-mbti/internal/server/middleware"
	"github.com/jonathan/meeting-mbti/internal/survey"
	"github.com/jonathan/meeting-mbti/internal/typology"
	"github.com/jonathan/meeting-mbti/internal/types"
)

const (
	defaultGuestName = "게스트"
	maxRoomLimit     = 100
)

// RoomResponse is a room with its participants in join order
type RoomResponse struct {
	*db.Room
	Participants []db.Participant `json:"participants"`
}

// DashboardResponse bundles every room insight
type DashboardResponse struct {
	Room        RoomResponse               `json:"room"`
	Advice      *meeting.Advice            `json:"advice"`
	Survey      *meeting.SurveyAggregation `json:"survey"`
	Icebreaking *icebreak.Recommendation   `json:"icebreaking"`
}

func newRoomResponse(room *db.Room, ps []db.Participant) RoomResponse {
	if ps == nil {
		ps = []db.Participant{}
	}
	return RoomResponse{Room: room, Participants: ps}
}

func styles(ps []db.Participant) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.Style
	}
	return out
}

func (s *Server) handleCreateRoom(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req types.CreateRoomRequest
	if err := decodeJSON(r, &req); err != nil {
		s.failure(w, r, err)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := req.Validate(); err != nil {
		s.failure(w, r, validationError(err))
		return
	}
	mt, err := meeting.ParseMeetingType(req.MeetingType)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	if req.OrganizationID != nil {
		if _, err := s.ownedOrganization(r, userID, req.OrganizationID.String()); err != nil {
			s.failure(w, r, err)
			return
		}
	}

	room := &db.Room{
		OrganizationID: req.OrganizationID,
		HostID:         userID,
		Name:           req.Name,
		MeetingType:    string(mt),
	}
	if err := s.store.CreateRoom(r.Context(), room); err != nil {
		s.failure(w, r, err)
		return
	}

	participants := make([]db.Participant, 0)
	for _, fp := range meeting.FixtureParticipants(room.Name) {
		p := db.Participant{RoomID: room.ID, Name: fp.Name, Style: fp.Style, Description: fp.Description}
		if err := s.store.AddParticipant(r.Context(), &p); err != nil {
			s.failure(w, r, err)
			return
		}
		participants = append(participants, p)
	}

	s.logger.Info("room created",
		zap.String("room_id", room.ID.String()),
		zap.String("meeting_type", room.MeetingType),
		zap.Int("seeded", len(participants)))
	s.jsonResponse(w, http.StatusCreated, newRoomResponse(room, participants))
}

func (s *Server) handleListRooms(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	filters := db.RoomFilters{HostID: userID}
	if raw := r.URL.Query().Get("organization_id"); raw != "" {
		org, err := s.ownedOrganization(r, userID, raw)
		if err != nil {
			s.failure(w, r, err)
			return
		}
		filters.OrganizationID = org.ID
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxRoomLimit {
			s.failure(w, r, &ErrValidation{Field: "limit", Message: "must be between 1 and 100"})
			return
		}
		filters.Limit = limit
	}

	rooms, err := s.store.ListRooms(r.Context(), filters)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	if rooms == nil {
		rooms = []db.Room{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"rooms": rooms, "count": len(rooms)})
}

// loadRoom resolves the {id} path value to a room and its participants
func (s *Server) loadRoom(r *http.Request) (*db.Room, []db.Participant, error) {
	raw := r.PathValue("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, nil, &ErrValidation{Field: "id", Message: "invalid room ID"}
	}
	room, err := s.store.GetRoom(r.Context(), id)
	if err != nil {
		return nil, nil, err
	}
	if room == nil {
		return nil, nil, &ErrNotFound{Resource: "room", ID: raw}
	}
	ps, err := s.store.ListParticipants(r.Context(), id)
	if err != nil {
		return nil, nil, err
	}
	return room, ps, nil
}

func (s *Server) handleGetRoom(w http.ResponseWriter, r *http.Request) {
	room, ps, err := s.loadRoom(r)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, newRoomResponse(room, ps))
}

func (s *Server) handleDeleteRoom(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	room, _, err := s.loadRoom(r)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	if room.HostID != userID {
		s.failure(w, r, &ErrForbidden{Reason: "only the host can delete a room"})
		return
	}
	if err := s.store.DeleteRoom(r.Context(), room.ID); err != nil {
		s.failure(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleJoinRoom adds the caller to the room using their saved profile.
// Joining again refreshes the caller's entry.
func (s *Server) handleJoinRoom(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req types.JoinRoomRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(r, &req); err != nil {
			s.failure(w, r, err)
			return
		}
		if err := req.Validate(); err != nil {
			s.failure(w, r, validationError(err))
			return
		}
	}

	room, _, err := s.loadRoom(r)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	saved, err := s.store.GetProfile(r.Context(), userID)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	if saved == nil {
		s.jsonResponse(w, http.StatusConflict, map[string]string{
			"error":  "submit the survey before joining a room",
			"status": "profile_required",
		})
		return
	}

	name, err := s.displayName(r.Context(), userID, middleware.IsGuest(r), strings.TrimSpace(req.Name))
	if err != nil {
		s.failure(w, r, err)
		return
	}

	p := db.Participant{
		RoomID:      room.ID,
		UserID:      &userID,
		Name:        name,
		Style:       typology.LookupTypeB(typology.TypeBCode(saved.TypeB)).Name,
		Description: saved.Profile.Style,
	}
	if err := s.store.AddParticipant(r.Context(), &p); err != nil {
		s.failure(w, r, err)
		return
	}

	ps, err := s.store.ListParticipants(r.Context(), room.ID)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, newRoomResponse(room, ps))
}

// displayName picks the name shown in a room: the requested name, else the
// account name, else a placeholder for guests.
func (s *Server) displayName(ctx context.Context, userID uuid.UUID, guest bool, requested string) (string, error) {
	if requested != "" {
		return requested, nil
	}
	if guest {
		return defaultGuestName, nil
	}
	u, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", &ErrUserNotFound{UserID: userID}
	}
	return u.Name, nil
}

// notApplicable reports room insights that cannot be computed for an empty room
func (s *Server) notApplicable(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, meeting.ErrNoParticipants) || errors.Is(err, meeting.ErrNoRespondents) {
		s.jsonResponse(w, http.StatusConflict, map[string]string{
			"error":  err.Error(),
			"status": "not_applicable",
		})
		return
	}
	s.failure(w, r, err)
}

// adviceMeetingType returns the meeting_type query override or the room's own type
func adviceMeetingType(r *http.Request, room *db.Room) (meeting.MeetingType, error) {
	if raw := r.URL.Query().Get("meeting_type"); raw != "" {
		return meeting.ParseMeetingType(raw)
	}
	return meeting.ParseMeetingType(room.MeetingType)
}

func (s *Server) roomAdvice(r *http.Request, room *db.Room, ps []db.Participant) (*meeting.Advice, error) {
	mt, err := adviceMeetingType(r, room)
	if err != nil {
		return nil, err
	}
	return meeting.GenerateAdvice(styles(ps), mt)
}

// roomSurvey aggregates the saved answers of the participants when every one
// of them has a saved profile, and simulates the composite otherwise.
func (s *Server) roomSurvey(ctx context.Context, ps []db.Participant) (*meeting.SurveyAggregation, error) {
	if len(ps) == 0 {
		return nil, meeting.ErrNoRespondents
	}

	ids := make([]uuid.UUID, 0, len(ps))
	for _, p := range ps {
		if p.UserID == nil {
			return meeting.SimulateAggregation(len(ps))
		}
		ids = append(ids, *p.UserID)
	}

	profiles, err := s.store.ListProfiles(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(profiles) != len(ids) {
		return meeting.SimulateAggregation(len(ps))
	}

	answers := make([]survey.AnswerSet, len(profiles))
	for i, p := range profiles {
		answers[i] = p.Answers
	}
	return meeting.AggregateAnswers(answers)
}

func (s *Server) roomIcebreaking(room *db.Room, ps []db.Participant) (*icebreak.Recommendation, error) {
	if len(ps) == 0 {
		return nil, meeting.ErrNoParticipants
	}
	mt, err := meeting.ParseMeetingType(room.MeetingType)
	if err != nil {
		return nil, err
	}
	return icebreak.Recommend(icebreak.Request{
		TeamSize:       len(ps),
		DominantStyles: styles(ps),
		MeetingType:    mt,
	})
}

func (s *Server) handleRoomAdvice(w http.ResponseWriter, r *http.Request) {
	room, ps, err := s.loadRoom(r)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	advice, err := s.roomAdvice(r, room, ps)
	if err != nil {
		s.notApplicable(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, advice)
}

func (s *Server) handleRoomSurvey(w http.ResponseWriter, r *http.Request) {
	_, ps, err := s.loadRoom(r)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	agg, err := s.roomSurvey(r.Context(), ps)
	if err != nil {
		s.notApplicable(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, agg)
}

func (s *Server) handleRoomIcebreaking(w http.ResponseWriter, r *http.Request) {
	room, ps, err := s.loadRoom(r)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	rec, err := s.roomIcebreaking(room, ps)
	if err != nil {
		s.notApplicable(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, rec)
}

// handleRoomDashboard computes advice, survey and icebreaking concurrently
func (s *Server) handleRoomDashboard(w http.ResponseWriter, r *http.Request) {
	room, ps, err := s.loadRoom(r)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	resp := DashboardResponse{Room: newRoomResponse(room, ps)}
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		resp.Advice, err = s.roomAdvice(r, room, ps)
		return err
	})
	g.Go(func() error {
		var err error
		resp.Survey, err = s.roomSurvey(ctx, ps)
		return err
	})
	g.Go(func() error {
		var err error
		resp.Icebreaking, err = s.roomIcebreaking(room, ps)
		return err
	})
	if err := g.Wait(); err != nil {
		s.notApplicable(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resp)
}
