package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/jonathan/meeting-mbti/internal/db"
	"github.com/jonathan/meeting-mbti/internal/profile"
	"github.com/jonathan/meeting-mbti/internal/schemas"
	"github.com/jonathan/meeting-mbti/internal/server/middleware"
	"github.com/jonathan/meeting-mbti/internal/survey"
	"github.com/jonathan/meeting-mbti/internal/typology"
	"github.com/jonathan/meeting-mbti/internal/types"
)

// ClassificationResponse is returned by the classify and submit endpoints
type ClassificationResponse struct {
	TypeA      typology.TypeACode  `json:"type_a"`
	TypeAEntry typology.Entry      `json:"type_a_entry"`
	TypeB      typology.TypeBScore `json:"type_b"`
	TypeBEntry typology.Entry      `json:"type_b_entry"`
	Profile    profile.UserProfile `json:"profile"`
}

func newClassificationResponse(g *profile.Generated) ClassificationResponse {
	return ClassificationResponse{
		TypeA:      g.TypeA,
		TypeAEntry: g.Result.TypeAEntry,
		TypeB:      g.Result.TypeB,
		TypeBEntry: g.Result.TypeBEntry,
		Profile:    g.Profile,
	}
}

// classifyRequest decodes a SurveyRequest, checks the answers against the
// answer-set schema and generates the profile.
func classifyRequest(r *http.Request) (survey.AnswerSet, *profile.Generated, error) {
	var req types.SurveyRequest
	if err := decodeJSON(r, &req); err != nil {
		return nil, nil, err
	}
	if err := req.Validate(); err != nil {
		return nil, nil, validationError(err)
	}
	if err := schemas.ValidateAnswerSet(req.Answers); err != nil {
		return nil, nil, err
	}

	var answers survey.AnswerSet
	if err := json.Unmarshal(req.Answers, &answers); err != nil {
		return nil, nil, &ErrValidation{Field: "answers", Message: err.Error()}
	}
	generated, err := profile.Generate(answers)
	if err != nil {
		return nil, nil, err
	}
	return answers, generated, nil
}

func (s *Server) handleQuestions(w http.ResponseWriter, r *http.Request) {
	questions := survey.Questions()
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"questions": questions,
		"count":     len(questions),
	})
}

func (s *Server) handleClassify(w http.ResponseWriter, r *http.Request) {
	_, generated, err := classifyRequest(r)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	s.metrics.classifications.WithLabelValues(string(generated.TypeA)).Inc()
	s.jsonResponse(w, http.StatusOK, newClassificationResponse(generated))
}

// handleSubmitSurvey classifies the answers and stores them as the caller's
// profile, replacing any previous one.
func (s *Server) handleSubmitSurvey(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := callerID(r)
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	answers, generated, err := classifyRequest(r)
	if err != nil {
		s.failure(w, r, err)
		return
	}

	p := &db.Profile{
		OwnerID: ownerID,
		IsGuest: middleware.IsGuest(r),
		TypeA:   string(generated.TypeA),
		TypeB:   string(generated.TypeB),
		Answers: answers,
		Profile: generated.Profile,
	}
	if err := s.store.SaveProfile(r.Context(), p); err != nil {
		s.failure(w, r, err)
		return
	}

	s.metrics.classifications.WithLabelValues(string(generated.TypeA)).Inc()
	s.logger.Info("profile saved",
		zap.String("owner_id", ownerID.String()),
		zap.Bool("guest", p.IsGuest),
		zap.String("type_a", p.TypeA),
		zap.String("type_b", p.TypeB))

	s.jsonResponse(w, http.StatusCreated, newClassificationResponse(generated))
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := callerID(r)
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	p, err := s.store.GetProfile(r.Context(), ownerID)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	if p == nil {
		s.failure(w, r, &ErrNotFound{Resource: "profile", ID: ownerID.String()})
		return
	}
	s.jsonResponse(w, http.StatusOK, p)
}

func (s *Server) handleListTypeA(w http.ResponseWriter, r *http.Request) {
	codes := typology.TypeACodes()
	entries := make([]typology.Entry, 0, len(codes))
	for _, code := range codes {
		e, _ := typology.LookupTypeA(code)
		entries = append(entries, e)
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"types": entries, "count": len(entries)})
}

func (s *Server) handleGetTypeA(w http.ResponseWriter, r *http.Request) {
	code := strings.ToUpper(r.PathValue("code"))
	e, ok := typology.LookupTypeA(typology.TypeACode(code))
	if !ok {
		s.failure(w, r, &ErrNotFound{Resource: "type A", ID: code})
		return
	}
	s.jsonResponse(w, http.StatusOK, e)
}

func (s *Server) handleListTypeB(w http.ResponseWriter, r *http.Request) {
	codes := typology.TypeBCodes()
	entries := make([]typology.Entry, 0, len(codes))
	for _, code := range codes {
		entries = append(entries, typology.LookupTypeB(code))
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"types":    entries,
		"count":    len(entries),
		"fallback": typology.LookupTypeB(""),
	})
}

// handleGetTypeB only answers for registered codes; the fallback entry is
// listed separately.
func (s *Server) handleGetTypeB(w http.ResponseWriter, r *http.Request) {
	code := typology.TypeBCode(strings.ToUpper(r.PathValue("code")))
	if !typology.HasTypeB(code) {
		s.failure(w, r, &ErrNotFound{Resource: "type B", ID: fmt.Sprint(code)})
		return
	}
	s.jsonResponse(w, http.StatusOK, typology.LookupTypeB(code))
}
