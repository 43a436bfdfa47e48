package server

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jonathan/meeting-mbti/internal/feedback"
	"github.com/jonathan/meeting-mbti/internal/types"
)

func (s *Server) handleCreateFeedback(w http.ResponseWriter, r *http.Request) {
	fromID, ok := callerID(r)
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req types.CreateFeedbackRequest
	if err := decodeJSON(r, &req); err != nil {
		s.failure(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.failure(w, r, validationError(err))
		return
	}

	f, err := feedback.New(req.MeetingName, fromID, req.TargetUser, req.Responses, req.Strengths, req.Improvements, req.Comment)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	if err := s.store.CreateFeedback(r.Context(), f); err != nil {
		s.failure(w, r, err)
		return
	}

	s.metrics.feedback.Inc()
	s.logger.Info("feedback submitted",
		zap.String("feedback_id", f.ID.String()),
		zap.String("target_user", f.TargetUser.String()))
	s.jsonResponse(w, http.StatusCreated, f)
}

// handleReceivedFeedback lists every row addressed to the caller, hidden ones included
func (s *Server) handleReceivedFeedback(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	rows, err := s.store.ListFeedbackForTarget(r.Context(), userID)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	if rows == nil {
		rows = []feedback.MeetingFeedback{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"feedback": rows, "count": len(rows)})
}

// handleSetFeedbackVisibility lets the target hide or show a row. Rows
// addressed to someone else are reported as missing.
func (s *Server) handleSetFeedbackVisibility(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	raw := r.PathValue("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		s.failure(w, r, &ErrValidation{Field: "id", Message: "invalid feedback ID"})
		return
	}

	var req types.VisibilityRequest
	if err := decodeJSON(r, &req); err != nil {
		s.failure(w, r, err)
		return
	}
	if err := req.Validate(); err != nil {
		s.failure(w, r, validationError(err))
		return
	}

	updated, err := s.store.SetFeedbackVisibility(r.Context(), id, userID, *req.IsVisible)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	if !updated {
		s.failure(w, r, &ErrNotFound{Resource: "feedback", ID: raw})
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"id": id, "isVisible": *req.IsVisible})
}

// summaryResponse writes a summary, or the insufficient-data status when
// there are too few rows.
func (s *Server) summaryResponse(w http.ResponseWriter, r *http.Request, rows []feedback.MeetingFeedback) {
	summary, err := feedback.Summarize(rows)
	if errors.Is(err, feedback.ErrInsufficientData) {
		s.jsonResponse(w, http.StatusOK, map[string]any{
			"status": "insufficient_data",
			"count":  summary.Count,
		})
		return
	}
	if err != nil {
		s.failure(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, summary)
}

func (s *Server) handleOwnFeedbackSummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	rows, err := s.store.ListFeedbackForTarget(r.Context(), userID)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	s.summaryResponse(w, r, rows)
}

// handlePublicFeedbackSummary summarizes only the rows the target left visible
func (s *Server) handlePublicFeedbackSummary(w http.ResponseWriter, r *http.Request) {
	raw := r.PathValue("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		s.failure(w, r, &ErrValidation{Field: "id", Message: "invalid user ID"})
		return
	}

	rows, err := s.store.ListFeedbackForTarget(r.Context(), id)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	s.summaryResponse(w, r, feedback.VisibleOnly(rows))
}
