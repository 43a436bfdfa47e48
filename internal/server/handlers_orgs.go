package server

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/jonathan/meeting-mbti/internal/db"
	"github.com/jonathan/meeting-mbti/internal/types"
)

func (s *Server) handleCreateOrganization(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	var req types.CreateOrganizationRequest
	if err := decodeJSON(r, &req); err != nil {
		s.failure(w, r, err)
		return
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := req.Validate(); err != nil {
		s.failure(w, r, validationError(err))
		return
	}

	org := &db.Organization{
		OwnerID:     userID,
		Name:        req.Name,
		Description: strings.TrimSpace(req.Description),
	}
	if err := s.store.CreateOrganization(r.Context(), org); err != nil {
		s.failure(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusCreated, org)
}

func (s *Server) handleListOrganizations(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	orgs, err := s.store.ListOrganizations(r.Context(), userID)
	if err != nil {
		s.failure(w, r, err)
		return
	}
	if orgs == nil {
		orgs = []db.Organization{}
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"organizations": orgs, "count": len(orgs)})
}

func (s *Server) handleGetOrganization(w http.ResponseWriter, r *http.Request) {
	userID, ok := callerID(r)
	if !ok {
		s.errorResponse(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	org, err := s.ownedOrganization(r, userID, r.PathValue("id"))
	if err != nil {
		s.failure(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, org)
}

// ownedOrganization loads the organization with the given raw ID and checks
// that userID owns it. Organizations of other users are reported as missing.
func (s *Server) ownedOrganization(r *http.Request, userID uuid.UUID, rawID string) (*db.Organization, error) {
	id, err := uuid.Parse(rawID)
	if err != nil {
		return nil, &ErrValidation{Field: "id", Message: "invalid organization ID"}
	}
	org, err := s.store.GetOrganization(r.Context(), id)
	if err != nil {
		return nil, err
	}
	if org == nil || org.OwnerID != userID {
		return nil, &ErrNotFound{Resource: "organization", ID: rawID}
	}
	return org, nil
}
