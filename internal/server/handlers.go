package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/sellerdesk/listing-copilot/internal/assistant"
	"github.com/sellerdesk/listing-copilot/internal/compliance"
	"github.com/sellerdesk/listing-copilot/internal/types"
)

// AnalyzeRequest represents the request body for /analyze
type AnalyzeRequest struct {
	Title           string   `json:"title" validate:"required"`
	BulletPoints    []string `json:"bulletPoints" validate:"max=10"`
	Description     []string `json:"description" validate:"max=20"`
	BackendKeywords *string  `json:"backendKeywords,omitempty"`
}

// KeywordsCheckRequest represents the request body for /keywords/check.
// BackendKeywords stays a pointer so a missing value reaches the rule engine
// as nil and produces its single fail-fast error.
type KeywordsCheckRequest struct {
	BackendKeywords *string `json:"backendKeywords"`
}

// AskRequest represents the request body for /assistant/ask
type AskRequest struct {
	Question  string               `json:"question" validate:"required,max=2000"`
	Dashboard *types.DashboardData `json:"dashboard"`
	Cogs      map[string]float64   `json:"cogs,omitempty"`
	History   []types.ChatMessage  `json:"history,omitempty"`
}

// handleAnalyze runs the compliance rule engine over the supplied listing fields.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validateRequest(req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	requestID := uuid.New().String()
	log.Printf("[ANALYZE] request %s: %d bullets, %d paragraphs", requestID, len(req.BulletPoints), len(req.Description))

	analysis := compliance.CheckListing(types.ListingFields{
		Title:           req.Title,
		BulletPoints:    req.BulletPoints,
		Description:     req.Description,
		BackendKeywords: req.BackendKeywords,
	})

	s.jsonResponse(w, http.StatusOK, analysis)
}

// handleKeywordsCheck runs only the backend-keywords rules. This field is
// checked independently of the rest of the listing.
func (s *Server) handleKeywordsCheck(w http.ResponseWriter, r *http.Request) {
	var req KeywordsCheckRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, compliance.CheckBackendKeywords(req.BackendKeywords))
}

// handleAssistantAsk runs the full assistant pipeline for one question.
func (s *Server) handleAssistantAsk(w http.ResponseWriter, r *http.Request) {
	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validateRequest(req); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	requestID := uuid.New().String()
	log.Printf("[ASK] request %s: %d history entries", requestID, len(req.History))

	resp, err := s.assistant.Ask(r.Context(), req.Question, req.Dashboard, req.Cogs, req.History)
	if err != nil {
		var unavailable *assistant.ServiceUnavailableError
		if errors.As(err, &unavailable) {
			log.Printf("[ASK] request %s: model unavailable: %v", requestID, err)
			s.errorResponse(w, HTTPStatus(err), assistant.UnavailableMessage)
			return
		}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// validateRequest runs struct-tag validation and converts the first failure
// into a typed error.
func (s *Server) validateRequest(req any) error {
	err := s.validate.Struct(req)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		first := verrs[0]
		return &ErrValidation{Field: first.Field(), Message: "failed on '" + first.Tag() + "' rule"}
	}
	return &ErrValidation{Field: "request", Message: err.Error()}
}
