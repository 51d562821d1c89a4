package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/cv-assistant/internal/actions"
	"github.com/jonathan/cv-assistant/internal/assembler"
)

// Action names accepted by /actions.
const (
	ActionSummarize = "summarize"
	ActionImproveCV = "improve_cv"
)

// ActionRequest represents the request body for /actions
type ActionRequest struct {
	Text   string `json:"text" validate:"required"`
	Action string `json:"action" validate:"required"`
}

// ActionResponse represents the response for single-text actions
type ActionResponse struct {
	Result string `json:"result"`
}

// RequirementsRequest represents the request body for /requirements
type RequirementsRequest struct {
	Text string `json:"text" validate:"required"`
}

// CoverLetterRequest represents the request body for /cover-letter
type CoverLetterRequest struct {
	CVText  string `json:"cv_text" validate:"required"`
	JobText string `json:"job_text" validate:"required"`
}

// AgentTurnRequest represents the request body for /agent/turn.
// An empty session_id starts a new conversation from job_posting; subsequent
// turns carry the issued session_id and the user's message.
type AgentTurnRequest struct {
	SessionID  string `json:"session_id,omitempty"`
	JobPosting string `json:"job_posting,omitempty"`
	Message    string `json:"message,omitempty"`
}

// AgentTurnResponse represents the response for /agent/turn
type AgentTurnResponse struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
	CVReady   bool   `json:"cv_ready"`
	PDFPath   string `json:"pdf_path,omitempty"`
}

// decodeAndValidate decodes the JSON body into dst and runs struct validation.
// It writes the error response itself and reports whether the caller may
// proceed.
func (s *Server) decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return false
	}
	if err := s.validate.Struct(dst); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			verr := &ErrValidation{Field: fieldErrs[0].Field(), Message: "failed on '" + fieldErrs[0].Tag() + "'"}
			s.errorResponse(w, HTTPStatus(verr), verr.Error())
			return false
		}
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// handleAction runs one of the single-text prompt actions
func (s *Server) handleAction(w http.ResponseWriter, r *http.Request) {
	var req ActionRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	var result string
	switch req.Action {
	case ActionSummarize:
		result = s.actions.Summarize(r.Context(), req.Text)
	case ActionImproveCV:
		result = s.actions.ImproveCV(r.Context(), req.Text)
	default:
		uerr := &ErrUnknownAction{Action: req.Action}
		s.errorResponse(w, HTTPStatus(uerr), uerr.Error())
		return
	}

	if actions.IsErrorReply(result) {
		s.errorResponse(w, http.StatusBadGateway, result)
		return
	}

	s.jsonResponse(w, http.StatusOK, ActionResponse{Result: result})
}

// handleRequirements extracts key requirements from a job description
func (s *Server) handleRequirements(w http.ResponseWriter, r *http.Request) {
	var req RequirementsRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result := s.actions.ExtractKeyRequirements(r.Context(), req.Text)
	if actions.IsErrorReply(result) {
		s.errorResponse(w, http.StatusBadGateway, result)
		return
	}

	s.jsonResponse(w, http.StatusOK, ActionResponse{Result: result})
}

// handleCoverLetter generates a cover letter from a CV and a job description
func (s *Server) handleCoverLetter(w http.ResponseWriter, r *http.Request) {
	var req CoverLetterRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	result := s.actions.CoverLetter(r.Context(), req.CVText, req.JobText)
	if actions.IsErrorReply(result) {
		s.errorResponse(w, http.StatusBadGateway, result)
		return
	}

	s.jsonResponse(w, http.StatusOK, ActionResponse{Result: result})
}

// handleAgentTurn advances one conversation turn. When the conversation
// finalizes, the CV is assembled and rendered to PDF before responding.
func (s *Server) handleAgentTurn(w http.ResponseWriter, r *http.Request) {
	var req AgentTurnRequest
	if !s.decodeAndValidate(w, r, &req) {
		return
	}

	if req.SessionID == "" {
		// First turn: analyze the posting and open a session.
		msg, session, _ := s.agent.Turn(r.Context(), req.JobPosting, "", nil)
		if session == nil {
			s.errorResponse(w, http.StatusBadGateway, msg)
			return
		}
		id := s.sessions.Put(session)
		s.jsonResponse(w, http.StatusOK, AgentTurnResponse{
			Message:   msg,
			SessionID: id,
		})
		return
	}

	session := s.sessions.Get(req.SessionID)
	if session == nil {
		nferr := &ErrSessionNotFound{SessionID: req.SessionID}
		s.errorResponse(w, HTTPStatus(nferr), nferr.Error())
		return
	}

	msg, updated, done := s.agent.Turn(r.Context(), session.JobPosting.RawText, req.Message, session)
	if updated == nil {
		s.errorResponse(w, http.StatusInternalServerError, msg)
		return
	}
	s.sessions.Update(req.SessionID, updated)

	resp := AgentTurnResponse{
		Message:   msg,
		SessionID: req.SessionID,
		CVReady:   done,
	}

	if done {
		cvText, err := assembler.Assemble(r.Context(), s.client, updated)
		if err != nil {
			log.Printf("CV assembly failed for session %s: %v", req.SessionID, err)
			s.jsonResponse(w, http.StatusOK, resp)
			return
		}
		pdfPath, err := s.renderer.RenderPDF(r.Context(), cvText)
		if err != nil {
			log.Printf("PDF rendering failed for session %s: %v", req.SessionID, err)
			s.jsonResponse(w, http.StatusOK, resp)
			return
		}
		resp.PDFPath = pdfPath
	}

	s.jsonResponse(w, http.StatusOK, resp)
}
