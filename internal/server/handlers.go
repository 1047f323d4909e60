package server

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/jonathan/resume-parser/internal/db"
	"github.com/jonathan/resume-parser/internal/parser"
	"github.com/jonathan/resume-parser/internal/types"
)

// maxUploadBytes caps the size of an uploaded resume document.
const maxUploadBytes = 32 << 20

// ParseResponse represents the response for /parse and /parse/text
type ParseResponse struct {
	ID     string              `json:"id,omitempty"`
	Resume *types.ParsedResume `json:"resume"`
}

// handleParse accepts a multipart resume upload under the "resume" field,
// parses it, and optionally stores the result when "store" is set and a
// database is attached.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid multipart request: "+err.Error())
		return
	}

	file, header, err := r.FormFile("resume")
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Form field 'resume' is required")
		return
	}
	defer file.Close()

	// The extraction strategies dispatch on file extension, so the upload
	// keeps its original extension on disk.
	tmp, err := os.CreateTemp("", "resume-upload-*"+filepath.Ext(header.Filename))
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to buffer upload")
		return
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath)

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		s.errorResponse(w, http.StatusInternalServerError, "Failed to buffer upload")
		return
	}
	if err := tmp.Close(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to buffer upload")
		return
	}

	resume, err := s.parser.ParseFile(r.Context(), tmpPath)
	if err != nil {
		s.parseErrorResponse(w, err)
		return
	}
	resume.SourceFile = header.Filename

	resp := ParseResponse{Resume: resume}
	if s.db != nil && r.FormValue("store") == "true" {
		id, err := s.db.SaveResume(r.Context(), resume)
		if err != nil {
			log.Printf("Failed to store parsed resume: %v", err)
		} else {
			resp.ID = id.String()
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleParseText parses resume text supplied directly in the request body.
func (s *Server) handleParseText(w http.ResponseWriter, r *http.Request) {
	var req types.ParseTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request: "+err.Error())
		return
	}

	resume, err := s.parser.ParseText(r.Context(), req.Text)
	if err != nil {
		s.parseErrorResponse(w, err)
		return
	}
	resume.SourceFile = req.SourceName

	resp := ParseResponse{Resume: resume}
	if s.db != nil && req.Store {
		id, err := s.db.SaveResume(r.Context(), resume)
		if err != nil {
			log.Printf("Failed to store parsed resume: %v", err)
		} else {
			resp.ID = id.String()
		}
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// parseErrorResponse maps parse failures onto HTTP status codes.
func (s *Server) parseErrorResponse(w http.ResponseWriter, err error) {
	if errors.Is(err, parser.ErrNoText) {
		s.errorResponse(w, http.StatusUnprocessableEntity, "Could not extract text from file")
		return
	}
	s.errorResponse(w, http.StatusInternalServerError, err.Error())
}

// handleHealth returns server health
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"status":  "ok",
		"storage": s.db != nil,
	})
}

// handleListResumes returns summaries of stored records
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "No database configured")
		return
	}

	summaries, err := s.db.ListResumes(r.Context(), 0)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if summaries == nil {
		summaries = []db.ResumeSummary{}
	}

	s.jsonResponse(w, http.StatusOK, summaries)
}

// handleGetResume returns one stored record by ID
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "No database configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}

	resume, err := s.db.GetResume(r.Context(), id)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if resume == nil {
		s.errorResponse(w, http.StatusNotFound, "Resume not found")
		return
	}

	s.jsonResponse(w, http.StatusOK, resume)
}

// handleDeleteResume removes one stored record by ID
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	if s.db == nil {
		s.errorResponse(w, http.StatusServiceUnavailable, "No database configured")
		return
	}

	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid resume ID")
		return
	}

	if err := s.db.DeleteResume(r.Context(), id); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
