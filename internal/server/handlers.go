package server

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/abhisek/quizforge/internal/extract"
	"github.com/abhisek/quizforge/internal/quiz"
)

type quizResponse struct {
	ID           string          `json:"id"`
	SourceFormat string          `json:"source_format"`
	Questions    []quiz.Question `json:"questions"`
}

type scoreRequest struct {
	Items []scoreItem `json:"items"`
}

type scoreItem struct {
	Answer   string `json:"answer"`
	Selected string `json:"selected"`
}

type scoreResponse struct {
	Total   int `json:"total"`
	Correct int `json:"correct"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleGenerate accepts a multipart upload ("file") plus optional
// "questions" and "options" counts, and responds with the generated
// quiz. A document that yields no questions is a 200 with an empty
// question list, not an error.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)

	if err := r.ParseMultipartForm(s.cfg.MaxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart request")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file field")
		return
	}
	defer file.Close()

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext != ".txt" && ext != ".pdf" {
		writeError(w, http.StatusUnsupportedMediaType, "only .txt and .pdf files are supported")
		return
	}

	tmp, err := os.CreateTemp("", "quizforge-upload-*"+ext)
	if err != nil {
		s.logger.Error("creating temp file", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	defer os.Remove(tmp.Name())

	if _, err := io.Copy(tmp, file); err != nil {
		tmp.Close()
		s.logger.Error("saving upload", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	tmp.Close()

	text, format, err := extract.FromFile(tmp.Name())
	if err != nil {
		s.logger.Warn("text extraction failed", "file", header.Filename, "error", err)
		// An unreadable or empty document renders the same "no
		// questions" state as any other unusable input.
		writeJSON(w, http.StatusOK, quizResponse{
			ID:           uuid.NewString(),
			SourceFormat: strings.TrimPrefix(ext, "."),
			Questions:    []quiz.Question{},
		})
		return
	}

	questions := s.formCount(r, "questions", s.cfg.DefaultQuestions)
	options := s.formCount(r, "options", s.cfg.DefaultOptions)

	result := s.svc.Generate(r.Context(), text, questions, options)

	writeJSON(w, http.StatusOK, quizResponse{
		ID:           uuid.NewString(),
		SourceFormat: format,
		Questions:    result.Ordered(),
	})
}

// handleScore grades a submitted quiz statelessly: the client sends
// each question's correct answer alongside the selected option.
func (s *Server) handleScore(w http.ResponseWriter, r *http.Request) {
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	resp := scoreResponse{Total: len(req.Items)}
	for _, item := range req.Items {
		if item.Selected != "" && item.Selected == item.Answer {
			resp.Correct++
		}
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) formCount(r *http.Request, field string, def int) int {
	v := r.FormValue(field)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > 50 {
		return def
	}
	return n
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
