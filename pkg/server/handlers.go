package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/matzehuels/justify/pkg/buildinfo"
	errs "github.com/matzehuels/justify/pkg/errors"
	"github.com/matzehuels/justify/pkg/observability"
	"github.com/matzehuels/justify/pkg/pipeline"
)

// JustifyRequest is the body of POST /v1/justify.
type JustifyRequest struct {
	Text       string `json:"text"`
	Width      int    `json:"width,omitempty"`
	Whitespace string `json:"whitespace,omitempty"`
	Normalize  bool   `json:"normalize,omitempty"`
}

// JustifyResponse is the body of a successful POST /v1/justify.
type JustifyResponse struct {
	ID     string   `json:"id"`
	Width  int      `json:"width"`
	Lines  []string `json:"lines"`
	Text   string   `json:"text"`
	Cached bool     `json:"cached"`
}

// ErrorResponse wraps an ErrorBody.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// ErrorBody describes a failed request.
type ErrorBody struct {
	Code    errs.Code `json:"code"`
	Message string    `json:"message"`
}

func (s *Server) handleJustify(w http.ResponseWriter, r *http.Request) {
	var req JustifyRequest
	body := http.MaxBytesReader(w, r.Body, s.MaxBodyBytes)
	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, errs.ErrCodeInputTooLarge,
				fmt.Sprintf("request body exceeds %d bytes", tooLarge.Limit))
			return
		}
		writeError(w, http.StatusBadRequest, errs.ErrCodeInvalidInput, "malformed request body: "+err.Error())
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, http.StatusBadRequest, errs.ErrCodeInvalidInput, "request body must contain a single JSON object")
		return
	}

	res, err := s.Runner.Execute(r.Context(), req.Text, pipeline.Options{
		Width:      req.Width,
		Whitespace: req.Whitespace,
		Normalize:  req.Normalize,
	})
	if err != nil {
		s.fail(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, JustifyResponse{
		ID:     RequestIDFrom(r.Context()),
		Width:  res.Document.Width,
		Lines:  res.Document.Lines,
		Text:   res.Document.String(),
		Cached: res.CacheHit,
	})
}

// fail maps err to a status code and writes it. Only unexpected errors reach
// the error hook and the error log.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	code := errs.GetCode(err)
	if code == "" {
		code = errs.ErrCodeInternal
	}
	msg := errs.UserMessage(err)
	if status == http.StatusInternalServerError {
		observability.HTTP().OnError(r.Context(), r.Method, r.URL.Path, err)
		s.Logger.Error("request failed", "request_id", RequestIDFrom(r.Context()), "err", err)
		msg = "internal error"
	}
	writeError(w, status, code, msg)
}

func statusFor(err error) int {
	switch {
	case errs.Is(err, errs.ErrCodeInputTooLarge):
		return http.StatusRequestEntityTooLarge
	case errs.IsInvalid(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func handleVersion(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code errs.Code, msg string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorBody{Code: code, Message: msg}})
}
