package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/agbru/fibdrv/internal/device"
	apperrors "github.com/agbru/fibdrv/internal/errors"
	"github.com/agbru/fibdrv/internal/logging"
)

// FibResponse is the body of a successful /fib request.
type FibResponse struct {
	Offset int64  `json:"offset"`
	Value  string `json:"value"`
	Digits int    `json:"digits"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleFib serves GET /fib?offset=N[&whence=set|cur|end].
func (s *Server) handleFib(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	q := r.URL.Query()
	raw := q.Get("offset")
	if raw == "" {
		writeError(w, http.StatusBadRequest, apperrors.ValidationError{Field: "offset", Message: "missing"}.Error())
		return
	}
	offset, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, apperrors.ValidationError{Field: "offset", Message: "must be an integer"}.Error())
		return
	}
	whence, err := device.ParseWhence(q.Get("whence"))
	if err != nil {
		writeError(w, http.StatusBadRequest, apperrors.ValidationError{Field: "whence", Message: "must be set, cur or end"}.Error())
		return
	}

	h, err := s.device.Open()
	if err != nil {
		if errors.Is(err, device.ErrBusy) {
			w.Header().Set("Retry-After", "1")
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		s.logger.Error("open failed", err, logging.String("device", s.device.Name()))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	defer func() {
		if err := h.Close(); err != nil {
			s.logger.Error("close failed", err, logging.String("device", s.device.Name()))
		}
	}()

	pos, err := h.SeekMode(offset, whence)
	if err != nil {
		s.logger.Error("seek failed", err, logging.Int64("offset", offset))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	value, err := h.Value()
	if err != nil {
		s.logger.Error("read failed", err, logging.Int64("position", pos))
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	writeJSON(w, http.StatusOK, FibResponse{Offset: pos, Value: value, Digits: len(value)})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.logger.Debug("rejected metrics request", logging.String("method", r.Method))
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	s.metrics.WritePrometheus(w, r)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}
