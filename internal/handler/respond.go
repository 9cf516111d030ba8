package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/daymark-app/daymark/internal/repository"
	"github.com/daymark-app/daymark/internal/service"
	"github.com/daymark-app/daymark/internal/validation"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(v)
	if err != nil {
		slog.Error("failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// serviceError maps domain errors onto status codes: absent-or-not-owned is
// always 404, bad input 400, the capacity ceiling 409, anything else 500
// (logged, with a generic body).
func serviceError(w http.ResponseWriter, err error, logMsg string, logArgs ...any) {
	switch {
	case isNotFound(err):
		writeError(w, http.StatusNotFound, err.Error())
	case isValidation(err):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrPriorityLimitReached):
		writeError(w, http.StatusConflict, err.Error())
	default:
		slog.Error(logMsg, append([]any{"error", err}, logArgs...)...)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func isNotFound(err error) bool {
	return errors.Is(err, repository.ErrDayNotFound) ||
		errors.Is(err, repository.ErrPriorityNotFound) ||
		errors.Is(err, repository.ErrDiscussionItemNotFound) ||
		errors.Is(err, repository.ErrTimeBlockNotFound) ||
		errors.Is(err, repository.ErrQuickNoteNotFound) ||
		errors.Is(err, repository.ErrDailyReviewNotFound) ||
		errors.Is(err, repository.ErrEisenhowerTaskNotFound) ||
		errors.Is(err, repository.ErrLifeAreaNotFound) ||
		errors.Is(err, repository.ErrDecisionNotFound) ||
		errors.Is(err, repository.ErrPomodoroSessionNotFound)
}

func isValidation(err error) bool {
	return errors.Is(err, service.ErrTitleRequired) ||
		errors.Is(err, service.ErrInvalidTimeRange) ||
		errors.Is(err, service.ErrInvalidDecisionStatus) ||
		errors.Is(err, service.ErrInvalidPomodoroKind) ||
		errors.Is(err, service.ErrInvalidPomodoroLen) ||
		errors.Is(err, validation.ErrInvalidDate)
}

func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	err := json.NewDecoder(r.Body).Decode(v)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// datePath pulls the {date} path segment and normalizes it, writing a 400 on
// malformed input.
func datePath(w http.ResponseWriter, r *http.Request, name string) (string, bool) {
	date, err := validation.NormalizeDate(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return "", false
	}
	return date, true
}
