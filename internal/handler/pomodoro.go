package handler

import (
	"net/http"

	"github.com/daymark-app/daymark/internal/ctxkeys"
	"github.com/daymark-app/daymark/internal/service"
	"github.com/daymark-app/daymark/internal/validation"
)

type PomodoroHandler struct {
	pomodoroService *service.PomodoroService
}

func NewPomodoroHandler(pomodoroService *service.PomodoroService) *PomodoroHandler {
	return &PomodoroHandler{
		pomodoroService: pomodoroService,
	}
}

func (h *PomodoroHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	date, err := validation.NormalizeDate(r.URL.Query().Get("date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	sessions, err := h.pomodoroService.ByDate(userID, date)
	if err != nil {
		serviceError(w, err, "failed to list pomodoro sessions", "user_id", userID, "date", date)
		return
	}

	writeJSON(w, http.StatusOK, sessions)
}

func (h *PomodoroHandler) Start(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	var body struct {
		Date       string `json:"date"`
		Kind       string `json:"kind"`
		Label      string `json:"label"`
		PlannedMin int    `json:"plannedMin"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	date, err := validation.NormalizeDate(body.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.pomodoroService.Start(userID, date, body.Kind, body.Label, body.PlannedMin)
	if err != nil {
		serviceError(w, err, "failed to start pomodoro", "user_id", userID)
		return
	}

	writeJSON(w, http.StatusCreated, session)
}

func (h *PomodoroHandler) Finish(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	sessionID := r.PathValue("id")

	var body struct {
		Abandoned bool `json:"abandoned"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	session, err := h.pomodoroService.Finish(userID, sessionID, body.Abandoned)
	if err != nil {
		serviceError(w, err, "failed to finish pomodoro", "user_id", userID, "session_id", sessionID)
		return
	}

	writeJSON(w, http.StatusOK, session)
}
