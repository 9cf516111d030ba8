package handler

import (
	"net/http"
	"strconv"

	"github.com/daymark-app/daymark/internal/ctxkeys"
	"github.com/daymark-app/daymark/internal/service"
	"github.com/daymark-app/daymark/internal/validation"
)

type EisenhowerHandler struct {
	eisenhowerService *service.EisenhowerService
}

func NewEisenhowerHandler(eisenhowerService *service.EisenhowerService) *EisenhowerHandler {
	return &EisenhowerHandler{
		eisenhowerService: eisenhowerService,
	}
}

type eisenhowerBody struct {
	Title      string  `json:"title"`
	Note       string  `json:"note"`
	Quadrant   int     `json:"quadrant"`
	LifeAreaID *string `json:"lifeAreaId"`
}

func (h *EisenhowerHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	quadrant := 0
	if q := r.URL.Query().Get("quadrant"); q != "" {
		parsed, err := strconv.Atoi(q)
		if err != nil || parsed < 1 || parsed > 4 {
			writeError(w, http.StatusBadRequest, "quadrant must be 1-4")
			return
		}
		quadrant = parsed
	}
	lifeAreaID := r.URL.Query().Get("lifeArea")

	tasks, err := h.eisenhowerService.Tasks(userID, quadrant, lifeAreaID)
	if err != nil {
		serviceError(w, err, "failed to list tasks", "user_id", userID)
		return
	}

	writeJSON(w, http.StatusOK, tasks)
}

func (h *EisenhowerHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	var body eisenhowerBody
	if !decodeBody(w, r, &body) {
		return
	}

	task, err := h.eisenhowerService.Create(userID, body.Title, body.Note, body.Quadrant, body.LifeAreaID)
	if err != nil {
		serviceError(w, err, "failed to create task", "user_id", userID)
		return
	}

	writeJSON(w, http.StatusCreated, task)
}

func (h *EisenhowerHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	taskID := r.PathValue("id")

	var body eisenhowerBody
	if !decodeBody(w, r, &body) {
		return
	}

	task, err := h.eisenhowerService.Update(userID, taskID, body.Title, body.Note, body.Quadrant, body.LifeAreaID)
	if err != nil {
		serviceError(w, err, "failed to update task", "user_id", userID, "task_id", taskID)
		return
	}

	writeJSON(w, http.StatusOK, task)
}

func (h *EisenhowerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	taskID := r.PathValue("id")

	err := h.eisenhowerService.Delete(userID, taskID)
	if err != nil {
		serviceError(w, err, "failed to delete task", "user_id", userID, "task_id", taskID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Promote turns a matrix task into a priority on the given day and deletes
// the task. 404 when the task is absent or owned by someone else.
func (h *EisenhowerHandler) Promote(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	taskID := r.PathValue("id")

	var body struct {
		Date string `json:"date"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	date, err := validation.NormalizeDate(body.Date)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	priority, err := h.eisenhowerService.PromoteToDaily(userID, taskID, date)
	if err != nil {
		serviceError(w, err, "failed to promote task", "user_id", userID, "task_id", taskID, "date", date)
		return
	}

	writeJSON(w, http.StatusCreated, priority)
}
