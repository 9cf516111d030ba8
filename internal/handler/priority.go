package handler

import (
	"net/http"

	"github.com/daymark-app/daymark/internal/ctxkeys"
	"github.com/daymark-app/daymark/internal/service"
)

type PriorityHandler struct {
	priorityService *service.PriorityService
}

func NewPriorityHandler(priorityService *service.PriorityService) *PriorityHandler {
	return &PriorityHandler{
		priorityService: priorityService,
	}
}

func (h *PriorityHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	date, ok := datePath(w, r, "date")
	if !ok {
		return
	}

	var body struct {
		Title string `json:"title"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	priority, err := h.priorityService.Add(userID, date, body.Title)
	if err != nil {
		serviceError(w, err, "failed to create priority", "user_id", userID, "date", date)
		return
	}

	writeJSON(w, http.StatusCreated, priority)
}

func (h *PriorityHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	priorityID := r.PathValue("id")

	var body struct {
		Title     *string `json:"title"`
		Completed *bool   `json:"completed"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	priority, err := h.priorityService.Update(userID, priorityID, body.Title, body.Completed)
	if err != nil {
		serviceError(w, err, "failed to update priority", "user_id", userID, "priority_id", priorityID)
		return
	}

	writeJSON(w, http.StatusOK, priority)
}

func (h *PriorityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	priorityID := r.PathValue("id")

	err := h.priorityService.Delete(userID, priorityID)
	if err != nil {
		serviceError(w, err, "failed to delete priority", "user_id", userID, "priority_id", priorityID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
