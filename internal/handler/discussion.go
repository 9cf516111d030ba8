package handler

import (
	"net/http"

	"github.com/daymark-app/daymark/internal/ctxkeys"
	"github.com/daymark-app/daymark/internal/service"
)

type DiscussionHandler struct {
	discussionService *service.DiscussionService
}

func NewDiscussionHandler(discussionService *service.DiscussionService) *DiscussionHandler {
	return &DiscussionHandler{
		discussionService: discussionService,
	}
}

func (h *DiscussionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	date, ok := datePath(w, r, "date")
	if !ok {
		return
	}

	var body struct {
		Person string `json:"person"`
		Topic  string `json:"topic"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	item, err := h.discussionService.Add(userID, date, body.Person, body.Topic)
	if err != nil {
		serviceError(w, err, "failed to create discussion item", "user_id", userID, "date", date)
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

func (h *DiscussionHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	itemID := r.PathValue("id")

	var body struct {
		Person *string `json:"person"`
		Topic  *string `json:"topic"`
		Done   *bool   `json:"done"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	item, err := h.discussionService.Update(userID, itemID, body.Person, body.Topic, body.Done)
	if err != nil {
		serviceError(w, err, "failed to update discussion item", "user_id", userID, "item_id", itemID)
		return
	}

	writeJSON(w, http.StatusOK, item)
}

func (h *DiscussionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	itemID := r.PathValue("id")

	err := h.discussionService.Delete(userID, itemID)
	if err != nil {
		serviceError(w, err, "failed to delete discussion item", "user_id", userID, "item_id", itemID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
