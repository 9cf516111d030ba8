package handler

import (
	"net/http"

	"github.com/daymark-app/daymark/internal/ctxkeys"
	"github.com/daymark-app/daymark/internal/service"
)

type TimeBlockHandler struct {
	timeBlockService *service.TimeBlockService
}

func NewTimeBlockHandler(timeBlockService *service.TimeBlockService) *TimeBlockHandler {
	return &TimeBlockHandler{
		timeBlockService: timeBlockService,
	}
}

type timeBlockBody struct {
	Label      string  `json:"label"`
	StartMin   int     `json:"startMin"`
	EndMin     int     `json:"endMin"`
	LifeAreaID *string `json:"lifeAreaId"`
}

func (h *TimeBlockHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	date, ok := datePath(w, r, "date")
	if !ok {
		return
	}

	var body timeBlockBody
	if !decodeBody(w, r, &body) {
		return
	}

	block, err := h.timeBlockService.Add(userID, date, body.Label, body.StartMin, body.EndMin, body.LifeAreaID)
	if err != nil {
		serviceError(w, err, "failed to create time block", "user_id", userID, "date", date)
		return
	}

	writeJSON(w, http.StatusCreated, block)
}

func (h *TimeBlockHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	blockID := r.PathValue("id")

	var body timeBlockBody
	if !decodeBody(w, r, &body) {
		return
	}

	block, err := h.timeBlockService.Update(userID, blockID, body.Label, body.StartMin, body.EndMin, body.LifeAreaID)
	if err != nil {
		serviceError(w, err, "failed to update time block", "user_id", userID, "block_id", blockID)
		return
	}

	writeJSON(w, http.StatusOK, block)
}

func (h *TimeBlockHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	blockID := r.PathValue("id")

	err := h.timeBlockService.Delete(userID, blockID)
	if err != nil {
		serviceError(w, err, "failed to delete time block", "user_id", userID, "block_id", blockID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
