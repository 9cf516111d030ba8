package handler

import (
	"net/http"

	"github.com/daymark-app/daymark/internal/ctxkeys"
	"github.com/daymark-app/daymark/internal/service"
	"github.com/daymark-app/daymark/internal/validation"
)

type ReviewHandler struct {
	reviewService *service.ReviewService
}

func NewReviewHandler(reviewService *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{
		reviewService: reviewService,
	}
}

func (h *ReviewHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	userEmail := ctxkeys.UserEmail(r.Context())

	date, ok := datePath(w, r, "date")
	if !ok {
		return
	}

	var body struct {
		WentWell     string `json:"wentWell"`
		NeedsWork    string `json:"needsWork"`
		TomorrowNote string `json:"tomorrowNote"`
		Complete     bool   `json:"complete"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	review, err := h.reviewService.Upsert(userID, userEmail, date, service.ReviewInput{
		WentWell:     body.WentWell,
		NeedsWork:    body.NeedsWork,
		TomorrowNote: body.TomorrowNote,
		Complete:     body.Complete,
	})
	if err != nil {
		serviceError(w, err, "failed to save review", "user_id", userID, "date", date)
		return
	}

	writeJSON(w, http.StatusOK, review)
}

// CarryForward copies the source day's open priorities onto the target day,
// bounded by the target's remaining capacity.
func (h *ReviewHandler) CarryForward(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	fromDate, ok := datePath(w, r, "fromDate")
	if !ok {
		return
	}

	var body struct {
		ToDate string `json:"toDate"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	toDate, err := validation.NormalizeDate(body.ToDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.reviewService.CarryForward(userID, fromDate, toDate)
	if err != nil {
		serviceError(w, err, "failed to carry forward", "user_id", userID, "from", fromDate, "to", toDate)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
