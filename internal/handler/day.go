package handler

import (
	"net/http"

	"github.com/daymark-app/daymark/internal/ctxkeys"
	"github.com/daymark-app/daymark/internal/service"
)

type DayHandler struct {
	dayService *service.DayService
}

func NewDayHandler(dayService *service.DayService) *DayHandler {
	return &DayHandler{
		dayService: dayService,
	}
}

// Show returns the day aggregate for the dashboard, lazily creating the Day
// row on first access.
func (h *DayHandler) Show(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	date, ok := datePath(w, r, "date")
	if !ok {
		return
	}

	contents, err := h.dayService.Dashboard(userID, date)
	if err != nil {
		serviceError(w, err, "failed to load day", "user_id", userID, "date", date)
		return
	}

	writeJSON(w, http.StatusOK, contents)
}
