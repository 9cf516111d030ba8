package handler

import (
	"net/http"

	"github.com/daymark-app/daymark/internal/ctxkeys"
	"github.com/daymark-app/daymark/internal/service"
)

type NoteHandler struct {
	noteService *service.NoteService
}

func NewNoteHandler(noteService *service.NoteService) *NoteHandler {
	return &NoteHandler{
		noteService: noteService,
	}
}

// Save upserts the day's quick note. PUT because the note is a singleton
// under its day; repeat autosaves overwrite.
func (h *NoteHandler) Save(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	date, ok := datePath(w, r, "date")
	if !ok {
		return
	}

	var body struct {
		Content string `json:"content"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	note, err := h.noteService.Save(userID, date, body.Content)
	if err != nil {
		serviceError(w, err, "failed to save note", "user_id", userID, "date", date)
		return
	}

	writeJSON(w, http.StatusOK, note)
}
