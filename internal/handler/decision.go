package handler

import (
	"net/http"

	"github.com/daymark-app/daymark/internal/ctxkeys"
	"github.com/daymark-app/daymark/internal/service"
)

type DecisionHandler struct {
	decisionService *service.DecisionService
}

func NewDecisionHandler(decisionService *service.DecisionService) *DecisionHandler {
	return &DecisionHandler{
		decisionService: decisionService,
	}
}

func (h *DecisionHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	status := r.URL.Query().Get("status")

	decisions, err := h.decisionService.Decisions(userID, status)
	if err != nil {
		serviceError(w, err, "failed to list decisions", "user_id", userID)
		return
	}

	writeJSON(w, http.StatusOK, decisions)
}

func (h *DecisionHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	var body struct {
		Title   string `json:"title"`
		Context string `json:"context"`
		Choice  string `json:"choice"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	decision, err := h.decisionService.Create(userID, body.Title, body.Context, body.Choice)
	if err != nil {
		serviceError(w, err, "failed to create decision", "user_id", userID)
		return
	}

	writeJSON(w, http.StatusCreated, decision)
}

func (h *DecisionHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	decisionID := r.PathValue("id")

	var body struct {
		Title   string `json:"title"`
		Context string `json:"context"`
		Choice  string `json:"choice"`
		Outcome string `json:"outcome"`
		Status  string `json:"status"`
	}
	if !decodeBody(w, r, &body) {
		return
	}

	decision, err := h.decisionService.Update(userID, decisionID, body.Title, body.Context, body.Choice, body.Outcome, body.Status)
	if err != nil {
		serviceError(w, err, "failed to update decision", "user_id", userID, "decision_id", decisionID)
		return
	}

	writeJSON(w, http.StatusOK, decision)
}

func (h *DecisionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	decisionID := r.PathValue("id")

	err := h.decisionService.Delete(userID, decisionID)
	if err != nil {
		serviceError(w, err, "failed to delete decision", "user_id", userID, "decision_id", decisionID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
