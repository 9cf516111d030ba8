package handler

import (
	"net/http"

	"github.com/daymark-app/daymark/internal/ctxkeys"
	"github.com/daymark-app/daymark/internal/service"
)

type LifeAreaHandler struct {
	lifeAreaService *service.LifeAreaService
}

func NewLifeAreaHandler(lifeAreaService *service.LifeAreaService) *LifeAreaHandler {
	return &LifeAreaHandler{
		lifeAreaService: lifeAreaService,
	}
}

type lifeAreaBody struct {
	Name     string `json:"name"`
	Color    string `json:"color"`
	Position int    `json:"position"`
}

func (h *LifeAreaHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	areas, err := h.lifeAreaService.Areas(userID)
	if err != nil {
		serviceError(w, err, "failed to list life areas", "user_id", userID)
		return
	}

	writeJSON(w, http.StatusOK, areas)
}

func (h *LifeAreaHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())

	var body lifeAreaBody
	if !decodeBody(w, r, &body) {
		return
	}

	area, err := h.lifeAreaService.Create(userID, body.Name, body.Color, body.Position)
	if err != nil {
		serviceError(w, err, "failed to create life area", "user_id", userID)
		return
	}

	writeJSON(w, http.StatusCreated, area)
}

func (h *LifeAreaHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	areaID := r.PathValue("id")

	var body lifeAreaBody
	if !decodeBody(w, r, &body) {
		return
	}

	area, err := h.lifeAreaService.Update(userID, areaID, body.Name, body.Color, body.Position)
	if err != nil {
		serviceError(w, err, "failed to update life area", "user_id", userID, "area_id", areaID)
		return
	}

	writeJSON(w, http.StatusOK, area)
}

func (h *LifeAreaHandler) Delete(w http.ResponseWriter, r *http.Request) {
	userID := ctxkeys.UserID(r.Context())
	areaID := r.PathValue("id")

	err := h.lifeAreaService.Delete(userID, areaID)
	if err != nil {
		serviceError(w, err, "failed to delete life area", "user_id", userID, "area_id", areaID)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
