package handlers

import (
	"net/http"

	"tableside/backend/internal/httpjson"
	"tableside/backend/internal/models"
	"tableside/backend/internal/store"
)

type Settings struct {
	store *store.Store
}

func NewSettings(st *store.Store) *Settings {
	return &Settings{store: st}
}

func (h *Settings) Get(w http.ResponseWriter, r *http.Request) {
	set, err := h.store.LoadSettings(r.Context())
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	if set == nil {
		httpjson.Error(w, http.StatusNotFound, "settings not initialized")
		return
	}
	httpjson.Write(w, http.StatusOK, set)
}

func (h *Settings) Put(w http.ResponseWriter, r *http.Request) {
	var set models.Settings
	if err := httpjson.Read(r, &set); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid settings payload")
		return
	}
	if err := h.store.SaveSettings(r.Context(), set); err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	set.ID = store.SettingsDocID
	httpjson.Write(w, http.StatusOK, set)
}
