package handlers

import (
	"net/http"

	"tableside/backend/internal/httpjson"
	"tableside/backend/internal/models"
	"tableside/backend/internal/store"

	"github.com/go-chi/chi/v5"
)

// Tables serves the floor layout: tables and the zones they sit in.
type Tables struct {
	store *store.Store
}

func NewTables(st *store.Store) *Tables {
	return &Tables{store: st}
}

func (h *Tables) List(w http.ResponseWriter, r *http.Request) {
	tables, err := h.store.LoadTables(r.Context())
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, tables)
}

func (h *Tables) Put(w http.ResponseWriter, r *http.Request) {
	var t models.Table
	if err := httpjson.Read(r, &t); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid table payload")
		return
	}
	t.ID = chi.URLParam(r, "id")
	if t.Status == "" {
		t.Status = "free"
	}
	if err := h.store.SaveTable(r.Context(), t); err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, t)
}

func (h *Tables) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteTable(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Tables) ListZones(w http.ResponseWriter, r *http.Request) {
	zones, err := h.store.LoadZones(r.Context())
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, zones)
}

func (h *Tables) PutZone(w http.ResponseWriter, r *http.Request) {
	var z models.Zone
	if err := httpjson.Read(r, &z); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid zone payload")
		return
	}
	z.ID = chi.URLParam(r, "id")
	if err := h.store.SaveZone(r.Context(), z); err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, z)
}

func (h *Tables) DeleteZone(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteZone(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
