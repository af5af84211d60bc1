package handlers

import (
	"net/http"

	"tableside/backend/internal/httpjson"
	"tableside/backend/internal/models"
	"tableside/backend/internal/store"

	"github.com/go-chi/chi/v5"
)

type Inventory struct {
	store *store.Store
}

func NewInventory(st *store.Store) *Inventory {
	return &Inventory{store: st}
}

func (h *Inventory) List(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("low") == "true" {
		items, err := h.store.LoadLowStock(r.Context())
		if err != nil {
			httpjson.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpjson.Write(w, http.StatusOK, items)
		return
	}

	items, err := h.store.LoadInventory(r.Context())
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, items)
}

func (h *Inventory) Put(w http.ResponseWriter, r *http.Request) {
	var item models.InventoryItem
	if err := httpjson.Read(r, &item); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid inventory payload")
		return
	}
	item.ID = chi.URLParam(r, "id")
	if err := h.store.SaveInventoryItem(r.Context(), item); err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, item)
}

func (h *Inventory) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteInventoryItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
