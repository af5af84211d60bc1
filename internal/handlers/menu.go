package handlers

import (
	"net/http"

	"tableside/backend/internal/httpjson"
	"tableside/backend/internal/models"
	"tableside/backend/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// Menu serves the menu items and their categories.
type Menu struct {
	store *store.Store
}

func NewMenu(st *store.Store) *Menu {
	return &Menu{store: st}
}

func (h *Menu) List(w http.ResponseWriter, r *http.Request) {
	if q := r.URL.Query().Get("query"); q != "" {
		items, err := h.store.SearchMenu(r.Context(), q, 0)
		if err != nil {
			httpjson.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpjson.Write(w, http.StatusOK, items)
		return
	}

	items, err := h.store.LoadMenu(r.Context())
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, items)
}

func (h *Menu) Create(w http.ResponseWriter, r *http.Request) {
	var item models.MenuItem
	if err := httpjson.Read(r, &item); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid menu item payload")
		return
	}
	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if err := h.store.SaveMenuItem(r.Context(), item); err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusCreated, item)
}

func (h *Menu) Put(w http.ResponseWriter, r *http.Request) {
	var item models.MenuItem
	if err := httpjson.Read(r, &item); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid menu item payload")
		return
	}
	item.ID = chi.URLParam(r, "id")
	if err := h.store.SaveMenuItem(r.Context(), item); err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, item)
}

func (h *Menu) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteMenuItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Menu) ListCategories(w http.ResponseWriter, r *http.Request) {
	cats, err := h.store.LoadCategories(r.Context())
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, cats)
}

func (h *Menu) PutCategory(w http.ResponseWriter, r *http.Request) {
	var cat models.Category
	if err := httpjson.Read(r, &cat); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid category payload")
		return
	}
	cat.ID = chi.URLParam(r, "id")
	if err := h.store.SaveCategory(r.Context(), cat); err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, cat)
}

func (h *Menu) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
