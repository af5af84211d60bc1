package handlers

import (
	"net/http"
	"time"

	"tableside/backend/internal/httpjson"
	"tableside/backend/internal/middleware"
	"tableside/backend/internal/models"
	"tableside/backend/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type Orders struct {
	store *store.Store
}

func NewOrders(st *store.Store) *Orders {
	return &Orders{store: st}
}

// List returns every order, newest first (ordering comes from the
// backend query).
func (h *Orders) List(w http.ResponseWriter, r *http.Request) {
	orders, err := h.store.LoadOrders(r.Context())
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, orders)
}

func (h *Orders) Create(w http.ResponseWriter, r *http.Request) {
	var o models.Order
	if err := httpjson.Read(r, &o); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid order payload")
		return
	}
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Timestamp.IsZero() {
		o.Timestamp = time.Now().UTC()
	}
	if o.Status == "" {
		o.Status = "open"
	}
	if au, ok := middleware.GetAuthUser(r.Context()); ok && o.ServerUID == "" {
		o.ServerUID = au.UID
	}
	if err := h.store.SaveOrder(r.Context(), o); err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusCreated, o)
}

func (h *Orders) Put(w http.ResponseWriter, r *http.Request) {
	var o models.Order
	if err := httpjson.Read(r, &o); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid order payload")
		return
	}
	o.ID = chi.URLParam(r, "id")
	if o.Timestamp.IsZero() {
		o.Timestamp = time.Now().UTC()
	}
	if err := h.store.SaveOrder(r.Context(), o); err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, o)
}

func (h *Orders) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteOrder(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
