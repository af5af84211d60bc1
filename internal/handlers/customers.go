package handlers

import (
	"net/http"

	"tableside/backend/internal/httpjson"
	"tableside/backend/internal/models"
	"tableside/backend/internal/store"

	"github.com/go-chi/chi/v5"
)

type Customers struct {
	store *store.Store
}

func NewCustomers(st *store.Store) *Customers {
	return &Customers{store: st}
}

func (h *Customers) List(w http.ResponseWriter, r *http.Request) {
	if q := r.URL.Query().Get("query"); q != "" {
		customers, err := h.store.SearchCustomers(r.Context(), q, 0)
		if err != nil {
			httpjson.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpjson.Write(w, http.StatusOK, customers)
		return
	}

	customers, err := h.store.LoadCustomers(r.Context())
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, customers)
}

func (h *Customers) Put(w http.ResponseWriter, r *http.Request) {
	var c models.Customer
	if err := httpjson.Read(r, &c); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid customer payload")
		return
	}
	c.ID = chi.URLParam(r, "id")
	if err := h.store.SaveCustomer(r.Context(), c); err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, c)
}

func (h *Customers) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteCustomer(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
