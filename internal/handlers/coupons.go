package handlers

import (
	"net/http"
	"strings"

	"tableside/backend/internal/httpjson"
	"tableside/backend/internal/models"
	"tableside/backend/internal/store"

	"github.com/go-chi/chi/v5"
)

type Coupons struct {
	store *store.Store
}

func NewCoupons(st *store.Store) *Coupons {
	return &Coupons{store: st}
}

func (h *Coupons) List(w http.ResponseWriter, r *http.Request) {
	coupons, err := h.store.LoadCoupons(r.Context())
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, coupons)
}

func (h *Coupons) Put(w http.ResponseWriter, r *http.Request) {
	var c models.Coupon
	if err := httpjson.Read(r, &c); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid coupon payload")
		return
	}
	c.ID = chi.URLParam(r, "id")
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	if c.Code == "" {
		httpjson.Error(w, http.StatusBadRequest, "coupon code is required")
		return
	}
	if c.Type != "percent" && c.Type != "fixed" {
		httpjson.Error(w, http.StatusBadRequest, "coupon type must be percent or fixed")
		return
	}
	if err := h.store.SaveCoupon(r.Context(), c); err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, c)
}

func (h *Coupons) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteCoupon(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
