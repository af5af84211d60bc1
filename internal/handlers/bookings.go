package handlers

import (
	"net/http"

	"tableside/backend/internal/httpjson"
	"tableside/backend/internal/models"
	"tableside/backend/internal/store"
	"tableside/backend/internal/utils"

	"github.com/go-chi/chi/v5"
)

type Bookings struct {
	store *store.Store
}

func NewBookings(st *store.Store) *Bookings {
	return &Bookings{store: st}
}

func (h *Bookings) List(w http.ResponseWriter, r *http.Request) {
	if date := r.URL.Query().Get("date"); date != "" {
		bookings, err := h.store.LoadBookingsForDate(r.Context(), date)
		if err != nil {
			httpjson.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		httpjson.Write(w, http.StatusOK, bookings)
		return
	}

	bookings, err := h.store.LoadBookings(r.Context())
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, bookings)
}

func (h *Bookings) Put(w http.ResponseWriter, r *http.Request) {
	var b models.Booking
	if err := httpjson.Read(r, &b); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid booking payload")
		return
	}
	b.ID = chi.URLParam(r, "id")
	if b.Time != "" {
		if _, _, err := utils.ParseClock(b.Time); err != nil {
			httpjson.Error(w, http.StatusBadRequest, "booking time must be HH:MM")
			return
		}
	}
	if b.Status == "" {
		b.Status = "pending"
	}
	if err := h.store.SaveBooking(r.Context(), b); err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, b)
}

func (h *Bookings) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteBooking(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
