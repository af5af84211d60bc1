package handlers

import (
	"net/http"

	"tableside/backend/internal/httpjson"
	"tableside/backend/internal/models"
	"tableside/backend/internal/store"

	"github.com/go-chi/chi/v5"
)

// Staff serves users and roles. User ids double as Firebase Auth UIDs
// in live deployments, so Put keeps whatever id the path carries.
type Staff struct {
	store *store.Store
}

func NewStaff(st *store.Store) *Staff {
	return &Staff{store: st}
}

func (h *Staff) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.store.LoadUsers(r.Context())
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, users)
}

func (h *Staff) PutUser(w http.ResponseWriter, r *http.Request) {
	var u models.User
	if err := httpjson.Read(r, &u); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid user payload")
		return
	}
	u.ID = chi.URLParam(r, "id")
	if err := h.store.SaveUser(r.Context(), u); err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, u)
}

func (h *Staff) DeleteUser(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteUser(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Staff) ListRoles(w http.ResponseWriter, r *http.Request) {
	roles, err := h.store.LoadRoles(r.Context())
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, roles)
}

func (h *Staff) PutRole(w http.ResponseWriter, r *http.Request) {
	var role models.Role
	if err := httpjson.Read(r, &role); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid role payload")
		return
	}
	role.ID = chi.URLParam(r, "id")
	if err := h.store.SaveRole(r.Context(), role); err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, role)
}

func (h *Staff) DeleteRole(w http.ResponseWriter, r *http.Request) {
	if err := h.store.DeleteRole(r.Context(), chi.URLParam(r, "id")); err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
