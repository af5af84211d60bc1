package handlers

import (
	"net/http"

	"tableside/backend/internal/httpjson"
	"tableside/backend/internal/models"
	"tableside/backend/internal/store"
)

// Admin serves first-time initialization and the configured/empty state
// probe the web client uses to decide whether to offer seeding.
type Admin struct {
	store *store.Store
}

func NewAdmin(st *store.Store) *Admin {
	return &Admin{store: st}
}

func (h *Admin) State(w http.ResponseWriter, r *http.Request) {
	empty, err := h.store.IsDatabaseEmpty(r.Context())
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]any{
		"configured": h.store.Enabled(),
		"empty":      empty,
	})
}

// Seed applies a full seed bundle atomically. It refuses to run against
// a database that already holds settings unless force=true, so a stray
// call cannot wipe a live install.
func (h *Admin) Seed(w http.ResponseWriter, r *http.Request) {
	var bundle models.SeedBundle
	if err := httpjson.Read(r, &bundle); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid seed bundle")
		return
	}

	if r.URL.Query().Get("force") != "true" {
		empty, err := h.store.IsDatabaseEmpty(r.Context())
		if err != nil {
			httpjson.Error(w, http.StatusInternalServerError, err.Error())
			return
		}
		if !empty {
			httpjson.Error(w, http.StatusConflict, "database already initialized")
			return
		}
	}

	if err := h.store.InitializeDatabase(r.Context(), bundle); err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]any{"seeded": true})
}

// Export dumps every collection as raw documents for backup.
func (h *Admin) Export(w http.ResponseWriter, r *http.Request) {
	dump, err := h.store.ExportCollections(r.Context())
	if err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, dump)
}

// Import restores a dump produced by Export, atomically.
func (h *Admin) Import(w http.ResponseWriter, r *http.Request) {
	var dump map[string][]map[string]any
	if err := httpjson.Read(r, &dump); err != nil {
		httpjson.Error(w, http.StatusBadRequest, "invalid dump payload")
		return
	}
	if err := h.store.ImportCollections(r.Context(), dump); err != nil {
		httpjson.Error(w, http.StatusInternalServerError, err.Error())
		return
	}
	httpjson.Write(w, http.StatusOK, map[string]any{"imported": true})
}
