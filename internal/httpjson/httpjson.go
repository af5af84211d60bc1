// Package httpjson has the small JSON read/write helpers every handler
// uses.
package httpjson

import (
	"encoding/json"
	"net/http"
)

// maxBody caps request bodies; no POS payload comes close.
const maxBody = 1 << 20

func Write(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func Read(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, maxBody))
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

func Error(w http.ResponseWriter, status int, msg string) {
	Write(w, status, map[string]interface{}{"error": msg})
}
