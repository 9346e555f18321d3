package http

import (
	"encoding/json"
	"net/http"
)

// Result is the response envelope shared by both query endpoints: the
// build version stamped into the database plus the tabular payload.
type Result struct {
	Version string `json:"version"`
	Data    any    `json:"data"`
}

// JSONResult writes the version/data envelope. HTML escaping is off so
// CJK and annotation markup go out verbatim.
func JSONResult(w http.ResponseWriter, version string, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(Result{Version: version, Data: data})
}
