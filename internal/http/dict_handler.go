package http

import (
	"context"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"mcpdictapi/internal/entity"
	"mcpdictapi/internal/httpx"
)

// idHeaderLabel is the first header cell; the frontend keys the id column on it.
const idHeaderLabel = "語言ID"

// DictStore is the read-only query surface the handlers need.
type DictStore interface {
	ListLanguages(ctx context.Context) ([]entity.Language, error)
	Readings(ctx context.Context, chars []string) (map[int64][]entity.ReadingCell, error)
}

// DictHandler serves the two query endpoints. The version string is
// loaded once at startup; the database never changes underneath a
// running process.
type DictHandler struct {
	store    DictStore
	version  string
	maxChars int
}

func NewDictHandler(store DictStore, version string, maxChars int) *DictHandler {
	return &DictHandler{store: store, version: version, maxChars: maxChars}
}

// ListLangs handles GET /list-langs/: every language variety as a
// fixed-order 14-field tuple, ordered by 語言ID.
func (h *DictHandler) ListLangs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	langs, err := h.store.ListLanguages(r.Context())
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "database_error", "failed to list languages", nil)
		return
	}

	// No partial lists: either the full set or the error above.
	if langs == nil {
		langs = []entity.Language{}
	}
	JSONResult(w, h.version, langs)
}

// Chars handles GET /chars/?chars=...: a sparse table of reading cells,
// one column per queried character (duplicates preserved positionally),
// one row per language with at least one known reading.
func (h *DictHandler) Chars(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	if !r.URL.Query().Has("chars") {
		httpx.JSONError(w, http.StatusBadRequest, "missing_parameter", "chars is required", nil)
		return
	}
	chars := splitChars(r.URL.Query().Get("chars"))
	if len(chars) == 0 {
		httpx.JSONError(w, http.StatusBadRequest, "missing_parameter", "chars must not be empty", nil)
		return
	}
	if len(chars) > h.maxChars {
		httpx.JSONError(w, http.StatusBadRequest, "too_many_chars",
			fmt.Sprintf("too many chars; max=%d", h.maxChars), nil)
		return
	}

	readings, err := h.store.Readings(r.Context(), chars)
	if err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "database_error", "failed to look up readings", nil)
		return
	}

	JSONResult(w, h.version, buildTable(chars, readings))
}

// splitChars breaks the query string into per-code-point lookups.
// Surrounding whitespace is stripped; each remaining rune is one column.
func splitChars(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	runes := []rune(raw)
	chars := make([]string, len(runes))
	for i, r := range runes {
		chars[i] = string(r)
	}
	return chars
}

// buildTable assembles the response table: a header row, then one row
// per language ordered by 語言ID ascending. Languages absent from the
// readings map never produce a row, so all-empty rows cannot occur.
func buildTable(chars []string, readings map[int64][]entity.ReadingCell) [][]any {
	header := make([]any, 0, len(chars)+1)
	header = append(header, idHeaderLabel)
	for _, ch := range chars {
		header = append(header, ch)
	}

	ids := make([]int64, 0, len(readings))
	for id := range readings {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	table := make([][]any, 0, len(ids)+1)
	table = append(table, header)
	for _, id := range ids {
		row := make([]any, 0, len(chars)+1)
		row = append(row, id)
		for _, cell := range readings[id] {
			row = append(row, cell)
		}
		table = append(table, row)
	}
	return table
}
