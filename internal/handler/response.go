package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/selectshop/selectshop-go/internal/repository"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}

// listParamsFromQuery parses page/size/sortBy/isAsc query parameters.
// The page parameter is 1-indexed on the wire and 0-indexed internally.
func listParamsFromQuery(r *http.Request) (repository.ListParams, bool) {
	params := repository.ListParams{
		Page:   0,
		Size:   10,
		SortBy: "id",
		Asc:    false,
	}

	if v := r.URL.Query().Get("page"); v != "" {
		page, err := strconv.Atoi(v)
		if err != nil || page < 1 {
			return params, false
		}
		params.Page = page - 1
	}

	if v := r.URL.Query().Get("size"); v != "" {
		size, err := strconv.Atoi(v)
		if err != nil || size < 1 || size > 100 {
			return params, false
		}
		params.Size = size
	}

	if v := r.URL.Query().Get("sortBy"); v != "" {
		params.SortBy = v
	}

	if v := r.URL.Query().Get("isAsc"); v != "" {
		asc, err := strconv.ParseBool(v)
		if err != nil {
			return params, false
		}
		params.Asc = asc
	}

	return params, true
}
