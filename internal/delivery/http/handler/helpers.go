package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

// parseIDParam reads the {id} route variable as an unsigned integer.
func parseIDParam(r *http.Request) (uint, error) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}

// isJSONRequest reports whether the body should be decoded as JSON.
// Public form endpoints also accept classic urlencoded form posts.
func isJSONRequest(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Content-Type"), "application/json")
}
