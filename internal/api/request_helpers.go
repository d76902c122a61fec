package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/phrazzld/calc-api/internal/domain"
)

// getPathInt64 extracts a base-10 integer from the URL path parameters.
// A missing or malformed value yields an InvalidArgumentError.
func getPathInt64(r *http.Request, paramName string) (int64, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return 0, domain.NewInvalidArgumentError(paramName, paramName+" is required")
	}

	n, err := strconv.ParseInt(pathParam, 10, 64)
	if err != nil {
		return 0, domain.NewInvalidArgumentError(paramName, paramName+" must be an integer")
	}

	return n, nil
}
