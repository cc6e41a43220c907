package utils

import (
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ObjectIDParam parses a hex ObjectID path parameter.
func ObjectIDParam(ps httprouter.Params, name string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(ps.ByName(name))
	if err != nil {
		return primitive.NilObjectID, InvalidOperationf("invalid %s", name)
	}
	return id, nil
}

// ParsePagination reads page/limit query params with defaults.
func ParsePagination(r *http.Request, defaultLimit, maxLimit int) (page, limit int) {
	q := r.URL.Query()

	page, _ = strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}

	limit, _ = strconv.Atoi(q.Get("limit"))
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return page, limit
}
