package api

import (
	"net/http"

	"storefront/internal/handler/httperr"
	"storefront/internal/handler/middleware"
	"storefront/internal/pkg/errs"
	"storefront/internal/usecase/queries"
	"storefront/internal/usecase/shared"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const idempotencyKeyHeader = "Idempotency-Key"

var errNoActor = errs.New("actor missing from context")

// uuidParam aborts with 400 when the path parameter is not a UUID.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.BadRequest(c, err, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// actor should only fail when a route forgot RequireAuth.
func actor(c *gin.Context) (shared.Actor, bool) {
	a, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoActor, "Internal server error", nil)
	}
	return a, ok
}

func pageArgs(cursor string, limit int) (*queries.Cursor, int) {
	var cur *queries.Cursor
	if cursor != "" {
		cur = &queries.Cursor{After: cursor}
	}
	return cur, queries.ValidateLimit(limit)
}

func nextCursor(next *queries.Cursor) string {
	if next == nil {
		return ""
	}
	return next.After
}

func idempotencyKey(c *gin.Context) (uuid.UUID, error) {
	raw := c.GetHeader(idempotencyKeyHeader)
	if raw == "" {
		return uuid.Nil, errs.ErrIdempotencyKeyRequired
	}
	key, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.Mark(errs.Wrap(err, "Idempotency-Key must be a UUID"), errs.ErrIdempotencyKeyRequired)
	}
	return key, nil
}
