package readstore

import (
	"storefront/internal/pkg/pgconv"
	"storefront/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgtype"
)

// afterParams maps an optional keyset onto the nullable (created_at, id) query arguments.
func afterParams(after *queries.Keyset) (pgtype.Timestamptz, pgtype.UUID) {
	if after == nil {
		return pgtype.Timestamptz{}, pgtype.UUID{}
	}
	return pgconv.TimeToPgtype(after.CreatedAt), pgconv.UUIDToPgtype(after.ID)
}
