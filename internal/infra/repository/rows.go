package repository

import (
	"storefront/internal/infra"

	"github.com/jackc/pgx/v5"
)

// expectAffected turns a zero-row update or delete into a NOT_FOUND error.
func expectAffected(rows int64, err error, what string) error {
	if err != nil {
		return infra.WrapRepoErr("failed to write "+what, err)
	}
	if rows == 0 {
		return infra.WrapRepoErr(what+" not found", pgx.ErrNoRows, infra.KindNotFound)
	}
	return nil
}
