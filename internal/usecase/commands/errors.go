package commands

import (
	"storefront/internal/infra"
	"storefront/internal/pkg/errs"
)

var (
	ErrDatabaseOperationFailed = errs.NewCategorized("database operation failed", errs.ErrDatabaseOperation)

	ErrCategoryNotFound  = errs.NewCategorized("category not found", errs.ErrNotFound)
	ErrProductNotFound   = errs.NewCategorized("product not found", errs.ErrNotFound)
	ErrBundleNotFound    = errs.NewCategorized("bundle not found", errs.ErrNotFound)
	ErrOrderNotFound     = errs.NewCategorized("order not found", errs.ErrNotFound)
	ErrHeroNotFound      = errs.NewCategorized("hero image not found", errs.ErrNotFound)
	ErrBroadcastNotFound = errs.NewCategorized("broadcast not found", errs.ErrNotFound)

	ErrSlugTaken         = errs.NewCategorized("slug already in use", errs.ErrConflict)
	ErrCouponCodeTaken   = errs.NewCategorized("coupon code already exists", errs.ErrConflict)
	ErrStillReferenced   = errs.NewCategorized("record is still referenced", errs.ErrConflict)
	ErrInsufficientStock = errs.NewCategorized("stock cannot go below zero", errs.ErrConflict)
)

// repoErr maps a repository failure onto a usecase sentinel. Errors that
// are not repository errors (domain rules) pass through untouched.
func repoErr(err error, notFound error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound) && notFound != nil:
		return notFound
	case infra.IsKind(err, infra.KindForeignKeyViolated):
		return errs.WithCause(ErrStillReferenced, err)
	case isRepoErr(err):
		return errs.Mark(err, ErrDatabaseOperationFailed)
	default:
		return err
	}
}

func isRepoErr(err error) bool {
	var re infra.RepositoryError
	return errs.As(err, &re)
}
