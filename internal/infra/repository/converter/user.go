package converter

import (
	"time"

	"storefront/internal/domain/user"
	"storefront/internal/infra/sqlc"
	"storefront/internal/pkg/pgconv"
)

func UserToCreateParams(u *user.User, now time.Time) sqlc.CreateUserParams {
	return sqlc.CreateUserParams{
		ID:           u.ID(),
		Email:        u.Email().Value(),
		FullName:     u.FullName().String(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		IsActive:     u.IsActive(),
		CreatedAt:    pgconv.TimeToPgtype(now),
	}
}

func UserFromRow(row sqlc.Users) *user.User {
	return user.Reconstruct(user.ReconstructParams{
		ID:           row.ID,
		Email:        row.Email,
		FullName:     row.FullName,
		PasswordHash: row.PasswordHash,
		Role:         user.Role(row.Role),
		LastLogin:    pgconv.TimePtrFromPgtype(row.LastLogin),
		IsActive:     row.IsActive,
		CreatedAt:    pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:    pgconv.TimeFromPgtype(row.UpdatedAt),
	})
}
