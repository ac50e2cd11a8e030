package sqlc

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const addressColumns = `id, user_id, full_name, phone, line1, line2, city, state, pincode, is_default, created_at, updated_at`

const createAddress = `-- name: CreateAddress :exec
INSERT INTO addresses (id, user_id, full_name, phone, line1, line2, city, state, pincode, is_default, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
`

type CreateAddressParams struct {
	ID        uuid.UUID          `json:"id"`
	UserID    uuid.UUID          `json:"user_id"`
	FullName  string             `json:"full_name"`
	Phone     string             `json:"phone"`
	Line1     string             `json:"line1"`
	Line2     string             `json:"line2"`
	City      string             `json:"city"`
	State     string             `json:"state"`
	Pincode   string             `json:"pincode"`
	IsDefault bool               `json:"is_default"`
	CreatedAt pgtype.Timestamptz `json:"created_at"`
}

func (q *Queries) CreateAddress(ctx context.Context, db DBTX, arg CreateAddressParams) error {
	_, err := db.Exec(ctx, createAddress,
		arg.ID,
		arg.UserID,
		arg.FullName,
		arg.Phone,
		arg.Line1,
		arg.Line2,
		arg.City,
		arg.State,
		arg.Pincode,
		arg.IsDefault,
		arg.CreatedAt,
	)
	return err
}

const updateAddress = `-- name: UpdateAddress :execrows
UPDATE addresses
SET full_name = $3, phone = $4, line1 = $5, line2 = $6, city = $7, state = $8, pincode = $9, updated_at = $10
WHERE id = $1 AND user_id = $2
`

type UpdateAddressParams struct {
	ID        uuid.UUID          `json:"id"`
	UserID    uuid.UUID          `json:"user_id"`
	FullName  string             `json:"full_name"`
	Phone     string             `json:"phone"`
	Line1     string             `json:"line1"`
	Line2     string             `json:"line2"`
	City      string             `json:"city"`
	State     string             `json:"state"`
	Pincode   string             `json:"pincode"`
	UpdatedAt pgtype.Timestamptz `json:"updated_at"`
}

func (q *Queries) UpdateAddress(ctx context.Context, db DBTX, arg UpdateAddressParams) (int64, error) {
	result, err := db.Exec(ctx, updateAddress,
		arg.ID,
		arg.UserID,
		arg.FullName,
		arg.Phone,
		arg.Line1,
		arg.Line2,
		arg.City,
		arg.State,
		arg.Pincode,
		arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const deleteAddress = `-- name: DeleteAddress :execrows
DELETE FROM addresses WHERE id = $1 AND user_id = $2
`

type DeleteAddressParams struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
}

func (q *Queries) DeleteAddress(ctx context.Context, db DBTX, arg DeleteAddressParams) (int64, error) {
	result, err := db.Exec(ctx, deleteAddress, arg.ID, arg.UserID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const findAddressByID = `-- name: FindAddressByID :one
SELECT ` + addressColumns + ` FROM addresses WHERE id = $1
`

func (q *Queries) FindAddressByID(ctx context.Context, db DBTX, id uuid.UUID) (Addresses, error) {
	row := db.QueryRow(ctx, findAddressByID, id)
	var i Addresses
	err := scanAddress(row, &i)
	return i, err
}

const listAddressesByUser = `-- name: ListAddressesByUser :many
SELECT ` + addressColumns + ` FROM addresses
WHERE user_id = $1
ORDER BY is_default DESC, created_at DESC
`

func (q *Queries) ListAddressesByUser(ctx context.Context, db DBTX, userID uuid.UUID) ([]Addresses, error) {
	rows, err := db.Query(ctx, listAddressesByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Addresses
	for rows.Next() {
		var i Addresses
		if err := scanAddress(rows, &i); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const countAddressesByUser = `-- name: CountAddressesByUser :one
SELECT count(*) FROM addresses WHERE user_id = $1
`

func (q *Queries) CountAddressesByUser(ctx context.Context, db DBTX, userID uuid.UUID) (int64, error) {
	row := db.QueryRow(ctx, countAddressesByUser, userID)
	var count int64
	err := row.Scan(&count)
	return count, err
}

const clearDefaultAddress = `-- name: ClearDefaultAddress :exec
UPDATE addresses SET is_default = false, updated_at = now() WHERE user_id = $1 AND is_default
`

func (q *Queries) ClearDefaultAddress(ctx context.Context, db DBTX, userID uuid.UUID) error {
	_, err := db.Exec(ctx, clearDefaultAddress, userID)
	return err
}

const setDefaultAddress = `-- name: SetDefaultAddress :execrows
UPDATE addresses SET is_default = true, updated_at = now() WHERE id = $1 AND user_id = $2
`

type SetDefaultAddressParams struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"user_id"`
}

func (q *Queries) SetDefaultAddress(ctx context.Context, db DBTX, arg SetDefaultAddressParams) (int64, error) {
	result, err := db.Exec(ctx, setDefaultAddress, arg.ID, arg.UserID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected(), nil
}

const promoteLatestAddress = `-- name: PromoteLatestAddress :exec
UPDATE addresses SET is_default = true, updated_at = now()
WHERE id = (
    SELECT a.id FROM addresses a WHERE a.user_id = $1 ORDER BY a.created_at DESC LIMIT 1
)
AND NOT EXISTS (SELECT 1 FROM addresses d WHERE d.user_id = $1 AND d.is_default)
`

func (q *Queries) PromoteLatestAddress(ctx context.Context, db DBTX, userID uuid.UUID) error {
	_, err := db.Exec(ctx, promoteLatestAddress, userID)
	return err
}

func scanAddress(row interface{ Scan(...any) error }, i *Addresses) error {
	return row.Scan(
		&i.ID,
		&i.UserID,
		&i.FullName,
		&i.Phone,
		&i.Line1,
		&i.Line2,
		&i.City,
		&i.State,
		&i.Pincode,
		&i.IsDefault,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
}
