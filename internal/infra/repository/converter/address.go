package converter

import (
	"storefront/internal/domain/address"
	"storefront/internal/infra/sqlc"
	"storefront/internal/pkg/pgconv"
)

func AddressToCreateParams(a *address.Address) sqlc.CreateAddressParams {
	return sqlc.CreateAddressParams{
		ID:        a.ID(),
		UserID:    a.UserID(),
		FullName:  a.FullName(),
		Phone:     a.Phone(),
		Line1:     a.Line1(),
		Line2:     a.Line2(),
		City:      a.City(),
		State:     a.State(),
		Pincode:   a.Pincode(),
		IsDefault: a.IsDefault(),
		CreatedAt: pgconv.TimeToPgtype(a.CreatedAt()),
	}
}

func AddressToUpdateParams(a *address.Address) sqlc.UpdateAddressParams {
	return sqlc.UpdateAddressParams{
		ID:        a.ID(),
		UserID:    a.UserID(),
		FullName:  a.FullName(),
		Phone:     a.Phone(),
		Line1:     a.Line1(),
		Line2:     a.Line2(),
		City:      a.City(),
		State:     a.State(),
		Pincode:   a.Pincode(),
		UpdatedAt: pgconv.TimeToPgtype(a.UpdatedAt()),
	}
}

func AddressFromRow(row sqlc.Addresses) *address.Address {
	return address.Reconstruct(row.ID, row.UserID, address.Params{
		FullName: row.FullName,
		Phone:    row.Phone,
		Line1:    row.Line1,
		Line2:    row.Line2,
		City:     row.City,
		State:    row.State,
		Pincode:  row.Pincode,
	}, row.IsDefault, pgconv.TimeFromPgtype(row.CreatedAt), pgconv.TimeFromPgtype(row.UpdatedAt))
}
