package request

import "storefront/internal/domain/address"

type AddressRequest struct {
	FullName  string `json:"full_name" binding:"required,max=200"`
	Phone     string `json:"phone" binding:"required"`
	Line1     string `json:"line1" binding:"required,max=200"`
	Line2     string `json:"line2" binding:"max=200"`
	City      string `json:"city" binding:"required,max=100"`
	State     string `json:"state" binding:"required,max=100"`
	Pincode   string `json:"pincode" binding:"required"`
	IsDefault bool   `json:"is_default"`
}

func (r AddressRequest) ToParams() address.Params {
	return address.Params{
		FullName: r.FullName,
		Phone:    r.Phone,
		Line1:    r.Line1,
		Line2:    r.Line2,
		City:     r.City,
		State:    r.State,
		Pincode:  r.Pincode,
	}
}
