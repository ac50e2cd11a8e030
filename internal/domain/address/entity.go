package address

import (
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"storefront/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidPincode  = errs.NewCategorized("pincode must be 6 digits and cannot start with 0", errs.ErrValidation)
	ErrInvalidPhone    = errs.NewCategorized("phone must be a 10 digit mobile number", errs.ErrValidation)
	ErrMissingField    = errs.NewCategorized("name, address line 1, city and state are required", errs.ErrValidation)
	ErrFieldTooLong    = errs.NewCategorized("address field too long", errs.ErrValidation)
	ErrAddressNotFound = errs.NewCategorized("address not found", errs.ErrNotFound)
)

var (
	pincodeRegex = regexp.MustCompile(`^[1-9][0-9]{5}$`)
	phoneRegex   = regexp.MustCompile(`^[6-9][0-9]{9}$`)
)

const maxFieldLength = 200

type Params struct {
	FullName string
	Phone    string
	Line1    string
	Line2    string
	City     string
	State    string
	Pincode  string
}

type Address struct {
	id        uuid.UUID
	userID    uuid.UUID
	fullName  string
	phone     string
	line1     string
	line2     string
	city      string
	state     string
	pincode   string
	isDefault bool
	createdAt time.Time
	updatedAt time.Time
}

func NewAddress(userID uuid.UUID, p Params, isDefault bool, now time.Time) (*Address, error) {
	a := &Address{id: uuid.New(), userID: userID, isDefault: isDefault, createdAt: now}
	if err := a.apply(p, now); err != nil {
		return nil, err
	}
	return a, nil
}

func Reconstruct(id, userID uuid.UUID, p Params, isDefault bool, createdAt, updatedAt time.Time) *Address {
	return &Address{
		id:        id,
		userID:    userID,
		fullName:  p.FullName,
		phone:     p.Phone,
		line1:     p.Line1,
		line2:     p.Line2,
		city:      p.City,
		state:     p.State,
		pincode:   p.Pincode,
		isDefault: isDefault,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (a *Address) Update(p Params, now time.Time) error {
	next := *a
	if err := next.apply(p, now); err != nil {
		return err
	}
	*a = next
	return nil
}

func (a *Address) apply(p Params, now time.Time) error {
	name := strings.TrimSpace(p.FullName)
	line1 := strings.TrimSpace(p.Line1)
	city := strings.TrimSpace(p.City)
	state := strings.TrimSpace(p.State)
	if name == "" || line1 == "" || city == "" || state == "" {
		return ErrMissingField
	}
	line2 := strings.TrimSpace(p.Line2)
	for _, f := range []string{name, line1, line2, city, state} {
		if utf8.RuneCountInString(f) > maxFieldLength {
			return ErrFieldTooLong
		}
	}

	pincode, err := NormalizePincode(p.Pincode)
	if err != nil {
		return err
	}
	phone, err := NormalizePhone(p.Phone)
	if err != nil {
		return err
	}

	a.fullName = name
	a.phone = phone
	a.line1 = line1
	a.line2 = line2
	a.city = city
	a.state = state
	a.pincode = pincode
	a.updatedAt = now
	return nil
}

func NormalizePincode(s string) (string, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if !pincodeRegex.MatchString(s) {
		return "", ErrInvalidPincode
	}
	return s, nil
}

// NormalizePhone strips separators and an optional +91 or 0 prefix.
func NormalizePhone(s string) (string, error) {
	s = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "").Replace(strings.TrimSpace(s))
	switch {
	case strings.HasPrefix(s, "+91"):
		s = s[3:]
	case len(s) == 12 && strings.HasPrefix(s, "91"):
		s = s[2:]
	case len(s) == 11 && strings.HasPrefix(s, "0"):
		s = s[1:]
	}
	if !phoneRegex.MatchString(s) {
		return "", ErrInvalidPhone
	}
	return s, nil
}

func (a *Address) SetDefault(isDefault bool, now time.Time) {
	a.isDefault = isDefault
	a.updatedAt = now
}

func (a *Address) IsOwnedBy(userID uuid.UUID) bool {
	return a.userID == userID
}

func (a *Address) ID() uuid.UUID        { return a.id }
func (a *Address) UserID() uuid.UUID    { return a.userID }
func (a *Address) FullName() string     { return a.fullName }
func (a *Address) Phone() string        { return a.phone }
func (a *Address) Line1() string        { return a.line1 }
func (a *Address) Line2() string        { return a.line2 }
func (a *Address) City() string         { return a.city }
func (a *Address) State() string        { return a.state }
func (a *Address) Pincode() string      { return a.pincode }
func (a *Address) IsDefault() bool      { return a.isDefault }
func (a *Address) CreatedAt() time.Time { return a.createdAt }
func (a *Address) UpdatedAt() time.Time { return a.updatedAt }
