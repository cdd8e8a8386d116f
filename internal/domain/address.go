package domain

import "errors"

// Validation errors for Address fields.
var (
	ErrStreetTooLong     = errors.New("street must be at most 200 characters long")
	ErrCityTooLong       = errors.New("city must be at most 100 characters long")
	ErrProvinceTooLong   = errors.New("province must be at most 100 characters long")
	ErrEmptyCountry      = errors.New("country cannot be empty")
	ErrCountryTooLong    = errors.New("country must be at most 100 characters long")
	ErrEmptyPostalCode   = errors.New("postal_code cannot be empty")
	ErrPostalCodeTooLong = errors.New("postal_code must be at most 10 characters long")
)

// Address belongs to exactly one Contact. Access is authorized through the
// owner chain: Address -> Contact -> User.
type Address struct {
	ID         int64  `json:"id"`
	Street     string `json:"street"`
	City       string `json:"city"`
	Province   string `json:"province"`
	Country    string `json:"country"`
	PostalCode string `json:"postal_code"`
	ContactID  int64  `json:"-"`
}

// NewAddress creates an Address under the given contact.
func NewAddress(contactID int64, street, city, province, country, postalCode string) (*Address, error) {
	address := &Address{
		Street:     street,
		City:       city,
		Province:   province,
		Country:    country,
		PostalCode: postalCode,
		ContactID:  contactID,
	}

	if err := address.Validate(); err != nil {
		return nil, err
	}

	return address, nil
}

// Validate checks the Address's field constraints.
func (a *Address) Validate() error {
	if len(a.Street) > 200 {
		return ErrStreetTooLong
	}
	if len(a.City) > 100 {
		return ErrCityTooLong
	}
	if len(a.Province) > 100 {
		return ErrProvinceTooLong
	}
	if a.Country == "" {
		return ErrEmptyCountry
	}
	if len(a.Country) > 100 {
		return ErrCountryTooLong
	}
	if a.PostalCode == "" {
		return ErrEmptyPostalCode
	}
	if len(a.PostalCode) > 10 {
		return ErrPostalCodeTooLong
	}
	return nil
}
