package models

import (
	"errors"
	"fmt"

	"networth-tracker/internal/common/validation"
	"networth-tracker/internal/features/currency"
)

// Gender of the user. The zero value means not selected.
type Gender string

const (
	GenderUnset  Gender = ""
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale || g == GenderOther
}

// Countries selectable in the profile form.
var Countries = []string{
	"United States",
	"United Kingdom",
	"Canada",
	"Australia",
	"Germany",
	"France",
	"Japan",
	"India",
	"China",
	"Brazil",
	"Mexico",
	"South Africa",
	"Russia",
	"Italy",
	"Spain",
}

func IsSupportedCountry(country string) bool {
	return validation.OneOf(country, Countries...)
}

// UserRecord is the authenticated user's profile. Age 0 means unset.
// @Description Authenticated user profile
type UserRecord struct {
	ID          string `json:"id" example:"user_1718000000000"`
	Email       string `json:"email" example:"a@b.com"`
	Name        string `json:"name" example:"Jane"`
	Gender      Gender `json:"gender" example:"female" enums:"male,female,other"`
	Age         int    `json:"age" example:"30"`
	Country     string `json:"country" example:"Canada"`
	Currency    string `json:"currency" example:"CAD"`
	IsOnboarded bool   `json:"isOnboarded" example:"true"`
}

var (
	ErrMissingIdentity = errors.New("user record: id and email are required")
	ErrNotOnboarded    = errors.New("user record: not onboarded")
)

// ValidateIdentity checks the fields every existing record must carry.
func (u *UserRecord) ValidateIdentity() error {
	if u.ID == "" || u.Email == "" {
		return ErrMissingIdentity
	}
	return nil
}

// ValidateOnboarded checks that u is a complete, onboarded record, the only
// shape that may be persisted.
func (u *UserRecord) ValidateOnboarded() error {
	if err := u.ValidateIdentity(); err != nil {
		return err
	}
	if !u.IsOnboarded {
		return ErrNotOnboarded
	}
	if validation.IsBlank(u.Name) {
		return fmt.Errorf("user record: empty name")
	}
	if !u.Gender.Valid() {
		return fmt.Errorf("user record: invalid gender %q", u.Gender)
	}
	if !validation.IsValidAge(u.Age) {
		return fmt.Errorf("user record: age %d out of range", u.Age)
	}
	if !IsSupportedCountry(u.Country) {
		return fmt.Errorf("user record: unsupported country %q", u.Country)
	}
	if !currency.IsSupported(u.Currency) {
		return fmt.Errorf("user record: unsupported currency %q", u.Currency)
	}
	return nil
}

// Clone returns a copy of u, or nil for nil.
func (u *UserRecord) Clone() *UserRecord {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// State is the derived view of a session.
// @Description Session state derived from the current user
type State struct {
	IsAuthenticated bool        `json:"isAuthenticated"`
	IsOnboarded     bool        `json:"isOnboarded"`
	User            *UserRecord `json:"user"`
	CurrencySymbol  string      `json:"currencySymbol" example:"$"`
}
