package database

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// AccountType is the closed set of user roles.
type AccountType uint8

const (
	AccountTypeUnknown AccountType = iota
	AccountTypeDirector
	AccountTypeAdministrator
	AccountTypeAnalyst
)

// AccountTypes lists the valid values in display order.
var AccountTypes = []AccountType{AccountTypeDirector, AccountTypeAdministrator, AccountTypeAnalyst}

func (a AccountType) String() string {
	switch a {
	case AccountTypeDirector:
		return "director"
	case AccountTypeAdministrator:
		return "administrator"
	case AccountTypeAnalyst:
		return "analyst"
	default:
		return "unknown"
	}
}

// ParseAccountType accepts the English names and the Spanish ones used by
// the legacy records (directivo, administrador, analista).
func ParseAccountType(s string) (AccountType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "director", "directivo":
		return AccountTypeDirector, nil
	case "administrator", "administrador":
		return AccountTypeAdministrator, nil
	case "analyst", "analista":
		return AccountTypeAnalyst, nil
	default:
		return AccountTypeUnknown, fmt.Errorf("unknown account type %q", s)
	}
}

func (a AccountType) Valid() bool {
	switch a {
	case AccountTypeDirector, AccountTypeAdministrator, AccountTypeAnalyst:
		return true
	default:
		return false
	}
}

func (a AccountType) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

func (a *AccountType) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	v, err := ParseAccountType(s)
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// Value stores the account type by name.
func (a AccountType) Value() (driver.Value, error) {
	if !a.Valid() {
		return nil, fmt.Errorf("invalid account type %d", a)
	}
	return a.String(), nil
}

func (a *AccountType) Scan(src any) error {
	var s string
	switch v := src.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into AccountType", src)
	}
	parsed, err := ParseAccountType(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// DateLayout is the wire format of Date.
const DateLayout = "2006-01-02"

// Date is a calendar day, held at midnight UTC.
type Date struct {
	time.Time
}

// NewDate drops the clock part of t, keeping its calendar day.
func NewDate(t time.Time) Date {
	y, m, d := t.Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses YYYY-MM-DD.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}
	return NewDate(t), nil
}

// MustDate is ParseDate for literals; it panics on malformed input.
func MustDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Ptr returns a pointer to a copy of d.
func (d Date) Ptr() *Date { return &d }

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
	}
	*d = parsed
	return nil
}

// GormDataType maps Date to a DATE column on every dialect.
func (Date) GormDataType() string { return "date" }

// Value stores the day as YYYY-MM-DD text so ordering and equality agree
// across drivers.
func (d Date) Value() (driver.Value, error) {
	return d.String(), nil
}

var scanLayouts = []string{
	DateLayout,
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05",
}

func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*d = NewDate(v)
		return nil
	case string:
		return d.scanString(v)
	case []byte:
		return d.scanString(string(v))
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

func (d *Date) scanString(s string) error {
	for _, layout := range scanLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			*d = NewDate(t)
			return nil
		}
	}
	return fmt.Errorf("cannot parse %q as date", s)
}
