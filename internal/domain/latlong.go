package domain

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// Separator splits the two components of the canonical form.
	Separator = ";"
	// Precision is the number of fractional digits kept by the canonical form
	// and used as the equality tolerance.
	Precision = 6
	// MaxLength bounds the canonical form in storage.
	MaxLength = 24
)

// LatLong is an immutable geographic point. Components keep whatever precision
// they were built with; rounding only happens when formatting or comparing.
type LatLong struct {
	Latitude  decimal.Decimal
	Longitude decimal.Decimal
}

func NewLatLong(latitude, longitude decimal.Decimal) LatLong {
	return LatLong{Latitude: latitude, Longitude: longitude}
}

func NewLatLongFromFloat(latitude, longitude float64) LatLong {
	return LatLong{
		Latitude:  decimal.NewFromFloat(latitude),
		Longitude: decimal.NewFromFloat(longitude),
	}
}

// NewLatLongFromStrings builds a point from two decimal strings.
func NewLatLongFromStrings(latitude, longitude string) (LatLong, error) {
	lat, err := parseComponent(latitude)
	if err != nil {
		return LatLong{}, err
	}
	lon, err := parseComponent(longitude)
	if err != nil {
		return LatLong{}, err
	}

	return LatLong{Latitude: lat, Longitude: lon}, nil
}

// Components must fit the canonical column; exponent notation is bounded
// before anything is rounded or expanded.
const minExponent = -64

var maxComponent = decimal.New(1, 17)

func parseComponent(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, &ParseError{Value: s, Err: ErrInvalidNumber}
	}
	if err := checkComponent(d, s); err != nil {
		return decimal.Decimal{}, err
	}
	return d, nil
}

func checkComponent(d decimal.Decimal, text string) error {
	if d.Exponent() > MaxLength || d.Exponent() < minExponent || d.Abs().GreaterThanOrEqual(maxComponent) {
		return &ParseError{Value: text, Err: ErrInvalidNumber}
	}
	return nil
}

// ParseLatLong reads the "{latitude};{longitude}" form.
func ParseLatLong(text string) (LatLong, error) {
	parts := strings.Split(text, Separator)
	if len(parts) != 2 {
		return LatLong{}, &ParseError{Value: text, Err: ErrInvalidSeparator}
	}

	ll, err := NewLatLongFromStrings(parts[0], parts[1])
	if err != nil {
		return LatLong{}, &ParseError{Value: text, Err: ErrInvalidNumber}
	}

	return ll, nil
}

// ParseLatLongOrDefault treats empty text as the zero point, the way stored
// and submitted blank values are read back.
func ParseLatLongOrDefault(text string) (LatLong, error) {
	if text == "" {
		return LatLong{}, nil
	}
	return ParseLatLong(text)
}

func round(d decimal.Decimal) decimal.Decimal {
	return d.RoundBank(Precision)
}

func format(d decimal.Decimal) string {
	return round(d).StringFixed(Precision)
}

func (l LatLong) FormatLatitude() string { return format(l.Latitude) }

func (l LatLong) FormatLongitude() string { return format(l.Longitude) }

// String returns the canonical storage form.
func (l LatLong) String() string {
	return l.FormatLatitude() + Separator + l.FormatLongitude()
}

func (l LatLong) GoString() string {
	return fmt.Sprintf("<LatLong: %s>", l.String())
}

// Equal compares both components rounded to Precision places.
func (l LatLong) Equal(other LatLong) bool {
	return round(l.Latitude).Equal(round(other.Latitude)) &&
		round(l.Longitude).Equal(round(other.Longitude))
}

func (l LatLong) NotEqual(other LatLong) bool {
	return !l.Equal(other)
}

func (l LatLong) IsZero() bool {
	return l.Latitude.IsZero() && l.Longitude.IsZero()
}

func (l LatLong) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *LatLong) UnmarshalText(b []byte) error {
	ll, err := ParseLatLongOrDefault(string(b))
	if err != nil {
		return err
	}
	*l = ll
	return nil
}

func (l LatLong) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON accepts the canonical string or a two element array.
func (l *LatLong) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '[' {
		var pair []decimal.Decimal
		if err := json.Unmarshal(b, &pair); err != nil {
			return &ParseError{Value: string(b), Err: ErrInvalidNumber}
		}
		if len(pair) != 2 {
			return &ParseError{Value: string(b), Err: ErrInvalidSeparator}
		}
		for _, d := range pair {
			if err := checkComponent(d, string(b)); err != nil {
				return err
			}
		}
		*l = NewLatLong(pair[0], pair[1])
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("unmarshal latlong: %w", err)
	}
	return l.UnmarshalText([]byte(s))
}

// Value implements driver.Valuer with the canonical form.
func (l LatLong) Value() (driver.Value, error) {
	s := l.String()
	if len(s) > MaxLength {
		return nil, NewErrorf(ErrValueTooLong, "latlong %q longer than %d characters", s, MaxLength)
	}
	return s, nil
}

// Scan implements sql.Scanner.
func (l *LatLong) Scan(src any) error {
	switch v := src.(type) {
	case string:
		return l.UnmarshalText([]byte(v))
	case []byte:
		return l.UnmarshalText(v)
	case nil:
		return fmt.Errorf("scan latlong: NULL into non-nullable value")
	default:
		return fmt.Errorf("scan latlong: unsupported source type %T", src)
	}
}

// NullLatLong is a LatLong that may be NULL in storage.
type NullLatLong struct {
	LatLong LatLong
	Valid   bool
}

func NewNullLatLong(l *LatLong) NullLatLong {
	if l == nil {
		return NullLatLong{}
	}
	return NullLatLong{LatLong: *l, Valid: true}
}

// Ptr returns nil for a NULL value.
func (n NullLatLong) Ptr() *LatLong {
	if !n.Valid {
		return nil
	}
	l := n.LatLong
	return &l
}

func (n NullLatLong) Value() (driver.Value, error) {
	if !n.Valid {
		return nil, nil
	}
	return n.LatLong.Value()
}

func (n *NullLatLong) Scan(src any) error {
	if src == nil {
		n.LatLong, n.Valid = LatLong{}, false
		return nil
	}
	if err := n.LatLong.Scan(src); err != nil {
		return err
	}
	n.Valid = true
	return nil
}
