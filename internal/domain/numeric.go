package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// maxLooseMagnitude bounds coerced values so they always fit an int
const maxLooseMagnitude = 1 << 53

// looseScalar extracts the textual form of a JSON number or string.
func looseScalar(raw []byte) (string, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return "", false
	}

	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return "", false
		}
		s = strings.TrimSpace(s)
		return s, s != ""
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		return string(raw), true
	default:
		return "", false
	}
}

// ParseLooseInt interprets a raw JSON value as an integer. JSON numbers,
// numeric strings and scientific notation are accepted; fractions truncate.
func ParseLooseInt(raw []byte) (int, bool) {
	s, ok := looseScalar(raw)
	if !ok {
		return 0, false
	}

	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		if n > maxLooseMagnitude || n < -maxLooseMagnitude {
			return 0, false
		}
		return int(n), true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f > maxLooseMagnitude || f < -maxLooseMagnitude {
		return 0, false
	}
	return int(math.Trunc(f)), true
}

// ParsePrice interprets a raw JSON value as a non-negative price.
// Thousands separators written as commas are stripped ("1,250" is 1250).
func ParsePrice(raw []byte) (Price, bool) {
	s, ok := looseScalar(raw)
	if !ok {
		return 0, false
	}
	s = strings.ReplaceAll(s, ",", "")

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		return 0, false
	}

	cents := math.Round(f * 100)
	if cents > maxLooseMagnitude {
		return 0, false
	}
	return Price(cents), true
}

// Quantity is the size of an item stack. Decoding never fails: values that
// drifted in storage (strings, exponents, fractions) are coerced, and
// anything below one or uninterpretable becomes DefaultQuantity.
type Quantity int

// MaxQuantity is the largest stack size; sums saturate here.
const MaxQuantity Quantity = maxLooseMagnitude

func (q *Quantity) UnmarshalJSON(data []byte) error {
	n, ok := ParseLooseInt(data)
	if !ok {
		*q = DefaultQuantity
		return nil
	}
	*q = Quantity(n).Normalize()
	return nil
}

// Normalize brings a stored quantity back into [1, MaxQuantity]. A stack
// only exists while it holds at least one item, so a missing, zero or
// negative value is read as DefaultQuantity.
func (q Quantity) Normalize() Quantity {
	switch {
	case q < 1:
		return DefaultQuantity
	case q > MaxQuantity:
		return MaxQuantity
	}
	return q
}

// Plus adds n to q, saturating at MaxQuantity
func (q Quantity) Plus(n Quantity) Quantity {
	if n > MaxQuantity-q {
		return MaxQuantity
	}
	return q + n
}

// Price is a non-negative amount in minor units (cents). It travels as a
// JSON number in major units, e.g. 1250 cents is written as 12.5.
type Price int64

// PriceFromCents builds a Price, clamping negatives to zero
func PriceFromCents(cents int64) Price {
	if cents < 0 {
		return 0
	}
	return Price(cents)
}

func (p Price) String() string {
	return strconv.FormatFloat(float64(p)/100, 'f', 2, 64)
}

func (p Price) MarshalJSON() ([]byte, error) {
	return []byte(strconv.FormatFloat(float64(p)/100, 'f', -1, 64)), nil
}

func (p *Price) UnmarshalJSON(data []byte) error {
	parsed, ok := ParsePrice(data)
	if !ok {
		*p = 0
		return nil
	}
	*p = parsed
	return nil
}

// LooseNumber keeps a request number exactly as sent so each operation can
// apply its own coercion and default.
type LooseNumber struct {
	raw json.RawMessage
}

// NewLooseNumber wraps any JSON-encodable value
func NewLooseNumber(v any) *LooseNumber {
	raw, err := json.Marshal(v)
	if err != nil {
		return &LooseNumber{}
	}
	return &LooseNumber{raw: raw}
}

func (n *LooseNumber) UnmarshalJSON(data []byte) error {
	n.raw = append(json.RawMessage(nil), data...)
	return nil
}

func (n LooseNumber) MarshalJSON() ([]byte, error) {
	if len(n.raw) == 0 {
		return []byte("null"), nil
	}
	return n.raw, nil
}

// Int coerces the value to an integer; ok is false when absent or invalid.
func (n *LooseNumber) Int() (int, bool) {
	if n == nil {
		return 0, false
	}
	return ParseLooseInt(n.raw)
}

// Price coerces the value to a price; ok is false when absent or invalid.
func (n *LooseNumber) Price() (Price, bool) {
	if n == nil {
		return 0, false
	}
	return ParsePrice(n.raw)
}

// Identifier is an opaque bot or user id. Chat integrations send them as
// strings or bare numbers; both decode to the same text.
type Identifier string

func (id *Identifier) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}
	s, ok := looseScalar(data)
	if !ok {
		return fmt.Errorf("invalid identifier %s", data)
	}
	*id = Identifier(s)
	return nil
}

func (id Identifier) String() string {
	return string(id)
}
