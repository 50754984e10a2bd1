package model

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrPriceNotNumber = errors.New("price is not a number")

// Price is an optional money amount. The zero value is "not set".
type Price struct {
	amount decimal.Decimal
	set    bool
}

func NewPrice(amount decimal.Decimal) Price {
	return Price{amount: amount, set: true}
}

// ParsePrice parses user input. Blank input is "not set".
func ParsePrice(s string) (Price, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Price{}, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Price{}, fmt.Errorf("%w: %q", ErrPriceNotNumber, s)
	}

	return NewPrice(d), nil
}

// ParsePriceLenient decodes a raw JSON cell and treats anything that is not a
// number as "not set".
func ParsePriceLenient(raw json.RawMessage) Price {
	var p Price
	if err := p.UnmarshalJSON(raw); err != nil {
		return Price{}
	}
	return p
}

func (p Price) IsSet() bool {
	return p.set
}

// Amount returns the price, zero when not set.
func (p Price) Amount() decimal.Decimal {
	if !p.set {
		return decimal.Zero
	}
	return p.amount
}

func (p Price) IsNegative() bool {
	return p.set && p.amount.IsNegative()
}

func (p Price) String() string {
	if !p.set {
		return ""
	}
	return p.amount.String()
}

func (p Price) MarshalJSON() ([]byte, error) {
	if !p.set {
		return []byte("null"), nil
	}
	return []byte(p.amount.String()), nil
}

func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*p = Price{}
		return nil
	}

	s := string(data)
	if data[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrPriceNotNumber, s)
		}
		s = unquoted
	}

	parsed, err := ParsePrice(s)
	if err != nil {
		return err
	}

	*p = parsed
	return nil
}
