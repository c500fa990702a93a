package extract

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/shrutirout/foxdeal/pkg/money"
)

// Price is a JSON amount that tolerates numbers, numeric strings and
// formatted display strings.
type Price struct {
	Amount decimal.Decimal
	Valid  bool
}

// NewPrice wraps a known amount.
func NewPrice(d decimal.Decimal) Price {
	return Price{Amount: d, Valid: true}
}

// Ptr returns the amount, or nil when it was absent.
func (p Price) Ptr() *decimal.Decimal {
	if !p.Valid {
		return nil
	}
	d := p.Amount
	return &d
}

// UnmarshalJSON implements json.Unmarshaler. Unparseable strings leave
// the price absent rather than failing the whole document.
func (p *Price) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` {
		*p = Price{}
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return fmt.Errorf("decoding price: %w", err)
		}
		d, err := money.ParsePrice(str)
		if err != nil {
			*p = Price{}
			return nil
		}
		*p = NewPrice(d)
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return fmt.Errorf("decoding price %s: %w", s, err)
	}
	*p = NewPrice(d)
	return nil
}

// MarshalJSON implements json.Marshaler.
func (p Price) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	return []byte(p.Amount.String()), nil
}

// Count is a JSON integer that also accepts strings like "1,234 reviews".
type Count int

// UnmarshalJSON implements json.Unmarshaler.
func (c *Count) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if s == "null" || s == `""` {
		*c = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return fmt.Errorf("decoding count: %w", err)
		}
		n, err := money.ParseCount(str)
		if err != nil {
			*c = 0
			return nil
		}
		*c = Count(n)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("decoding count %s: %w", s, err)
	}
	*c = Count(max(int(f), 0))
	return nil
}

// Rating is a JSON 0-5 rating that also accepts strings like "4.3 out of 5".
type Rating float64

// UnmarshalJSON implements json.Unmarshaler.
func (r *Rating) UnmarshalJSON(b []byte) error {
	s := strings.TrimSpace(string(b))
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(b, &str); err != nil {
			return fmt.Errorf("decoding rating: %w", err)
		}
		f, err := money.ParseFloat(str)
		if err != nil {
			*r = 0
			return nil
		}
		*r = Rating(f)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("decoding rating %s: %w", s, err)
	}
	*r = Rating(f)
	return nil
}
