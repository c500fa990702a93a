// Package notify delivers price drop alerts.
package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	domain "github.com/shrutirout/foxdeal/pkg/types"
)

// Notifier sends a price drop alert for a tracked product to recipient.
// Recipient is the product owner's ID unless a backend maps it otherwise.
type Notifier interface {
	NotifyPriceDrop(
		ctx context.Context,
		recipient string,
		product domain.TrackedProduct,
		oldPrice, newPrice decimal.Decimal,
	) error
}

// DropPercent returns how far newPrice fell below oldPrice, in percent
// rounded to one decimal. It is zero when oldPrice is not positive.
func DropPercent(oldPrice, newPrice decimal.Decimal) float64 {
	if !oldPrice.IsPositive() {
		return 0
	}
	pct, _ := oldPrice.Sub(newPrice).Div(oldPrice).Mul(decimal.NewFromInt(100)).Round(1).Float64()
	return pct
}

// FormatPrice renders an amount with its currency symbol.
func FormatPrice(amount decimal.Decimal, currency string) string {
	s := amount.StringFixed(2)
	if amount.Equal(amount.Truncate(0)) {
		s = amount.Truncate(0).String()
	}
	switch currency {
	case "", "INR":
		return "₹" + s
	case "USD":
		return "$" + s
	case "EUR":
		return "€" + s
	case "GBP":
		return "£" + s
	default:
		return s + " " + currency
	}
}

// Multi fans an alert out to several notifiers. Every notifier is tried;
// failures are joined.
type Multi []Notifier

// NotifyPriceDrop implements Notifier.
func (m Multi) NotifyPriceDrop(
	ctx context.Context,
	recipient string,
	product domain.TrackedProduct,
	oldPrice, newPrice decimal.Decimal,
) error {
	var errs []error
	for _, n := range m {
		if err := n.NotifyPriceDrop(ctx, recipient, product, oldPrice, newPrice); err != nil {
			errs = append(errs, fmt.Errorf("%T: %w", n, err))
		}
	}
	return errors.Join(errs...)
}
