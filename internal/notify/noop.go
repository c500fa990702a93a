package notify

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"

	domain "github.com/shrutirout/foxdeal/pkg/types"
)

// NoOpNotifier implements Notifier by logging discarded alerts. It is used
// when no notification backend is configured.
type NoOpNotifier struct {
	log *slog.Logger
}

// NewNoOpNotifier creates a notifier that discards alerts with a log message.
func NewNoOpNotifier(log *slog.Logger) *NoOpNotifier {
	return &NoOpNotifier{log: log}
}

// NotifyPriceDrop logs and discards the alert.
func (n *NoOpNotifier) NotifyPriceDrop(
	_ context.Context,
	recipient string,
	product domain.TrackedProduct,
	oldPrice, newPrice decimal.Decimal,
) error {
	n.log.Debug("notification discarded (no backend configured)",
		"recipient", recipient,
		"product", product.Name,
		"old_price", oldPrice.String(),
		"new_price", newPrice.String(),
	)
	return nil
}
