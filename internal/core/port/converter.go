package port

import "context"

// CurrencyConverter converts a monetary amount between currencies. The
// conversion math lives outside the core; updates only call it when an
// advertisement's currency changes.
type CurrencyConverter interface {
	Convert(ctx context.Context, amount float64, from, to string) (float64, error)
}
