package usecase

import "context"

// IdentityConverter is the default port.CurrencyConverter: it returns the
// amount unchanged. Deployments with real exchange rates plug their own
// converter in through WithConverter.
type IdentityConverter struct{}

func (IdentityConverter) Convert(_ context.Context, amount float64, _, _ string) (float64, error) {
	return amount, nil
}
