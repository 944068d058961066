package psychro

import "fmt"

// DomainError reports an input outside the physically valid range of a
// correlation. Callers treat it as "this state does not exist" and skip the
// sample or surface a point-undefined message; it is never fatal.
type DomainError struct {
	Quantity string
	Value    float64
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("psychro: %s %g outside physical range", e.Quantity, e.Value)
}

func domainErr(quantity string, value float64) error {
	return &DomainError{Quantity: quantity, Value: value}
}
