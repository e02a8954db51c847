package domain

import "time"

// PricePoint is one row of the reference price table - the daily low
// for a symbol. Immutable once loaded.
type PricePoint struct {
	Date   time.Time
	Symbol string
	Low    float64
}
