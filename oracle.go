package hyperbtc

import (
	"context"
	"log"
)

// FallbackPrice stands in for the market when it cannot be reached.
var FallbackPrice = M(100_000, "USD")

// PriceFunc returns the current market price of one bitcoin.
type PriceFunc func(context.Context) (Money, error)

// CurrentPrice returns the live bitcoin price from fetch, or FallbackPrice
// when fetch fails. live reports whether the quote came from the market.
func CurrentPrice(ctx context.Context, fetch PriceFunc) (price Money, live bool) {
	quote, err := fetch(ctx)
	if err != nil {
		log.Printf("live bitcoin price unavailable: %v", err)
		return FallbackPrice, false
	}
	return quote, true
}
