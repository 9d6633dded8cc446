package hyperbtc

import (
	"context"
	"errors"
	"testing"
)

func TestCurrentPrice(t *testing.T) {
	ctx := context.Background()

	quote := M(67_812.45, "USD")
	price, live := CurrentPrice(ctx, func(context.Context) (Money, error) {
		return quote, nil
	})
	if !live {
		t.Error("CurrentPrice() live = false, want true")
	}
	if !price.Equal(quote) {
		t.Errorf("CurrentPrice() = %s, want %s", price, quote)
	}

	price, live = CurrentPrice(ctx, func(context.Context) (Money, error) {
		return Money{}, errors.New("api unreachable")
	})
	if live {
		t.Error("CurrentPrice() live = true, want false on failure")
	}
	if !price.Equal(FallbackPrice) {
		t.Errorf("CurrentPrice() = %s, want fallback %s", price, FallbackPrice)
	}
}
