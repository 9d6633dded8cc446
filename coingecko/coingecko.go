// Package coingecko fetches bitcoin spot prices from the CoinGecko public
// API. The simple/price endpoint works without an API key at the request
// rates an interactive prompt produces.
package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/hyperbtc"
)

// DefaultTimeout bounds a spot request, the prompt must not hang on a slow API.
const DefaultTimeout = 5 * time.Second

const spotURL = "https://api.coingecko.com/api/v3/simple/price?ids=bitcoin&vs_currencies=usd"

// Spot returns the current price of one bitcoin in USD. The request ends
// after DefaultTimeout when the caller sets no deadline of its own.
func Spot(ctx context.Context) (hyperbtc.Money, error) {
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, DefaultTimeout)
		defer cancel()
	}
	return spot(ctx, http.DefaultClient, spotURL)
}

/*
	{
	    "bitcoin": {
	        "usd": 67812
	    }
	}
*/
func spot(ctx context.Context, client *http.Client, addr string) (hyperbtc.Money, error) {
	var jobj any
	if err := jwget(ctx, client, addr, &jobj); err != nil {
		return hyperbtc.Money{}, fmt.Errorf("error in wget %q: %w", "BTC/USD", err)
	}
	const path = "$.bitcoin.usd"
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return hyperbtc.Money{}, fmt.Errorf("error parsing %q: %q %w", "BTC/USD", path, err)
	}
	// because jsonpath is never clear about whether it returns a list of 1 answer, or a single answer:
	// by this call I keep the first one if any
	if jlist, ok := jval.([]any); ok && len(jlist) > 0 {
		jval = jlist[0]
	}
	val, ok := jval.(float64)
	if !ok {
		return hyperbtc.Money{}, fmt.Errorf("error parsing %q: %q %s %v", "BTC/USD", path, "not a float", jval)
	}
	if val <= 0 {
		// a free quote can come back empty, zero is not a price
		return hyperbtc.Money{}, fmt.Errorf("empty quote for %q: %v", "BTC/USD", val)
	}
	return hyperbtc.M(val, "USD"), nil
}

// jwget performs an HTTP GET request and unmarshals the JSON response into the provided data structure.
func jwget(ctx context.Context, client *http.Client, addr string, data any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, addr, nil)
	if err != nil {
		return err
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != 200 {
		return fmt.Errorf("cannot http GET %v/%v: %v", resp.Request.URL.Host, resp.Request.URL.Path, resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(data)
}
