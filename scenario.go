package hyperbtc

// TotalSupply is the total bitcoin that will ever exist.
var TotalSupply = B(21_000_000)

// CalculationResult is the full outcome of one scenario evaluation: where a
// net worth sits in the distribution today and what it takes to stay there
// once the dataset's wealth has moved into bitcoin.
type CalculationResult struct {
	Dataset       *Dataset
	NetWorth      Money
	Percentile    Percent
	BitcoinNeeded BTC
	Price         Money // hyperbitcoinization price the scenario clears at

	PctOfAllocation  Percent // share of the dataset's bitcoin allocation
	PctOfTotalSupply Percent // share of the full 21M supply
	PctOfWealth      Percent // share of the dataset's total wealth
}

// Evaluate runs the scenario for a net worth against a distribution.
// It is a pure function of its inputs, live market prices only enter the
// picture through CalculationResult.CostAt.
func Evaluate(netWorth Money, ds *Dataset) CalculationResult {
	price := ds.HyperPrice()
	needed := netWorth.DivPrice(price)
	return CalculationResult{
		Dataset:          ds,
		NetWorth:         netWorth,
		Percentile:       ds.PercentileOfWealth(netWorth),
		BitcoinNeeded:    needed,
		Price:            price,
		PctOfAllocation:  needed.PctOf(ds.Allocation()),
		PctOfTotalSupply: needed.PctOf(TotalSupply),
		PctOfWealth:      netWorth.PctOf(ds.TotalWealth()),
	}
}

// PctOfGlobalWealth returns the net worth as a share of global wealth. For
// the global dataset this is PctOfWealth, for narrower ones it widens the
// denominator back to the world.
func (r CalculationResult) PctOfGlobalWealth() Percent {
	return r.NetWorth.PctOf(Global().TotalWealth())
}

// CostAt prices the needed bitcoin at a quote, typically today's market
// price. It is the reality check against the scenario's clearing price.
func (r CalculationResult) CostAt(quote Money) Money {
	return quote.Mul(r.BitcoinNeeded)
}
