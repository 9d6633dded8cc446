package hyperbtc

import "fmt"

type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", p)
}

// PreciseString widens the precision as the value shrinks, so that the tiny
// shares of a 21 million coin supply never collapse to 0.00%.
func (p Percent) PreciseString() string {
	switch {
	case p >= 1:
		return fmt.Sprintf("%.3f%%", p)
	case p >= 0.1:
		return fmt.Sprintf("%.4f%%", p)
	case p >= 0.01:
		return fmt.Sprintf("%.5f%%", p)
	case p >= 0.001:
		return fmt.Sprintf("%.6f%%", p)
	case p >= 0.0001:
		return fmt.Sprintf("%.7f%%", p)
	default:
		return fmt.Sprintf("%.8f%%", p)
	}
}
