package calculator

// TaxBracket is one row of the regressive income tax table.
type TaxBracket struct {
	MaxMonths int // inclusive upper bound; 0 means unbounded
	Rate      float64
}

// RegressiveTable is the fixed-income regressive table, shortest holding first.
var RegressiveTable = []TaxBracket{
	{MaxMonths: 6, Rate: 0.225},
	{MaxMonths: 12, Rate: 0.20},
	{MaxMonths: 24, Rate: 0.175},
	{MaxMonths: 0, Rate: 0.15},
}

// TaxRate maps a holding period to its single regressive bracket rate.
// The whole yield is taxed at that rate; nothing is prorated.
func TaxRate(monthsHeld int) float64 {
	for _, b := range RegressiveTable {
		if b.MaxMonths == 0 || monthsHeld <= b.MaxMonths {
			return b.Rate
		}
	}
	return RegressiveTable[len(RegressiveTable)-1].Rate
}

// ComputeTax returns the tax owed on yield after monthsHeld months.
// A negative yield produces a negative amount; flooring is up to the caller.
func ComputeTax(monthsHeld int, yield float64) float64 {
	return yield * TaxRate(monthsHeld)
}
