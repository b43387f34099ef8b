package calculator

const (
	DaysPerMonth = 30     // month approximation used across the simulator
	DaysPerYear  = 365.25 // used only when converting from years
)

// Period is a duration expressed in all three units.
type Period struct {
	Years  float64
	Months float64
	Days   float64
}

// TotalMonths folds a years+months input into a month count.
func TotalMonths(years, months int) int {
	return years*12 + months
}

// ApproxDays is the 30-day-month day count for a number of months.
func ApproxDays(months int) int {
	return months * DaysPerMonth
}

// ConvertPeriod expresses one positive input in years, months and days.
// Years take precedence over months, months over days; all-zero input yields a zero Period.
func ConvertPeriod(years, months, days float64) Period {
	switch {
	case years > 0:
		return Period{Years: years, Months: years * 12, Days: years * DaysPerYear}
	case months > 0:
		return Period{Years: months / 12, Months: months, Days: months * DaysPerMonth}
	case days > 0:
		m := days / DaysPerMonth
		return Period{Years: m / 12, Months: m, Days: days}
	}
	return Period{}
}
