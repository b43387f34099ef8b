package model

// ContributionKind names the contribution policy active in a run.
type ContributionKind string

const (
	ContributionFixed      ContributionKind = "FIXED"
	ContributionLinear     ContributionKind = "LINEAR"
	ContributionPercentage ContributionKind = "PERCENTAGE"
	ContributionCustom     ContributionKind = "CUSTOM"
)

// ContributionPolicy yields the amount deposited in a given month (1-indexed).
type ContributionPolicy interface {
	ForMonth(month int) float64
	Kind() ContributionKind
}

// SimulationParameters describes one investment growth run.
type SimulationParameters struct {
	InitialAmount    float64
	Contribution     ContributionPolicy
	BaseAnnualRate   float64 // decimal, 0.10 = 10% a.a.
	MonthlyRateDrift float64 // multiplicative change applied to the monthly rate each month
	HorizonMonths    int
	Taxable          bool
}

// MonthlyRecord is one row of the growth ledger.
type MonthlyRecord struct {
	Month              int     `json:"month"`
	Contribution       float64 `json:"contribution"`
	Interest           float64 `json:"interest"`
	GrossBalance       float64 `json:"gross_balance"`
	AccumulatedCapital float64 `json:"accumulated_capital"`
}

// SimulationResult is the outcome of a growth run.
type SimulationResult struct {
	GrossBalance    float64         `json:"gross_balance"`
	InvestedCapital float64         `json:"invested_capital"`
	TaxPaid         float64         `json:"tax_paid"`
	NetBalance      float64         `json:"net_balance"`
	Schedule        []MonthlyRecord `json:"schedule"`
}

// GrossYield is the gross balance minus everything deposited.
func (r SimulationResult) GrossYield() float64 {
	return r.GrossBalance - r.InvestedCapital
}

// NetYield is the net balance minus everything deposited.
func (r SimulationResult) NetYield() float64 {
	return r.NetBalance - r.InvestedCapital
}
