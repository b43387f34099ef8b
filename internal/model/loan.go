package model

// AmortizationMethod selects the loan schedule generator.
type AmortizationMethod string

const (
	MethodSAC   AmortizationMethod = "SAC"   // constant amortization
	MethodPrice AmortizationMethod = "PRICE" // constant payment (French)
)

// LoanParameters describes a financing to be amortized.
type LoanParameters struct {
	Principal          float64
	MonthlyRate        float64
	TermMonths         int
	ExtraPaymentAmount float64
	ExtraPaymentMonths map[int]bool
}

// HasExtra reports whether an extraordinary payment is scheduled for month.
func (p LoanParameters) HasExtra(month int) bool {
	return p.ExtraPaymentMonths[month]
}

// AmortizationRecord is one row of a loan schedule.
type AmortizationRecord struct {
	Month            int     `json:"month"`
	Interest         float64 `json:"interest"`
	Amortization     float64 `json:"amortization"`
	Payment          float64 `json:"payment"`
	Extra            float64 `json:"extra"`
	RemainingBalance float64 `json:"remaining_balance"`
}

// AmortizationResult is a complete loan schedule with its aggregates.
type AmortizationResult struct {
	Method        AmortizationMethod   `json:"method"`
	BasePayment   float64              `json:"base_payment"`
	Schedule      []AmortizationRecord `json:"schedule"`
	TotalInterest float64              `json:"total_interest"`
	TotalPayment  float64              `json:"total_payment"`
	PayoffMonth   int                  `json:"payoff_month"` // 0 if not paid off within the term
	Degenerate    bool                 `json:"degenerate,omitempty"`
}

// LoanComparison holds both schedules for the same financing.
type LoanComparison struct {
	AssetValue  float64
	DownPayment float64
	Principal   float64
	AnnualRate  float64
	MonthlyRate float64
	SAC         AmortizationResult
	Price       AmortizationResult
}

// PaymentDifference is Price total paid minus SAC total paid.
func (c LoanComparison) PaymentDifference() float64 {
	return c.Price.TotalPayment - c.SAC.TotalPayment
}

// InterestDifference is Price total interest minus SAC total interest.
func (c LoanComparison) InterestDifference() float64 {
	return c.Price.TotalInterest - c.SAC.TotalInterest
}
