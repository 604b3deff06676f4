package entity

// Period is the length of a price history range.
type Period string

const (
	Period1d  Period = "1d"
	Period5d  Period = "5d"
	Period1mo Period = "1mo"
	Period3mo Period = "3mo"
	Period6mo Period = "6mo"
	Period1y  Period = "1y"
	Period2y  Period = "2y"
	Period5y  Period = "5y"
	Period10y Period = "10y"
	PeriodYtd Period = "ytd"
	PeriodMax Period = "max"

	// DefaultPeriod replaces any period that is not recognized.
	DefaultPeriod = Period1y
)

var validPeriods = map[Period]struct{}{
	Period1d:  {},
	Period5d:  {},
	Period1mo: {},
	Period3mo: {},
	Period6mo: {},
	Period1y:  {},
	Period2y:  {},
	Period5y:  {},
	Period10y: {},
	PeriodYtd: {},
	PeriodMax: {},
}

// ParsePeriod returns s as a Period, or DefaultPeriod when s is not one of the supported values.
// Matching is case-sensitive.
func ParsePeriod(s string) Period {
	p := Period(s)
	if _, ok := validPeriods[p]; ok {
		return p
	}
	return DefaultPeriod
}
