package domain

// Timeframe is the requested roadmap length as sent by the client.
type Timeframe string

const (
	Timeframe3Months Timeframe = "3_months"
	Timeframe6Months Timeframe = "6_months"
	Timeframe1Year   Timeframe = "1_year"
	TimeframeNotSure Timeframe = "not_sure"
)

// MonthCount resolves a timeframe to the number of months the roadmap must
// contain. Unknown values and "not_sure" resolve to 3.
func (t Timeframe) MonthCount() int {
	switch t {
	case Timeframe3Months:
		return 3
	case Timeframe6Months:
		return 6
	case Timeframe1Year:
		return 12
	default:
		return 3
	}
}

const (
	WeeksPerMonth = 4
	TasksPerWeek  = 6
)
