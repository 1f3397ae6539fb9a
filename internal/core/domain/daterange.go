package domain

import "time"

// Date range codes offered by the dashboard.
const (
	Range6Months = "6m"
	Range1Year   = "1y"
	Range2Years  = "2y"
)

// DateRangeWindow maps a range code to an inclusive [start, end] window ending today.
// Unknown codes fall back to two years.
func DateRangeWindow(code string, today time.Time) (start, end string) {
	end = today.Format(DateLayout)
	var from time.Time
	switch code {
	case Range6Months:
		from = today.AddDate(0, -6, 0)
	case Range1Year:
		from = today.AddDate(-1, 0, 0)
	default:
		from = today.AddDate(-2, 0, 0)
	}
	return from.Format(DateLayout), end
}

// PreviousMonth returns the first and last day of the calendar month before now.
func PreviousMonth(now time.Time) (start, end time.Time) {
	firstOfThisMonth := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	end = firstOfThisMonth.AddDate(0, 0, -1)
	start = time.Date(end.Year(), end.Month(), 1, 0, 0, 0, 0, now.Location())
	return start, end
}
