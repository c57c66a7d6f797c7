package stacking

import (
	"sort"

	"github.com/aquabase/wellreg-backend/internal/domain"
)

// OrderSubmissions establishes the total order submissions are folded in:
// legacy snapshots first regardless of timestamp, construction reports
// next, then everything else by creation time. A well's lifecycle has to
// start from a legacy-or-construction baseline before later reports can be
// layered on top. The sort is stable, so ties keep their arrival order.
//
// Alteration, decommission and staff-edit reports are ordered by the date
// they were filed, not by their declared work start date; two reports filed
// out of chronological order will stack in filing order. That behavior is
// long-standing and is kept as-is.
func OrderSubmissions(submissions []*domain.ActivitySubmission) []*domain.ActivitySubmission {
	ordered := make([]*domain.ActivitySubmission, len(submissions))
	copy(ordered, submissions)
	sort.SliceStable(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if ra, rb := rank(a.WellActivityCode), rank(b.WellActivityCode); ra != rb {
			return ra < rb
		}
		return a.CreateDate.Before(b.CreateDate)
	})
	return ordered
}

func rank(code domain.ActivityCode) int {
	switch code {
	case domain.ActivityLegacy:
		return 0
	case domain.ActivityConstruction:
		return 1
	default:
		return 2
	}
}
