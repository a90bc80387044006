package leave

import (
	"fmt"
	"strconv"
	"time"

	leaveerrors "odyssey-hcm/internal/leave/errors"
)

// DaysRequested computes the inclusive day span of a leave request, minus
// half a day per half-day boundary. A single-day request with both
// boundaries marked half-day is one half day, not zero.
func DaysRequested(start, end time.Time, startHalfDay, endHalfDay bool) (float64, error) {
	if start.After(end) {
		return 0, leaveerrors.ErrInvalidDateRange
	}

	if start.Equal(end) && startHalfDay && endHalfDay {
		return 0.5, nil
	}

	days := float64(int(end.Sub(start).Hours()/24)) + 1
	if startHalfDay {
		days -= 0.5
	}
	if endHalfDay {
		days -= 0.5
	}
	return days, nil
}

// RequestInput is the policy-relevant part of a leave request submission.
type RequestInput struct {
	Start        time.Time
	End          time.Time
	StartHalfDay bool
	EndHalfDay   bool
}

// ValidateRequest runs every policy check independently and collects all
// violations into one field-keyed map; it never stops at the first failure.
// The returned day count is zero when the date range itself is invalid.
func ValidateRequest(policy *LeavePolicy, available float64, in RequestInput, now time.Time) (float64, map[string]string) {
	fieldErrors := make(map[string]string)

	days, err := DaysRequested(in.Start, in.End, in.StartHalfDay, in.EndHalfDay)
	if err != nil {
		fieldErrors["end_date"] = "start_date must be before or equal end_date"
	}

	if policy.MinimumNoticeHours > 0 {
		notice := in.Start.Sub(now)
		if notice < time.Duration(policy.MinimumNoticeHours)*time.Hour {
			fieldErrors["start_date"] = fmt.Sprintf(
				"requests require at least %d hours notice", policy.MinimumNoticeHours,
			)
		}
	}

	if err == nil && !policy.AllowNegativeBalance && days > available {
		fieldErrors["balance"] = fmt.Sprintf(
			"insufficient balance: available %s, requested %s",
			formatDays(available), formatDays(days),
		)
	}

	return days, fieldErrors
}

func formatDays(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
