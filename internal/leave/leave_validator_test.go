package leave_test

import (
	"math"
	"testing"
	"time"

	"odyssey-hcm/internal/leave"
	leaveerrors "odyssey-hcm/internal/leave/errors"

	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestDaysRequested(t *testing.T) {
	cases := []struct {
		name         string
		start, end   string
		startHalf    bool
		endHalf      bool
		expectedDays float64
	}{
		{"single full day", "2026-03-02", "2026-03-02", false, false, 1},
		{"single day start half", "2026-03-02", "2026-03-02", true, false, 0.5},
		{"single day end half", "2026-03-02", "2026-03-02", false, true, 0.5},
		{"single day both halves is one half day", "2026-03-02", "2026-03-02", true, true, 0.5},
		{"full week", "2026-03-02", "2026-03-06", false, false, 5},
		{"week with start half", "2026-03-02", "2026-03-06", true, false, 4.5},
		{"week with end half", "2026-03-02", "2026-03-06", false, true, 4.5},
		{"week with both halves", "2026-03-02", "2026-03-06", true, true, 4},
		{"two days both halves", "2026-03-02", "2026-03-03", true, true, 1},
		{"month boundary", "2026-03-30", "2026-04-02", false, false, 4},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			days, err := leave.DaysRequested(day(tc.start), day(tc.end), tc.startHalf, tc.endHalf)
			assert.NoError(t, err)
			assert.Equal(t, tc.expectedDays, days)
			assert.Zero(t, math.Mod(days*2, 1), "day counts move in half-day steps")
		})
	}

	t.Run("start after end is rejected", func(t *testing.T) {
		_, err := leave.DaysRequested(day("2026-03-06"), day("2026-03-02"), false, false)
		assert.ErrorIs(t, err, leaveerrors.ErrInvalidDateRange)
	})
}

func TestValidateRequest(t *testing.T) {
	now := day("2026-03-01")

	policy := &leave.LeavePolicy{
		Name:               "Annual Leave",
		MinimumNoticeHours: 48,
	}

	t.Run("valid request has no violations", func(t *testing.T) {
		days, violations := leave.ValidateRequest(policy, 10, leave.RequestInput{
			Start: day("2026-03-10"),
			End:   day("2026-03-12"),
		}, now)

		assert.Empty(t, violations)
		assert.Equal(t, 3.0, days)
	})

	t.Run("notice violation keys start_date", func(t *testing.T) {
		_, violations := leave.ValidateRequest(policy, 10, leave.RequestInput{
			Start: day("2026-03-02"),
			End:   day("2026-03-02"),
		}, now)

		assert.Equal(t, "requests require at least 48 hours notice", violations["start_date"])
	})

	t.Run("insufficient balance reports both numbers", func(t *testing.T) {
		_, violations := leave.ValidateRequest(policy, 5, leave.RequestInput{
			Start: day("2026-03-10"),
			End:   day("2026-03-15"),
		}, now)

		assert.Equal(t, "insufficient balance: available 5, requested 6", violations["balance"])
	})

	t.Run("all violations are collected, not just the first", func(t *testing.T) {
		_, violations := leave.ValidateRequest(policy, 5, leave.RequestInput{
			Start: day("2026-03-02"),
			End:   day("2026-03-07"),
		}, now)

		assert.Len(t, violations, 2)
		assert.Contains(t, violations, "start_date")
		assert.Contains(t, violations, "balance")
	})

	t.Run("invalid range keys end_date and skips balance check", func(t *testing.T) {
		days, violations := leave.ValidateRequest(policy, 0, leave.RequestInput{
			Start: day("2026-03-12"),
			End:   day("2026-03-10"),
		}, now)

		assert.Zero(t, days)
		assert.Contains(t, violations, "end_date")
		assert.NotContains(t, violations, "balance")
	})

	t.Run("negative balance policy skips the balance check", func(t *testing.T) {
		lenient := &leave.LeavePolicy{
			Name:                 "Unpaid Leave",
			AllowNegativeBalance: true,
		}
		days, violations := leave.ValidateRequest(lenient, 0, leave.RequestInput{
			Start: day("2026-03-10"),
			End:   day("2026-03-12"),
		}, now)

		assert.Empty(t, violations)
		assert.Equal(t, 3.0, days)
	})

	t.Run("half day flags shrink the requested amount", func(t *testing.T) {
		days, violations := leave.ValidateRequest(policy, 2.5, leave.RequestInput{
			Start:        day("2026-03-10"),
			End:          day("2026-03-12"),
			StartHalfDay: true,
		}, now)

		assert.Empty(t, violations)
		assert.Equal(t, 2.5, days)
	})
}
