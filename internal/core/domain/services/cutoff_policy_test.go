package services_test

import (
	"testing"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/core/domain/services"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) kernel.Date {
	t.Helper()
	d, err := kernel.ParseDate(s)
	require.NoError(t, err)
	return d
}

func at(hour int) time.Time {
	return time.Date(2024, time.June, 10, hour, 0, 0, 0, time.UTC)
}

func TestNewCutoffPolicy(t *testing.T) {
	_, err := services.NewCutoffPolicy(24)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	p, err := services.NewCutoffPolicy(services.DefaultCutoffHour)
	require.NoError(t, err)
	assert.Equal(t, 18, p.Hour())
}

func TestCutoffPolicy_BeforeCutoff(t *testing.T) {
	p, _ := services.NewCutoffPolicy(18)
	now := at(10)

	assert.Equal(t, "2024-06-11", p.EarliestDeliveryDate(now).String())

	t.Run("today is rejected", func(t *testing.T) {
		err := p.Check(date(t, "2024-06-10"), now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "before 18:00")
		assert.Contains(t, err.Error(), "from tomorrow (2024-06-11)")
	})

	t.Run("yesterday is rejected", func(t *testing.T) {
		require.Error(t, p.Check(date(t, "2024-06-09"), now))
	})

	t.Run("tomorrow is accepted", func(t *testing.T) {
		require.NoError(t, p.Check(date(t, "2024-06-11"), now))
	})

	t.Run("one minute before the cutoff still allows tomorrow", func(t *testing.T) {
		require.NoError(t, p.Check(date(t, "2024-06-11"), at(17).Add(59*time.Minute)))
	})
}

func TestCutoffPolicy_AtOrAfterCutoff(t *testing.T) {
	p, _ := services.NewCutoffPolicy(18)

	for _, hour := range []int{18, 19, 23} {
		now := at(hour)

		assert.Equal(t, "2024-06-12", p.EarliestDeliveryDate(now).String())

		err := p.Check(date(t, "2024-06-11"), now)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "at or after 18:00")
		assert.Contains(t, err.Error(), "day after tomorrow (2024-06-12)")

		require.NoError(t, p.Check(date(t, "2024-06-12"), now))
	}
}

func TestCutoffPolicy_ComparesCalendarDatesInNowsZone(t *testing.T) {
	p, _ := services.NewCutoffPolicy(18)
	santiago := time.FixedZone("CLT", -4*60*60)
	// 01:00 UTC on the 11th is 21:00 on the 10th in Santiago: after cutoff, today is the 10th.
	now := time.Date(2024, time.June, 11, 1, 0, 0, 0, time.UTC).In(santiago)

	require.Error(t, p.Check(date(t, "2024-06-11"), now))
	require.NoError(t, p.Check(date(t, "2024-06-12"), now))
}

func TestCutoffPolicy_MissingDate(t *testing.T) {
	p, _ := services.NewCutoffPolicy(18)
	require.ErrorIs(t, p.Check(kernel.Date{}, at(9)), errs.ErrValueIsRequired)
}

func TestCutoffPolicy_MonthBoundary(t *testing.T) {
	p, _ := services.NewCutoffPolicy(18)
	now := time.Date(2024, time.December, 31, 20, 0, 0, 0, time.UTC)
	assert.Equal(t, "2025-01-02", p.EarliestDeliveryDate(now).String())
}
