package kernel_test

import (
	"testing"
	"time"

	"bakery/internal/core/domain/model/kernel"
	"bakery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestBusinessClock_WithZone(t *testing.T) {
	zone := time.FixedZone("CLT", -4*60*60)
	instant := time.Date(2024, time.June, 10, 20, 0, 0, 0, time.UTC)
	clock := kernel.NewBusinessClock(fixedNow(instant), zone)

	now := clock.Now()
	assert.Equal(t, 16, now.Hour())
	assert.Equal(t, zone, now.Location())

	inZone, err := clock.NowInZone()
	require.NoError(t, err)
	assert.True(t, inZone.Equal(instant))
	assert.Equal(t, 16, inZone.Hour())
}

func TestBusinessClock_WithoutZone(t *testing.T) {
	instant := time.Date(2024, time.June, 10, 20, 0, 0, 0, time.UTC)
	clock := kernel.NewBusinessClock(fixedNow(instant), nil)

	t.Run("Now falls back to the process-local zone", func(t *testing.T) {
		now := clock.Now()
		assert.True(t, now.Equal(instant))
		assert.Equal(t, time.Local, now.Location())
	})

	t.Run("NowInZone reports the zone as unavailable", func(t *testing.T) {
		_, err := clock.NowInZone()
		require.ErrorIs(t, err, kernel.ErrTimezoneUnavailable)
	})
}

func TestLoadBusinessClock(t *testing.T) {
	t.Run("unknown zone returns a local-only clock and the error", func(t *testing.T) {
		clock, err := kernel.LoadBusinessClock("Mars/Olympus_Mons")
		require.Error(t, err)
		assert.Nil(t, clock.Location())
		assert.False(t, clock.Now().IsZero())
	})

	t.Run("UTC always loads", func(t *testing.T) {
		clock, err := kernel.LoadBusinessClock("UTC")
		require.NoError(t, err)
		assert.NotNil(t, clock.Location())
	})
}

func TestParseTimeOfDay(t *testing.T) {
	tod, err := kernel.ParseTimeOfDay("7:30")
	require.NoError(t, err)
	assert.Equal(t, "07:30", tod.String())

	_, err = kernel.ParseTimeOfDay("")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = kernel.ParseTimeOfDay("25:00")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "HH:MM")
}

func TestParseWeekdays(t *testing.T) {
	days, err := kernel.ParseWeekdays([]string{"Lunes", "Miércoles", "lunes", " viernes "})
	require.NoError(t, err)
	assert.Equal(t, []kernel.Weekday{kernel.Monday, kernel.Wednesday, kernel.Friday}, days)
	assert.Equal(t, []string{"lunes", "miercoles", "viernes"}, kernel.WeekdayStrings(days))

	_, err = kernel.ParseWeekdays([]string{"funday"})
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
