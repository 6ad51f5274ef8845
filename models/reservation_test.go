package models

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReservationStatusTransitions(t *testing.T) {
	all := []ReservationStatus{ReservationBooked, ReservationCheckedIn, ReservationCheckedOut, ReservationRefunded}

	allowed := map[ReservationStatus]map[ReservationStatus]bool{
		ReservationBooked:    {ReservationCheckedIn: true, ReservationRefunded: true},
		ReservationCheckedIn: {ReservationCheckedOut: true},
	}

	for _, from := range all {
		for _, to := range all {
			assert.Equal(t, allowed[from][to], from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestAllowedTransitions(t *testing.T) {
	assert.ElementsMatch(t,
		[]ReservationStatus{ReservationCheckedIn, ReservationRefunded},
		ReservationBooked.AllowedTransitions())
	assert.ElementsMatch(t,
		[]ReservationStatus{ReservationCheckedOut},
		ReservationCheckedIn.AllowedTransitions())
	assert.Empty(t, ReservationCheckedOut.AllowedTransitions())
	assert.Empty(t, ReservationRefunded.AllowedTransitions())
}

func TestStatusClassification(t *testing.T) {
	assert.True(t, ReservationBooked.Active())
	assert.True(t, ReservationCheckedIn.Active())
	assert.False(t, ReservationCheckedOut.Active())
	assert.False(t, ReservationRefunded.Active())

	assert.True(t, ReservationCheckedOut.Terminal())
	assert.True(t, ReservationRefunded.Terminal())
	assert.False(t, ReservationBooked.Terminal())
	assert.False(t, ReservationCheckedIn.Terminal())

	assert.False(t, ReservationStatus("Pending").Valid())
	assert.False(t, ReservationStatus("").Valid())
}

func TestEditability(t *testing.T) {
	for _, s := range []ReservationStatus{ReservationBooked, ReservationCheckedIn} {
		assert.True(t, s.DatesEditable(), "%s", s)
		assert.True(t, s.CustomerLocked(), "%s", s)
		assert.True(t, s.RoomLocked(), "%s", s)
	}
	for _, s := range []ReservationStatus{ReservationCheckedOut, ReservationRefunded} {
		assert.False(t, s.DatesEditable(), "%s", s)
	}
}

func TestNights(t *testing.T) {
	in := time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC)
	r := Reservation{CheckInDate: in, CheckOutDate: in.AddDate(0, 0, 2)}
	assert.Equal(t, 2, r.Nights())

	r.CheckOutDate = in.AddDate(0, 0, 1)
	assert.Equal(t, 1, r.Nights())
}

func TestNightsAcrossDSTChange(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// DST starts 2026-03-08 in New York, so midnight to midnight across it
	// is 47 hours. Both nights still count.
	r := Reservation{
		CheckInDate:  time.Date(2026, 3, 7, 0, 0, 0, 0, loc),
		CheckOutDate: time.Date(2026, 3, 9, 0, 0, 0, 0, loc),
	}
	assert.Equal(t, 2, r.Nights())
}

func TestNightsIgnoresTimeOfDay(t *testing.T) {
	r := Reservation{
		CheckInDate:  time.Date(2026, 1, 10, 23, 0, 0, 0, time.UTC),
		CheckOutDate: time.Date(2026, 1, 12, 1, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, 2, r.Nights())
}
