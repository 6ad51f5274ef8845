package services

import (
	"context"
	"testing"

	"hotelpro-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomAndCustomerGuards(t *testing.T) {
	db := openTestDB(t)
	engine := NewReservationService(db)
	room := createRoom(t, db, "101", 100, 4)
	idleRoom := createRoom(t, db, "102", 100, 4)
	customer := createCustomer(t, db, "Alice", "ID-001")
	idleCustomer := createCustomer(t, db, "Bob", "ID-002")

	r := mustCreate(t, engine, customer, room, day(1), day(3), models.ReservationBooked)

	busy, err := RoomHasActiveReservations(db, room.ID)
	require.NoError(t, err)
	assert.True(t, busy)

	busy, err = RoomHasActiveReservations(db, idleRoom.ID)
	require.NoError(t, err)
	assert.False(t, busy)

	busy, err = CustomerHasActiveReservations(db, customer.ID)
	require.NoError(t, err)
	assert.True(t, busy)

	busy, err = CustomerHasActiveReservations(db, idleCustomer.ID)
	require.NoError(t, err)
	assert.False(t, busy)

	// The edit guard only trips while a guest is in house.
	busy, err = CustomerHasCheckedInReservations(db, customer.ID)
	require.NoError(t, err)
	assert.False(t, busy)

	_, err = engine.Transition(context.Background(), r.ID, models.ReservationCheckedIn)
	require.NoError(t, err)

	busy, err = CustomerHasCheckedInReservations(db, customer.ID)
	require.NoError(t, err)
	assert.True(t, busy)

	// Terminal reservations release every guard.
	_, err = engine.Transition(context.Background(), r.ID, models.ReservationCheckedOut)
	require.NoError(t, err)

	busy, err = RoomHasActiveReservations(db, room.ID)
	require.NoError(t, err)
	assert.False(t, busy)

	busy, err = CustomerHasActiveReservations(db, customer.ID)
	require.NoError(t, err)
	assert.False(t, busy)
}
