package entities_test

import (
	"testing"

	"github.com/carrent/order-service/internal/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	for _, s := range []string{"pending", "confirmed", "cancelled", "completed"} {
		got, err := entities.ParseStatus(s)
		require.NoError(t, err)
		assert.Equal(t, entities.Status(s), got)
	}

	_, err := entities.ParseStatus("Pending")
	assert.ErrorIs(t, err, entities.ErrInvalidStatus)

	_, err = entities.ParseStatus("shipped")
	assert.ErrorIs(t, err, entities.ErrInvalidStatus)
}

func TestStatus_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		from entities.Status
		to   entities.Status
		want bool
	}{
		{entities.StatusPending, entities.StatusConfirmed, true},
		{entities.StatusPending, entities.StatusCancelled, true},
		{entities.StatusPending, entities.StatusCompleted, false},
		{entities.StatusConfirmed, entities.StatusCompleted, true},
		{entities.StatusConfirmed, entities.StatusCancelled, false},
		{entities.StatusCancelled, entities.StatusPending, false},
		{entities.StatusCompleted, entities.StatusConfirmed, false},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestStatus_Terminal(t *testing.T) {
	assert.False(t, entities.StatusPending.Terminal())
	assert.False(t, entities.StatusConfirmed.Terminal())
	assert.True(t, entities.StatusCancelled.Terminal())
	assert.True(t, entities.StatusCompleted.Terminal())
}

func TestCarSummary_MarshalRoundTrip(t *testing.T) {
	car := entities.CarSummary{
		CarID:     "42",
		Brand:     "Skoda",
		Model:     "Octavia",
		DailyRate: 4500,
		Available: true,
	}

	data, err := car.Marshal()
	require.NoError(t, err)

	var got entities.CarSummary
	require.NoError(t, got.Unmarshal(data))
	assert.Equal(t, car, got)
}
