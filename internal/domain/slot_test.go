package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSlot(t *testing.T) {
	slot, err := NewSlot("LP-1", SlotLarge, []float64{1, 2, 3})
	require.NoError(t, err)
	assert.Equal(t, "LP-1", slot.ID)
	assert.Equal(t, SlotLarge, slot.Size)
	assert.Equal(t, []float64{1, 2, 3}, slot.Distances)
}

func TestNewSlot_ZeroDistance(t *testing.T) {
	_, err := NewSlot("SP-1", SlotSmall, []float64{1, 0})
	assert.ErrorIs(t, err, ErrNonPositiveDistance)
}

func TestNewSlot_NegativeDistance(t *testing.T) {
	_, err := NewSlot("LP-1", SlotLarge, []float64{1, -10})
	assert.ErrorIs(t, err, ErrNonPositiveDistance)
}

func TestNewSlot_InvalidSize(t *testing.T) {
	_, err := NewSlot("XX-1", SlotSize(0), []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidSlotSize)

	_, err = NewSlot("XX-2", SlotSize(4), []float64{1, 2, 3})
	assert.ErrorIs(t, err, ErrInvalidSlotSize)
}

func TestSlotSize_Accommodates(t *testing.T) {
	cases := []struct {
		slot    SlotSize
		vehicle VehicleSize
		fits    bool
	}{
		{SlotSmall, VehicleSmall, true},
		{SlotSmall, VehicleMedium, false},
		{SlotSmall, VehicleLarge, false},
		{SlotMedium, VehicleSmall, true},
		{SlotMedium, VehicleMedium, true},
		{SlotMedium, VehicleLarge, false},
		{SlotLarge, VehicleSmall, true},
		{SlotLarge, VehicleMedium, true},
		{SlotLarge, VehicleLarge, true},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.fits, tc.slot.Accommodates(tc.vehicle),
			"slot %s vs vehicle %s", tc.slot, tc.vehicle)
	}
}

func TestParseSlotSize(t *testing.T) {
	size, err := ParseSlotSize("medium")
	require.NoError(t, err)
	assert.Equal(t, SlotMedium, size)

	_, err = ParseSlotSize("huge")
	assert.ErrorIs(t, err, ErrInvalidSlotSize)
}

func TestSlot_DistanceFrom(t *testing.T) {
	slot, err := NewSlot("MP-1", SlotMedium, []float64{8, 3, 1})
	require.NoError(t, err)

	assert.Equal(t, 8.0, slot.DistanceFrom(0))
	assert.Equal(t, 1.0, slot.DistanceFrom(2))
}
