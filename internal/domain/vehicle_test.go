package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVehicle(t *testing.T) {
	vehicle, err := NewVehicle("ABC-123", VehicleLarge)
	require.NoError(t, err)
	assert.Equal(t, "ABC-123", vehicle.ID)
	assert.Equal(t, VehicleLarge, vehicle.Size)
}

func TestNewVehicle_InvalidSize(t *testing.T) {
	_, err := NewVehicle("ABC-123", VehicleSize(0))
	assert.ErrorIs(t, err, ErrInvalidVehicleSize)
}

func TestParseVehicleSize(t *testing.T) {
	size, err := ParseVehicleSize("large")
	require.NoError(t, err)
	assert.Equal(t, VehicleLarge, size)

	_, err = ParseVehicleSize("")
	assert.ErrorIs(t, err, ErrInvalidVehicleSize)
}
