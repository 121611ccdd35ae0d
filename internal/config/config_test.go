package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 9090

[logs]
file = "test.log"
level = "debug"

[metrics]
enabled = true
path = "/metrics"
service_name = "parking-test"

[facility]
entry_points = 4

[rates]
flat_amount = 50.0
hourly_small = 25.0

[[slots]]
id = "SP-1"
size = "small"
distances = [1.0, 2.0, 3.0, 4.0]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 4, cfg.Facility.EntryPoints)
	assert.Equal(t, 50.0, cfg.Rates.FlatAmount)
	assert.Equal(t, 25.0, cfg.Rates.HourlySmall)
	// незаданные поля тарифа остаются эталонными
	assert.Equal(t, domain.DefaultPerDayAmount, cfg.Rates.PerDayAmount)
	assert.Equal(t, domain.DefaultHoursPerDay, cfg.Rates.HoursPerDay)
	require.Len(t, cfg.Slots, 1)
	assert.Equal(t, "SP-1", cfg.Slots[0].ID)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, domain.MinEntryPoints, cfg.Facility.EntryPoints)
	assert.Equal(t, domain.DefaultFlatAmount, cfg.Rates.FlatAmount)
}

func TestLoad_TooFewEntryPoints(t *testing.T) {
	path := writeConfig(t, `
[facility]
entry_points = 2
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "entry_points")
}

func TestLoad_SlotDistanceMismatch(t *testing.T) {
	path := writeConfig(t, `
[facility]
entry_points = 3

[[slots]]
id = "SP-1"
size = "small"
distances = [1.0, 2.0]
`)

	_, err := Load(path)
	assert.ErrorContains(t, err, "distances")
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestDomainSlots(t *testing.T) {
	path := writeConfig(t, `
[facility]
entry_points = 3

[[slots]]
id = "MP-1"
size = "medium"
distances = [8.0, 3.0, 1.0]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	slots, err := cfg.DomainSlots()
	require.NoError(t, err)
	require.Len(t, slots, 1)
	assert.Equal(t, "MP-1", slots[0].ID)
	assert.Equal(t, domain.SlotMedium, slots[0].Size)
	assert.Equal(t, []float64{8, 3, 1}, slots[0].Distances)
}

func TestDomainSlots_InvalidSize(t *testing.T) {
	path := writeConfig(t, `
[facility]
entry_points = 3

[[slots]]
id = "XP-1"
size = "huge"
distances = [1.0, 2.0, 3.0]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	_, err = cfg.DomainSlots()
	assert.ErrorIs(t, err, domain.ErrInvalidSlotSize)
}
