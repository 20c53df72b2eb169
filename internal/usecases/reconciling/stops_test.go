package reconciling

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/missed-stops-report/internal/domain"
)

func TestFilterStops(t *testing.T) {
	stops := []domain.StopRecord{
		{CustomerID: "C1", Territory: "T1", Phase: 2, DayOfWeek: 2},
		{CustomerID: "C2", Territory: "T1", Phase: 1, DayOfWeek: 2},
		{CustomerID: "C3", Territory: "T2", Phase: 2, DayOfWeek: 3},
		{CustomerID: "C4", Territory: "T2", Phase: 2, DayOfWeek: 2},
	}

	got := FilterStops(stops, domain.ScheduleSlot{DayOfWeek: 2, Phase: 2})

	require.Len(t, got, 2)
	assert.Equal(t, "C1", got[0].CustomerID)
	assert.Equal(t, "C4", got[1].CustomerID)

	assert.Empty(t, FilterStops(stops, domain.ScheduleSlot{DayOfWeek: 7, Phase: 4}))
}

func TestAnnotateRegions(t *testing.T) {
	stops := []domain.StopRecord{
		{CustomerID: "C1", Territory: "T1", Phase: 2, DayOfWeek: 2},
		{CustomerID: "C2", Territory: "T9", Phase: 2, DayOfWeek: 2},
	}
	regions := []domain.RegionLookup{
		{Territory: "T1", Region: "North"},
		{Territory: "T1", Region: "Duplicated"},
	}
	expected := day(2024, 1, 15)

	rows := AnnotateRegions(stops, regions, expected)

	require.Len(t, rows, 2)
	require.NotNil(t, rows[0].Region)
	assert.Equal(t, "North", *rows[0].Region)
	assert.Nil(t, rows[1].Region, "território sem região não é erro")
	assert.Equal(t, expected, rows[0].ExpectedDayOfSale)
	assert.Equal(t, "T9", rows[1].Territory)
}
