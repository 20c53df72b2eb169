package reconciling

import (
	"time"

	"github.com/vfg2006/missed-stops-report/internal/domain"
	"github.com/vfg2006/missed-stops-report/pkg/utils"
)

// FilterStops mantém apenas as paradas agendadas exatamente para o slot informado
func FilterStops(stops []domain.StopRecord, slot domain.ScheduleSlot) []domain.StopRecord {
	filtered := make([]domain.StopRecord, 0)
	for _, stop := range stops {
		if stop.DayOfWeek == slot.DayOfWeek && stop.Phase == slot.Phase {
			filtered = append(filtered, stop)
		}
	}
	return filtered
}

// AnnotateRegions cria as linhas da planilha a partir das paradas, com a região do território.
// Territórios sem região ficam com Region nil.
func AnnotateRegions(stops []domain.StopRecord, regions []domain.RegionLookup, expectedDay time.Time) []domain.ReconciledRow {
	regionByTerritory := make(map[string]string, len(regions))
	for _, lookup := range regions {
		if _, exists := regionByTerritory[lookup.Territory]; exists {
			continue
		}
		regionByTerritory[lookup.Territory] = lookup.Region
	}

	expectedDay = utils.DateOnly(expectedDay)
	rows := make([]domain.ReconciledRow, 0, len(stops))
	for _, stop := range stops {
		row := domain.ReconciledRow{
			CustomerID:        stop.CustomerID,
			Territory:         stop.Territory,
			Phase:             stop.Phase,
			DayOfWeek:         stop.DayOfWeek,
			ExpectedDayOfSale: expectedDay,
		}
		if region, ok := regionByTerritory[stop.Territory]; ok {
			row.Region = &region
		}
		rows = append(rows, row)
	}
	return rows
}
