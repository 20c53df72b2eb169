package source

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/missed-stops-report/internal/domain"
	"github.com/vfg2006/missed-stops-report/pkg/log"
)

func writeSources(t *testing.T, dir string) Paths {
	t.Helper()

	return Paths{
		Stops: writeFile(t, dir, "Stops_Report.csv",
			"Customer ID,Territory,Phase,Day Of Week\nX,T1,1,2\nY,T2,1,2\n"),
		Phases: writeWorkbook(t, dir, "phases.xlsx", "Sheet1", [][]cellValue{
			{"Date", "Day Of Week", "Phase"},
			{day(2024, 1, 15), "Monday", "One"},
		}),
		Regions: writeWorkbook(t, dir, "region lookup.xlsx", "Sheet1", [][]cellValue{
			{"Territory", "Region"},
			{"T1", "North"},
		}),
		Invoices: writeFile(t, dir, "Invoices_Report.csv",
			"Customer ID,Date,Total Cases\nX,2024-01-15,3\n"),
		Surveys: writeFile(t, dir, "No_Sale_Survey.csv",
			"Customer Num,Date Completed,Please select a reason why no sale took place:\nY,2024-01-15,Closed\n"),
	}
}

func TestFileLoader_Load(t *testing.T) {
	log.SetupTestLogger()
	ctx := context.Background()

	t.Run("Carrega as cinco fontes", func(t *testing.T) {
		paths := writeSources(t, t.TempDir())

		tables, err := NewFileLoader(paths).Load(ctx)
		require.NoError(t, err)
		assert.Len(t, tables.Stops, 2)
		assert.Equal(t, []domain.CalendarEntry{{Date: day(2024, 1, 15), DayOfWeek: "Monday", Phase: "One"}}, tables.Calendar)
		assert.Equal(t, []domain.RegionLookup{{Territory: "T1", Region: "North"}}, tables.Regions)
		assert.Len(t, tables.Invoices, 1)
		assert.Len(t, tables.Surveys, 1)
	})

	t.Run("Arquivo ausente aborta a carga", func(t *testing.T) {
		dir := t.TempDir()
		paths := writeSources(t, dir)
		paths.Surveys = filepath.Join(dir, "missing.csv")

		tables, err := NewFileLoader(paths).Load(ctx)
		assert.Error(t, err)
		assert.Nil(t, tables)
	})
}
