package writer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/jszwec/csvutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tealeg/xlsx/v2"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/missed-stops-report/infrastructure/repository/mocks"
	"github.com/vfg2006/missed-stops-report/internal/config"
	"github.com/vfg2006/missed-stops-report/internal/domain"
	"github.com/vfg2006/missed-stops-report/pkg/log"
)

const expectedHeader = "Customer ID,Territory,Phase,Day Of Week,Region,Expected Day of Sale," +
	"Invoice on Expected Day,Sale Made on Expected Day?,Net Sales for Expected Day,Positive Sale," +
	"Last Sale Date,Last Sale Date Amount,Sale Complete On Expected Day?,Survey Results"

func sampleWorksheet() *domain.Worksheet {
	monday := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	lastSale := time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC)
	region := "North"

	rows := []domain.ReconciledRow{
		{
			CustomerID:             "X",
			Territory:              "T1",
			Phase:                  1,
			DayOfWeek:              2,
			Region:                 &region,
			ExpectedDayOfSale:      monday,
			InvoiceOnExpectedDay:   &monday,
			SaleMadeOnExpectedDay:  true,
			NetSalesForExpectedDay: decimal.NewFromInt(3),
			PositiveSale:           true,
			LastSaleDate:           domain.LastSaleDate{Date: monday, Valid: true},
			LastSaleAmount:         decimal.NewNullDecimal(decimal.NewFromInt(3)),
			CompletionStatus:       domain.StatusCompleted,
			SurveyResult:           domain.SurveyCompleted,
		},
		{
			CustomerID:        "Z",
			Territory:         "T3",
			Phase:             1,
			DayOfWeek:         2,
			ExpectedDayOfSale: monday,
			LastSaleDate:      domain.LastSaleDate{Date: lastSale, Valid: true},
			LastSaleAmount:    decimal.NewNullDecimal(decimal.RequireFromString("1.5")),
			CompletionStatus:  domain.StatusServiceCompletedRecently,
			SurveyResult:      string(domain.StatusServiceCompletedRecently),
		},
		{
			CustomerID:        "Y",
			Territory:         "T1",
			Phase:             1,
			DayOfWeek:         2,
			Region:            &region,
			ExpectedDayOfSale: monday,
			CompletionStatus:  domain.StatusSixDayNonBuy,
			SurveyResult:      "Closed",
			SurveyAnswered:    true,
		},
	}

	return &domain.Worksheet{
		RunID:        "abcdefghij",
		TargetDate:   monday,
		RunDate:      monday.AddDate(0, 0, 1),
		Slot:         domain.ScheduleSlot{DayOfWeek: 2, Phase: 1},
		Rows:         rows,
		StatusCounts: map[domain.CompletionStatus]int{domain.StatusCompleted: 1, domain.StatusServiceCompletedRecently: 1, domain.StatusSixDayNonBuy: 1},
		GeneratedAt:  time.Date(2024, 1, 16, 7, 0, 0, 0, time.UTC),
	}
}

func TestWorksheetRecord_CellsFollowHeader(t *testing.T) {
	header, err := csvutil.Header(worksheetRecord{}, "csv")
	require.NoError(t, err)
	assert.Equal(t, expectedHeader, strings.Join(header, ","))
	assert.Len(t, newWorksheetRecord(sampleWorksheet().Rows[0]).cells(), len(header))
}

func TestCSVWriter_Write(t *testing.T) {
	log.SetupTestLogger()
	path := filepath.Join(t.TempDir(), "out", "Stops_Worksheet.csv")

	require.NoError(t, NewCSVWriter(path).Write(context.Background(), sampleWorksheet()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, expectedHeader, lines[0])
	assert.Equal(t, "X,T1,1,2,North,2024-01-15,2024-01-15,Yes,3.00,1,2024-01-15,3.00,Completed,Completed", lines[1])
	assert.Equal(t, "Z,T3,1,2,,2024-01-15,,No,0.00,0,2024-01-12,1.50,Service Completed In Last 6 Days,Service Completed In Last 6 Days", lines[2])
	assert.Equal(t, "Y,T1,1,2,North,2024-01-15,,No,0.00,0,No Sale Last 6 Days,,6 Day Non Buy,Closed", lines[3])

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "não deve sobrar arquivo temporário")
}

func TestCSVWriter_EmptyWorksheet(t *testing.T) {
	log.SetupTestLogger()
	path := filepath.Join(t.TempDir(), "Stops_Worksheet.csv")

	require.NoError(t, NewCSVWriter(path).Write(context.Background(), &domain.Worksheet{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, expectedHeader+"\n", string(data))
}

func TestCSVWriter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	path := filepath.Join(t.TempDir(), "Stops_Worksheet.csv")
	assert.ErrorIs(t, NewCSVWriter(path).Write(ctx, sampleWorksheet()), context.Canceled)
	assert.NoFileExists(t, path)
}

func TestXLSXWriter_Write(t *testing.T) {
	log.SetupTestLogger()
	path := filepath.Join(t.TempDir(), "Stops_Worksheet.xlsx")

	require.NoError(t, NewXLSXWriter(path).Write(context.Background(), sampleWorksheet()))

	file, err := xlsx.OpenFile(path)
	require.NoError(t, err)
	sheet, ok := file.Sheet[worksheetSheetName]
	require.True(t, ok)
	require.Len(t, sheet.Rows, 4)

	assert.Equal(t, "Customer ID", sheet.Rows[0].Cells[0].Value)
	assert.Equal(t, "Survey Results", sheet.Rows[0].Cells[13].Value)
	assert.Equal(t, "Y", sheet.Rows[3].Cells[0].Value)
	assert.Equal(t, "No Sale Last 6 Days", sheet.Rows[3].Cells[10].Value)
	assert.Equal(t, "Closed", sheet.Rows[3].Cells[13].Value)
}

func TestSummaryWriter_Write(t *testing.T) {
	log.SetupTestLogger()
	path := filepath.Join(t.TempDir(), "summary.json")

	require.NoError(t, NewSummaryWriter(path).Write(context.Background(), sampleWorksheet()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var summary domain.WorksheetSummary
	require.NoError(t, json.Unmarshal(data, &summary))
	assert.Equal(t, "abcdefghij", summary.RunID)
	assert.Equal(t, "2024-01-15", summary.TargetDate)
	assert.Equal(t, 3, summary.Rows)
	assert.Equal(t, 1, summary.StatusCounts["6 Day Non Buy"])
	assert.Equal(t, 1, summary.SurveyResults["Closed"])
	assert.Equal(t, 2, summary.DayOfWeek)
}

func TestDatabaseWriter_Write(t *testing.T) {
	log.SetupTestLogger()
	ctx := context.Background()
	worksheet := sampleWorksheet()

	tests := []struct {
		name      string
		retention int
		setup     func(repo *mocks.MockWorksheetRepository)
		wantErr   bool
	}{
		{
			name:      "Sem retenção apenas grava",
			retention: 0,
			setup: func(repo *mocks.MockWorksheetRepository) {
				repo.EXPECT().SaveWorksheet(ctx, worksheet).Return(nil)
			},
		},
		{
			name:      "Com retenção remove linhas antigas",
			retention: 90,
			setup: func(repo *mocks.MockWorksheetRepository) {
				gomock.InOrder(
					repo.EXPECT().SaveWorksheet(ctx, worksheet).Return(nil),
					repo.EXPECT().DeleteOlderThan(ctx, 90, worksheet.TargetDate).Return(int64(12), nil),
				)
			},
		},
		{
			name:      "Falha na limpeza não falha a gravação",
			retention: 30,
			setup: func(repo *mocks.MockWorksheetRepository) {
				repo.EXPECT().SaveWorksheet(ctx, worksheet).Return(nil)
				repo.EXPECT().DeleteOlderThan(ctx, 30, worksheet.TargetDate).Return(int64(0), errors.New("timeout"))
			},
		},
		{
			name:      "Falha ao gravar é propagada",
			retention: 30,
			setup: func(repo *mocks.MockWorksheetRepository) {
				repo.EXPECT().SaveWorksheet(ctx, worksheet).Return(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockWorksheetRepository(ctrl)
			tt.setup(repo)

			err := NewDatabaseWriter(repo, tt.retention).Write(ctx, worksheet)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestNewWorksheetWriter(t *testing.T) {
	w, err := NewWorksheetWriter(config.FormatCSV, "out.csv")
	require.NoError(t, err)
	assert.IsType(t, &CSVWriter{}, w)

	w, err = NewWorksheetWriter(config.FormatXLSX, "out.xlsx")
	require.NoError(t, err)
	assert.IsType(t, &XLSXWriter{}, w)

	_, err = NewWorksheetWriter("pdf", "out.pdf")
	assert.Error(t, err)
}
