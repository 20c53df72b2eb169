// Package writer grava a planilha reconciliada nos destinos de saída
package writer

import (
	"context"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/missed-stops-report/internal/domain"
)

// worksheetRecord é a linha de saída, na ordem de colunas do relatório
type worksheetRecord struct {
	CustomerID           string `csv:"Customer ID"`
	Territory            string `csv:"Territory"`
	Phase                int    `csv:"Phase"`
	DayOfWeek            int    `csv:"Day Of Week"`
	Region               string `csv:"Region"`
	ExpectedDayOfSale    string `csv:"Expected Day of Sale"`
	InvoiceOnExpectedDay string `csv:"Invoice on Expected Day"`
	SaleMade             string `csv:"Sale Made on Expected Day?"`
	NetSales             string `csv:"Net Sales for Expected Day"`
	PositiveSale         int    `csv:"Positive Sale"`
	LastSaleDate         string `csv:"Last Sale Date"`
	LastSaleAmount       string `csv:"Last Sale Date Amount"`
	CompletionStatus     string `csv:"Sale Complete On Expected Day?"`
	SurveyResults        string `csv:"Survey Results"`
}

func newWorksheetRecord(row domain.ReconciledRow) worksheetRecord {
	record := worksheetRecord{
		CustomerID:        row.CustomerID,
		Territory:         row.Territory,
		Phase:             row.Phase,
		DayOfWeek:         row.DayOfWeek,
		ExpectedDayOfSale: row.ExpectedDayOfSale.Format(time.DateOnly),
		SaleMade:          "No",
		NetSales:          row.NetSalesForExpectedDay.StringFixed(2),
		LastSaleDate:      row.LastSaleDate.String(),
		CompletionStatus:  string(row.CompletionStatus),
		SurveyResults:     row.SurveyResult,
	}

	if row.Region != nil {
		record.Region = *row.Region
	}
	if row.InvoiceOnExpectedDay != nil {
		record.InvoiceOnExpectedDay = row.InvoiceOnExpectedDay.Format(time.DateOnly)
	}
	if row.SaleMadeOnExpectedDay {
		record.SaleMade = "Yes"
	}
	if row.PositiveSale {
		record.PositiveSale = 1
	}
	if row.LastSaleAmount.Valid {
		record.LastSaleAmount = row.LastSaleAmount.Decimal.StringFixed(2)
	}

	return record
}

func (r worksheetRecord) cells() []string {
	return []string{
		r.CustomerID,
		r.Territory,
		strconv.Itoa(r.Phase),
		strconv.Itoa(r.DayOfWeek),
		r.Region,
		r.ExpectedDayOfSale,
		r.InvoiceOnExpectedDay,
		r.SaleMade,
		r.NetSales,
		strconv.Itoa(r.PositiveSale),
		r.LastSaleDate,
		r.LastSaleAmount,
		r.CompletionStatus,
		r.SurveyResults,
	}
}

// writeAtomically grava num temporário do mesmo diretório e renomeia, sem deixar arquivo parcial
func writeAtomically(ctx context.Context, path string, write func(file *os.File) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "erro ao criar diretório %s", dir)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.Wrap(err, "erro ao criar arquivo temporário")
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "erro ao fechar arquivo temporário")
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "erro ao mover planilha para %s", path)
	}
	return nil
}
