package writer

import (
	"context"
	"os"

	"github.com/jszwec/csvutil"
	"github.com/pkg/errors"
	"github.com/tealeg/xlsx/v2"

	"github.com/vfg2006/missed-stops-report/internal/domain"
	"github.com/vfg2006/missed-stops-report/pkg/log"
)

const worksheetSheetName = "Stops Worksheet"

type XLSXWriter struct {
	path string
}

func NewXLSXWriter(path string) *XLSXWriter {
	return &XLSXWriter{path: path}
}

func (w *XLSXWriter) Write(ctx context.Context, worksheet *domain.Worksheet) error {
	header, err := csvutil.Header(worksheetRecord{}, "csv")
	if err != nil {
		return errors.Wrap(err, "erro ao montar cabeçalho")
	}

	file := xlsx.NewFile()
	sheet, err := file.AddSheet(worksheetSheetName)
	if err != nil {
		return errors.Wrap(err, "erro ao criar aba")
	}

	addRow(sheet, header)
	for _, row := range worksheet.Rows {
		addRow(sheet, newWorksheetRecord(row).cells())
	}

	err = writeAtomically(ctx, w.path, func(tmp *os.File) error {
		return errors.Wrap(file.Write(tmp), "erro ao gravar XLSX")
	})
	if err != nil {
		return err
	}

	log.ForContext(ctx).WithFields(log.Fields{
		"path": w.path,
		"rows": len(worksheet.Rows),
	}).Info("Planilha XLSX gravada")

	return nil
}

func addRow(sheet *xlsx.Sheet, values []string) {
	row := sheet.AddRow()
	for _, value := range values {
		row.AddCell().SetString(value)
	}
}
